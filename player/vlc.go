package player

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/ytui-cli/ytui/constant"
	"github.com/ytui-cli/ytui/key"
	"github.com/ytui-cli/ytui/log"
)

// launchGracePeriod is how long a freshly spawned player gets before the liveness
// probe decides whether the startup arguments were accepted.
const launchGracePeriod = 2 * time.Second

// titleDecoration is the suffix VLC appends to the media title in its window title.
var titleDecoration = " - VLC media player"

// VLC implements Session for the VLC media player.
type VLC struct {
	binPath string
	spawn   spawner
	procs   Inspector
	grace   time.Duration
}

// NewVLC creates a session manager around the given VLC binary path.
func NewVLC(binPath string) *VLC {
	return &VLC{
		binPath: binPath,
		spawn:   execSpawner{},
		procs:   systemInspector{},
		grace:   launchGracePeriod,
	}
}

// IsRunning reports whether a VLC process exists, by process name lookup.
func (v *VLC) IsRunning() bool {
	_, ok := v.procs.FindByName(constant.PlayerName)
	return ok
}

// LiveTitle returns the media title of the running session's window, stripped of
// VLC's own decoration. Blank when no session runs or the title cannot be read.
func (v *VLC) LiveTitle() string {
	pid, ok := v.procs.FindByName(constant.PlayerName)
	if !ok {
		return ""
	}

	title := strings.TrimSpace(v.procs.WindowTitle(pid))
	title = strings.TrimSuffix(title, titleDecoration)
	if strings.EqualFold(title, "VLC media player") {
		// Idle window, nothing loaded.
		return ""
	}
	return title
}

// Play hands the URL to the player, enqueueing or replacing based on caller intent.
// Fire-and-forget: failures are logged, and a fresh launch falls back onto the same
// URL since no better fallback is known at this entry point.
func (v *VLC) Play(url string, enqueue bool) error {
	if v.IsRunning() {
		return v.control(url, enqueue)
	}
	v.launch(url, url)
	return nil
}

// EnsureLaunchedOrUpdated updates a running session with the primary URL, or launches
// a fresh process, degrading to a minimal invocation of the fallback URL when the
// launch dies within the grace period.
func (v *VLC) EnsureLaunchedOrUpdated(primaryURL, fallbackURL string, enqueue bool) {
	if v.IsRunning() {
		if err := v.control(primaryURL, enqueue); err != nil {
			log.Warnf("player control: %v", err)
		}
		return
	}
	v.launch(primaryURL, fallbackURL)
}

// control sends a URL to the running session through VLC's single-instance channel.
func (v *VLC) control(url string, enqueue bool) error {
	args := []string{"--one-instance"}
	if enqueue {
		// Append to the player's playlist without interrupting current playback.
		args = append(args, "--playlist-enqueue")
	}
	args = append(args, url)

	if _, err := v.spawn.Spawn(v.binPath, args...); err != nil {
		return fmt.Errorf("signal running player: %w", err)
	}
	return nil
}

// launch spawns a fresh player process with display geometry and a network buffering
// hint, then probes it after the grace period. A premature exit signals incompatible
// startup arguments, so exactly one degraded relaunch follows: minimal argument set,
// fallback URL. A second failure is not handled here.
func (v *VLC) launch(primaryURL, fallbackURL string) {
	args := []string{
		fmt.Sprintf("--width=%d", viper.GetInt(key.PlayerWindowWidth)),
		fmt.Sprintf("--height=%d", viper.GetInt(key.PlayerWindowHeight)),
		fmt.Sprintf("--network-caching=%d", viper.GetInt(key.PlayerNetworkCaching)),
		primaryURL,
	}

	handle, err := v.spawn.Spawn(v.binPath, args...)
	if err == nil {
		time.Sleep(v.grace)
		if handle.Alive() {
			return
		}
		log.Warnf("player exited within %s of launch, relaunching degraded", v.grace)
	} else {
		log.Warnf("player launch: %v", err)
	}

	if _, err := v.spawn.Spawn(v.binPath, fallbackURL); err != nil {
		log.Warnf("degraded player relaunch: %v", err)
	}
}
