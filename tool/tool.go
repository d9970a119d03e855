// Package tool locates the external executables the application delegates to.
//
// Lookup is side-effect-free: the process search path is consulted first, then a list
// of well-known install locations. Absence is an expected condition that callers turn
// into installation guidance, never a crash.
package tool

import (
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/samber/mo"
	"github.com/ytui-cli/ytui/constant"
	"github.com/ytui-cli/ytui/filesystem"
	"github.com/ytui-cli/ytui/log"
)

// lookPath is swappable so tests can simulate an empty search path.
var lookPath = exec.LookPath

// Locate resolves the absolute path of an external tool.
// The process search path wins; otherwise the candidate paths are probed in order.
func Locate(name string, candidates []string) mo.Option[string] {
	if path, err := lookPath(name); err == nil {
		return mo.Some(path)
	}

	for _, candidate := range candidates {
		exists, err := filesystem.API().Exists(candidate)
		if err == nil && exists {
			return mo.Some(candidate)
		}
	}

	log.Debugf("tool %s not found on PATH or in %d candidate locations", name, len(candidates))
	return mo.None[string]()
}

// Extractor resolves the path of the metadata/stream extractor (yt-dlp).
func Extractor() mo.Option[string] {
	return Locate(constant.ExtractorName, extractorCandidates())
}

// Player resolves the path of the external media player (VLC).
func Player() mo.Option[string] {
	return Locate(constant.PlayerName, playerCandidates())
}

func extractorCandidates() []string {
	switch runtime.GOOS {
	case constant.Windows:
		return []string{
			filepath.Join("C:\\", "Program Files", "yt-dlp", "yt-dlp.exe"),
			filepath.Join("C:\\", "tools", "yt-dlp", "yt-dlp.exe"),
		}
	case constant.Darwin:
		return []string{
			"/opt/homebrew/bin/yt-dlp",
			"/usr/local/bin/yt-dlp",
		}
	default:
		return []string{
			"/usr/local/bin/yt-dlp",
			"/usr/bin/yt-dlp",
		}
	}
}

func playerCandidates() []string {
	switch runtime.GOOS {
	case constant.Windows:
		return []string{
			filepath.Join("C:\\", "Program Files", "VideoLAN", "VLC", "vlc.exe"),
			filepath.Join("C:\\", "Program Files (x86)", "VideoLAN", "VLC", "vlc.exe"),
		}
	case constant.Darwin:
		return []string{
			"/Applications/VLC.app/Contents/MacOS/VLC",
		}
	default:
		return []string{
			"/usr/bin/vlc",
			"/snap/bin/vlc",
			"/var/lib/flatpak/exports/bin/org.videolan.VLC",
		}
	}
}

// InstallHint returns a platform-appropriate installation command for a missing tool.
func InstallHint(name string) string {
	switch runtime.GOOS {
	case constant.Darwin:
		return "brew install " + name
	case constant.Windows:
		return "scoop install " + name
	default:
		return "sudo apt install " + name
	}
}
