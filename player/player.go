// Package player manages the lifecycle of the external media player process.
//
// The player is never embedded: a session is a VLC process observed through the OS
// process table. No session state is cached across calls, since the player's lifecycle
// is outside this application's control.
package player

// Session encapsulates the required capabilities for an external playback session.
type Session interface {
	// IsRunning reports whether a player process currently exists.
	// The process table is consulted on every call.
	IsRunning() bool

	// LiveTitle returns the media title the running session currently displays,
	// or an empty string when no session runs or the title is unavailable.
	LiveTitle() string

	// Play hands a URL to the player: a running session receives it through the
	// single-instance control channel (replacing playback or appending to the
	// player's playlist), otherwise a fresh process is launched.
	Play(url string, enqueue bool) error

	// EnsureLaunchedOrUpdated behaves like Play but carries a fallback URL used for
	// the degraded relaunch when a fresh process dies during startup.
	EnsureLaunchedOrUpdated(primaryURL, fallbackURL string, enqueue bool)
}
