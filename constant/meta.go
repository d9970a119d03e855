// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Ytui is the canonical application identifier used for filesystem paths and CLI branding.
	Ytui = "ytui"

	// Version is the current application semantic version string.
	Version = "0.1.0"
)

// Build metadata, overridden at link time via -ldflags.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

// External tool executable names. Both are resolved at startup through the tool
// locator; neither is bundled with the application.
const (
	ExtractorName = "yt-dlp"
	PlayerName    = "vlc"
)
