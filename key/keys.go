// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Search Interaction - these keys govern query dispatch and result discovery.
const (
	SearchLimit                = "search.limit"
	SearchSource               = "search.source"
	SearchShowQuerySuggestions = "search.show_query_suggestions"
	SearchCacheResults         = "search.cache_results"
)

// Media Playback - these keys configure the external player session.
const (
	PlayerWindowWidth    = "player.window_width"
	PlayerWindowHeight   = "player.window_height"
	PlayerNetworkCaching = "player.network_caching"
	PlayerEnqueue        = "player.enqueue"
)

// Terminal User Interface - these keys define the interactive menu loop's behavior.
const (
	TUISearchPromptString = "tui.search_prompt"
	TUIShowURLs           = "tui.show_urls"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
