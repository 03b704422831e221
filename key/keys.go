// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Browsing - these keys shape every paginated list surface.
const (
	BrowsePageSize  = "browse.page_size"
	BrowseHideAdult = "browse.hide_adult"
)

// Search Interaction - these keys define the UI/UX parameters for search discovery.
const (
	SearchThrottleMs           = "search.throttle_ms"
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Anilist Service Integration - these keys manage the connection to the Anilist GraphQL API.
const (
	AnilistEndpoint          = "anilist.endpoint"
	AnilistRequestsPerMinute = "anilist.requests_per_minute"
	AnilistTimeoutSeconds    = "anilist.timeout_seconds"
	AnilistRetries           = "anilist.retries"
	AnilistCacheDetails      = "anilist.cache_details"
)

// History Tracking - these keys configure the persistence of opened records.
const (
	HistorySaveOnOpen = "history.save_on_open"
)

// Terminal User Interface (TUI) - these keys define the primary interactive environment's styling and logic.
const (
	TUIItemSpacing        = "tui.item_spacing"
	TUISearchPromptString = "tui.search_prompt"
	TUILoadMoreThreshold  = "tui.load_more_threshold"
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
