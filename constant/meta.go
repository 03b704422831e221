// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Anidex is the canonical application identifier used for filesystem paths and CLI branding.
	Anidex = "anidex"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// UserAgent is sent with every request to the Anilist API.
	UserAgent = Anidex + "/" + Version + " (+https://github.com/anisan-cli/anidex)"

	// AnilistSite is the public web front of Anilist, used to build record links.
	AnilistSite = "https://anilist.co"
)

// Build metadata injected with -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
