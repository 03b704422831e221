package style

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, the subset anidex draws with.
var (
	Base     = lipgloss.Color("#1e1e2e")
	Subtext  = lipgloss.Color("#a6adc8")
	Overlay  = lipgloss.Color("#6c7086")
	Pink     = lipgloss.Color("#f5c2e7")
	Mauve    = lipgloss.Color("#cba6f7")
	Red      = lipgloss.Color("#f38ba8")
	Green    = lipgloss.Color("#a6e3a1")
	Lavender = lipgloss.Color("#b4befe")
)

// Roles.
var (
	AccentColor    = Mauve
	SecondaryColor = Lavender
	SuccessColor   = Green
	ErrorColor     = Red
	FaintColor     = Overlay
	FavouriteColor = Pink
)
