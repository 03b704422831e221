// Package tui provides the primary terminal user interface implementation.
package tui

type state int

const (
	browseState state = iota
	detailState
	reviewsState
	historyState
)

// tab identifies a list surface. Each tab owns one controller.
type tab int

const (
	animeTab tab = iota
	searchTab
	charactersTab
	newsTab
	reviewsTab
)

// browsable are the tabs shown in the tab bar, in order.
var browsable = []tab{animeTab, searchTab, charactersTab, newsTab}

func (t tab) String() string {
	switch t {
	case animeTab:
		return "Anime"
	case searchTab:
		return "Search"
	case charactersTab:
		return "Characters"
	case newsTab:
		return "News"
	case reviewsTab:
		return "Reviews"
	default:
		return "Unknown"
	}
}
