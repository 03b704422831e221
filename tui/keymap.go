// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"github.com/anisan-cli/anidex/color"
	"github.com/anisan-cli/anidex/style"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
)

// statefulKeymap defines the keyboard interactions available within various application states.
type statefulKeymap struct {
	state  state
	tab    tab
	typing bool

	quit, forceQuit,
	nextTab, prevTab,
	acceptSearchSuggestion,
	search,
	confirm,
	openURL,
	reviews,
	history,
	remove,
	retry,
	back,
	genre, mediaType, status, sort,
	up, down, left, right,
	top, bottom,
	showHelp key.Binding
}

// setState updates the active keymap configuration to match the specified application state.
func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func (k *statefulKeymap) setTab(t tab) {
	k.tab = t
}

func (k *statefulKeymap) setTyping(typing bool) {
	k.typing = typing
}

func newStatefulKeymap() *statefulKeymap {
	return &statefulKeymap{
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		nextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		prevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous tab"),
		),
		acceptSearchSuggestion: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "accept search suggestion"),
		),
		search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		openURL: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open url"),
		),
		reviews: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "reviews"),
		),
		history: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "history"),
		),
		remove: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "remove"),
		),
		retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp(style.Fg(color.Orange)("r"), style.Fg(color.Orange)("retry")),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		genre: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "genre"),
		),
		mediaType: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "type"),
		),
		status: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "status"),
		),
		sort: key.NewBinding(
			key.WithKeys("O"),
			key.WithHelp("O", "sort"),
		),
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "down"),
		),
		left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "left"),
		),
		right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "right"),
		),
		top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "top"),
		),
		bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "bottom"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k *statefulKeymap) help() ([]key.Binding, []key.Binding) {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	to2 := func(a []key.Binding) ([]key.Binding, []key.Binding) {
		return a, a
	}

	switch k.state {
	case detailState:
		return to2(h(k.openURL, k.reviews, k.back))
	case reviewsState:
		return to2(h(k.retry, k.back))
	case historyState:
		return to2(h(k.confirm, k.remove, k.back))
	}

	if k.typing {
		return to2(h(k.confirm, k.acceptSearchSuggestion, k.back, k.forceQuit))
	}

	switch k.tab {
	case searchTab:
		return h(k.confirm, k.search, k.nextTab), h(k.confirm, k.search, k.mediaType, k.retry, k.history, k.nextTab, k.prevTab)
	case charactersTab:
		return h(k.confirm, k.search, k.nextTab), h(k.confirm, k.search, k.sort, k.retry, k.history, k.nextTab, k.prevTab)
	case newsTab:
		return h(k.confirm, k.genre, k.status, k.nextTab), h(k.confirm, k.genre, k.mediaType, k.status, k.sort, k.retry, k.history, k.nextTab, k.prevTab)
	default:
		return h(k.confirm, k.history, k.nextTab), h(k.confirm, k.retry, k.history, k.nextTab, k.prevTab)
	}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}

func (k *statefulKeymap) forList() list.KeyMap {
	return list.KeyMap{
		CursorUp:             k.up,
		CursorDown:           k.down,
		NextPage:             k.right,
		PrevPage:             k.left,
		GoToStart:            k.top,
		GoToEnd:              k.bottom,
		ClearFilter:          k.back,
		CancelWhileFiltering: k.back,
		AcceptWhileFiltering: k.confirm,
		ShowFullHelp:         k.showHelp,
		CloseFullHelp:        k.showHelp,
		Quit:                 k.quit,
		ForceQuit:            k.forceQuit,
	}
}
