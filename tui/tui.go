// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"github.com/anisan-cli/anidex/anilist"
	tea "github.com/charmbracelet/bubbletea"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	// Client defaults to anilist.Configured.
	Client *anilist.Client
	// History opens the recently viewed list first.
	History bool
}

// Run initializes and executes the primary Bubble Tea application loop.
func Run(options *Options) error {
	client := options.Client
	if client == nil {
		client = anilist.Configured()
	}

	bubble := newBubble(clientSources(client), defaultBubbleOptions())
	defer bubble.dispose()

	if options.History {
		if _, err := bubble.loadHistory(); err != nil {
			return err
		}
		bubble.newState(historyState)
	}

	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}
