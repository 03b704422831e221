// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Init focuses the first tab, which fetches its first page.
func (b *statefulBubble) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, b.focus(b.active))
}
