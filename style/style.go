// Package style holds the lipgloss styles and render helpers shared by the CLI and the TUI.
package style

import (
	"github.com/anisan-cli/anidex/color"
	"github.com/charmbracelet/lipgloss"
)

// New returns a blank style.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Fg renders with a foreground color.
func Fg(c lipgloss.Color) func(string) string {
	s := New().Foreground(c)
	return func(text string) string { return s.Render(text) }
}

// Tag renders text as a padded block, as used for genres.
func Tag(fg, bg lipgloss.Color) func(string) string {
	s := New().Foreground(fg).Background(bg).Padding(0, 1)
	return func(text string) string { return s.Render(text) }
}

var (
	Faint = func(s string) string { return New().Faint(true).Render(s) }
	Bold  = func(s string) string { return New().Bold(true).Render(s) }

	// Title heads list and detail views.
	Title = Tag(color.New("230"), color.New("62"))
	// ErrorTitle heads the error block shown in place of a list.
	ErrorTitle = Tag(color.New("230"), ErrorColor)
)
