// Package ui provides internal state management and rendering utilities for ephemeral terminal notifications.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ToastDuration is how long a notification stays on screen.
const ToastDuration = 3 * time.Second

var toastStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

// Model holds at most one visible notification.
type Model struct {
	notification string
	seq          int
}

// NotifyMsg shows Text as a notification.
type NotifyMsg struct {
	Text string
}

// ClearNotificationMsg hides the notification it was scheduled for.
type ClearNotificationMsg struct {
	seq int
}

// Notify returns a command that shows text as a notification.
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return NotifyMsg{Text: text}
	}
}

func clearAfter(seq int) tea.Cmd {
	return tea.Tick(ToastDuration, func(time.Time) tea.Msg {
		return ClearNotificationMsg{seq: seq}
	})
}

// Update handles notification messages. A clear scheduled for an older
// notification leaves a newer one visible.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NotifyMsg:
		m.notification = msg.Text
		m.seq++
		return clearAfter(m.seq)
	case ClearNotificationMsg:
		if msg.seq == m.seq {
			m.notification = ""
		}
	}
	return nil
}

// Visible returns the current notification, if any.
func (m *Model) Visible() (string, bool) {
	return m.notification, m.notification != ""
}

// View appends the current notification to the last line of mainContent.
func (m *Model) View(mainContent string) string {
	if m.notification == "" {
		return mainContent
	}

	lines := strings.Split(mainContent, "\n")
	lines[len(lines)-1] += "  " + toastStyle.Render(m.notification)
	return strings.Join(lines, "\n")
}
