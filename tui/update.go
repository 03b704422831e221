// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"github.com/anisan-cli/anidex/history"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

func (b *statefulBubble) allScreens() []screen {
	return append(b.tabsInOrder(), b.reviews)
}

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Process Ephemeral UI Notifications (captures `ui.NotifyMsg` and `ui.ClearNotificationMsg`)
	if uiCmd := b.notifier.Update(msg); uiCmd != nil {
		cmds = append(cmds, uiCmd)
	}

	// Controller snapshots reach their screen whatever is on display.
	for _, s := range b.allScreens() {
		if cmd, ok := s.apply(msg); ok {
			return b, tea.Batch(append(cmds, cmd)...)
		}
	}

	switch msg := msg.(type) {
	case throttleTickMsg:
		if s, ok := b.screens[msg.tab]; ok {
			cmds = append(cmds, s.tick())
		}
	case detailMsg:
		cmds = append(cmds, b.applyDetail(msg))
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		if record, ok := b.detail.Get(); ok {
			b.detailC.SetContent(b.renderDetail(record))
		}
	case spinner.TickMsg:
		for _, s := range b.allScreens() {
			cmds = append(cmds, s.forward(msg))
		}
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			b.dispose()
			return b, tea.Quit
		}

		switch b.state {
		case browseState:
			cmds = append(cmds, b.updateBrowse(msg))
		case detailState:
			cmds = append(cmds, b.updateDetail(msg))
		case reviewsState:
			cmds = append(cmds, b.updateReviews(msg))
		case historyState:
			cmds = append(cmds, b.updateHistory(msg))
		}
	default:
		if b.state == browseState {
			cmds = append(cmds, b.current().forward(msg))
		}
	}

	return b, tea.Batch(cmds...)
}

func (b *statefulBubble) updateBrowse(msg tea.KeyMsg) tea.Cmd {
	current := b.current()
	if current.typing() {
		return current.handleKey(msg)
	}

	switch {
	case bubblesKey.Matches(msg, b.keymap.quit):
		b.dispose()
		return tea.Quit
	case bubblesKey.Matches(msg, b.keymap.nextTab):
		return b.focus(b.nextTab(1))
	case bubblesKey.Matches(msg, b.keymap.prevTab):
		return b.focus(b.nextTab(-1))
	case bubblesKey.Matches(msg, b.keymap.history):
		cmd, err := b.loadHistory()
		if err != nil {
			b.logger.WithError(err).Error("loading history")
			return nil
		}
		b.historyC.ResetSelected()
		b.newState(historyState)
		return cmd
	case bubblesKey.Matches(msg, b.keymap.confirm):
		if record, ok := current.selected(); ok {
			return b.openDetail(record)
		}
		return nil
	}

	return current.handleKey(msg)
}

// nextTab returns the browsable tab step positions from the active one.
func (b *statefulBubble) nextTab(step int) tab {
	_, i, _ := lo.FindIndexOf(browsable, func(t tab) bool { return t == b.active })
	n := len(browsable)
	return browsable[((i+step)%n+n)%n]
}

func (b *statefulBubble) updateDetail(msg tea.KeyMsg) tea.Cmd {
	switch {
	case bubblesKey.Matches(msg, b.keymap.back):
		b.detail = mo.None[any]()
		b.loading = false
		b.previousState()
		return nil
	case bubblesKey.Matches(msg, b.keymap.openURL):
		return b.openURL()
	case bubblesKey.Matches(msg, b.keymap.reviews):
		return b.showReviews()
	}

	var cmd tea.Cmd
	b.detailC, cmd = b.detailC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateReviews(msg tea.KeyMsg) tea.Cmd {
	if bubblesKey.Matches(msg, b.keymap.back) {
		b.previousState()
		return nil
	}

	return b.reviews.handleKey(msg)
}

func (b *statefulBubble) updateHistory(msg tea.KeyMsg) tea.Cmd {
	switch {
	case bubblesKey.Matches(msg, b.keymap.back):
		b.previousState()
		return nil
	case bubblesKey.Matches(msg, b.keymap.remove):
		return b.removeHistory()
	case bubblesKey.Matches(msg, b.keymap.confirm):
		item, ok := b.historyC.SelectedItem().(*listItem)
		if !ok {
			return nil
		}
		return b.openEntry(item.internal.(*history.Entry))
	}

	var cmd tea.Cmd
	b.historyC, cmd = b.historyC.Update(msg)
	return cmd
}
