// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"strings"

	"github.com/anisan-cli/anidex/icon"
	"github.com/anisan-cli/anidex/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)

	activeTabStyle   = lipgloss.NewStyle().Bold(true).Foreground(style.Base).Background(style.AccentColor).Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(style.Subtext).Padding(0, 1)
)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case browseState:
		output = b.viewBrowse()
	case detailState:
		output = b.viewDetail()
	case reviewsState:
		output = listExtraPaddingStyle.Render(b.reviews.view())
	case historyState:
		output = listExtraPaddingStyle.Render(b.historyC.View())
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

var tabIcons = map[tab]icon.Icon{
	animeTab:      icon.Anime,
	searchTab:     icon.Search,
	charactersTab: icon.Character,
	newsTab:       icon.News,
}

func (b *statefulBubble) viewTabs() string {
	tabs := lo.Map(browsable, func(t tab, _ int) string {
		label := icon.Get(tabIcons[t]) + " " + t.String()
		if t == b.active {
			return activeTabStyle.Render(label)
		}
		return inactiveTabStyle.Render(label)
	})

	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n"
}

func (b *statefulBubble) viewBrowse() string {
	return listExtraPaddingStyle.Render(b.viewTabs() + "\n" + b.current().view())
}

func (b *statefulBubble) viewDetail() string {
	lines := []string{b.detailC.View()}
	if b.loading {
		lines = append(lines, style.Faint(icon.Get(icon.Progress)+" loading details"))
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	l := strings.Join(lines, "\n")
	h := lipgloss.Height(l)
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
