// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"
	"strings"

	"github.com/anisan-cli/anidex/anilist"
	"github.com/anisan-cli/anidex/history"
	"github.com/anisan-cli/anidex/icon"
	"github.com/anisan-cli/anidex/style"
	"github.com/anisan-cli/anidex/util"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// listItem implements the list.Item interface, wrapping various domain models for terminal display.
type listItem struct {
	internal any
	news     bool
}

func mediaItem(m *anilist.Media) list.Item { return &listItem{internal: m} }

func newsItem(m *anilist.Media) list.Item { return &listItem{internal: m, news: true} }

func characterItem(c *anilist.Character) list.Item { return &listItem{internal: c} }

func reviewItem(r *anilist.Review) list.Item { return &listItem{internal: r} }

func historyItem(e *history.Entry) list.Item { return &listItem{internal: e} }

// Title retrieves the primary display text for the list item.
func (t *listItem) Title() string {
	switch e := t.internal.(type) {
	case *anilist.Media:
		if e.IsAdult {
			return fmt.Sprintf("%s %s", e.Name(), style.Fg(style.ErrorColor)("18+"))
		}
		return e.Name()
	case *anilist.Character:
		if e.Name.Native != "" {
			return fmt.Sprintf("%s %s", e.Name.Full, style.Faint(e.Name.Native))
		}
		return e.Name.Full
	case *anilist.Review:
		if e.Summary != "" {
			return e.Summary
		}
		return util.Ellipsize(util.StripHTML(e.Body), 80)
	case *history.Entry:
		return fmt.Sprintf("%s %s", entryIcon(e.Kind), e.Title)
	default:
		return t.FilterValue()
	}
}

// Description retrieves the secondary metadata line for the list item.
func (t *listItem) Description() string {
	var parts []string

	switch e := t.internal.(type) {
	case *anilist.Media:
		if t.news {
			parts = append(parts, lipgloss.NewStyle().Foreground(style.SecondaryColor).Render(anilist.NewsSource(e.Source)))
		}

		if e.Status != "" {
			c := style.Subtext
			if e.Status == "RELEASING" {
				c = style.SuccessColor
			}
			parts = append(parts, lipgloss.NewStyle().Foreground(c).Render(anilist.Label(anilist.StatusOptions, e.Status)))
		}

		if e.AverageScore > 0 {
			parts = append(parts, lipgloss.NewStyle().Foreground(style.AccentColor).Render(fmt.Sprintf("★ %d%%", e.AverageScore)))
		}

		if e.StartDate.Year > 0 {
			parts = append(parts, style.Fg(style.FaintColor)(fmt.Sprintf("%d", e.StartDate.Year)))
		}

		if e.Episodes > 0 {
			parts = append(parts, style.Fg(style.FaintColor)(util.Quantify(e.Episodes, "ep", "eps")))
		}
	case *anilist.Character:
		if e.Favourites > 0 {
			parts = append(parts, lipgloss.NewStyle().Foreground(style.FavouriteColor).Render(fmt.Sprintf("♥ %d", e.Favourites)))
		}
		if e.Gender != "" {
			parts = append(parts, style.Fg(style.FaintColor)(e.Gender))
		}
	case *anilist.Review:
		if e.User.Name != "" {
			parts = append(parts, e.User.Name)
		}
		if e.Score > 0 {
			parts = append(parts, lipgloss.NewStyle().Foreground(style.AccentColor).Render(fmt.Sprintf("%d/100", e.Score)))
		}
	case *history.Entry:
		parts = append(parts, style.Fg(style.FaintColor)(e.OpenedAt.Format("2006-01-02 15:04")))
		parts = append(parts, style.Fg(style.FaintColor)(util.Quantify(e.Opened, "view", "views")))
	}

	return strings.Join(parts, " • ")
}

// FilterValue returns the string used for real-time list filtering and searching.
func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case *anilist.Media:
		return e.Name()
	case *anilist.Character:
		return e.Name.Full
	case *anilist.Review:
		return e.Summary
	case *history.Entry:
		return e.Title
	case string:
		return e
	default:
		return ""
	}
}

func entryIcon(kind history.Kind) string {
	if kind == history.KindCharacter {
		return icon.Get(icon.Character)
	}
	return icon.Get(icon.Anime)
}
