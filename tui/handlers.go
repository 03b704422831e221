// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/anisan-cli/anidex/anilist"
	"github.com/anisan-cli/anidex/history"
	"github.com/anisan-cli/anidex/icon"
	"github.com/anisan-cli/anidex/internal/ui"
	"github.com/anisan-cli/anidex/key"
	"github.com/anisan-cli/anidex/open"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

const detailTimeout = 30 * time.Second

// detailMsg delivers a fully loaded record for the detail view.
type detailMsg struct {
	record any
	err    error
}

// openDetail shows the partial record immediately and loads the full one in the background.
func (b *statefulBubble) openDetail(record any) tea.Cmd {
	b.detail = someRecord(record)
	b.detailC.SetContent(b.renderDetail(record))
	b.detailC.GotoTop()
	b.loading = true
	b.newState(detailState)

	ctx := b.ctx
	details := b.details
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, detailTimeout)
		defer cancel()

		switch r := record.(type) {
		case *anilist.Media:
			m, err := details.MediaByID(ctx, r.ID)
			return detailMsg{record: m, err: err}
		case *anilist.Character:
			c, err := details.CharacterByID(ctx, r.ID)
			return detailMsg{record: c, err: err}
		default:
			return detailMsg{record: record}
		}
	}
}

// openEntry opens the detail view for a history entry.
func (b *statefulBubble) openEntry(entry *history.Entry) tea.Cmd {
	switch entry.Kind {
	case history.KindCharacter:
		return b.openDetail(&anilist.Character{ID: entry.ID, Name: anilist.Name{Full: entry.Title}, SiteURL: entry.URL})
	default:
		return b.openDetail(&anilist.Media{ID: entry.ID, Title: anilist.Title{English: entry.Title}, SiteURL: entry.URL})
	}
}

// applyDetail replaces the shown record with the loaded one, unless the user has moved on.
func (b *statefulBubble) applyDetail(msg detailMsg) tea.Cmd {
	b.loading = false

	if msg.err != nil {
		b.logger.WithError(msg.err).Warn("loading details")
		return ui.Notify(fmt.Sprintf("%s Could not load details", icon.Get(icon.Warn)))
	}

	shown, ok := b.detail.Get()
	if !ok || b.state != detailState || recordKey(shown) != recordKey(msg.record) {
		return nil
	}

	b.detail = someRecord(msg.record)
	b.detailC.SetContent(b.renderDetail(msg.record))
	return b.saveHistory(msg.record)
}

// saveHistory records the opened record when history is enabled.
func (b *statefulBubble) saveHistory(record any) tea.Cmd {
	if !viper.GetBool(key.HistorySaveOnOpen) {
		return nil
	}

	var entry *history.Entry
	switch r := record.(type) {
	case *anilist.Media:
		entry = history.FromMedia(r)
	case *anilist.Character:
		entry = history.FromCharacter(r)
	default:
		return nil
	}

	if err := history.Save(entry); err != nil {
		b.logger.WithError(err).Warn("saving history")
	}
	return nil
}

// openURL opens the Anilist page of the shown record in the browser.
func (b *statefulBubble) openURL() tea.Cmd {
	record, ok := b.detail.Get()
	if !ok {
		return nil
	}

	var link string
	switch r := record.(type) {
	case *anilist.Media:
		link = r.URL()
	case *anilist.Character:
		link = r.URL()
	}

	if err := open.Start(link); err != nil {
		b.logger.WithError(err).Warn("opening url")
		return ui.Notify(fmt.Sprintf("%s Could not open %s", icon.Get(icon.Fail), link))
	}
	return nil
}

// showReviews switches to the reviews of the shown media.
func (b *statefulBubble) showReviews() tea.Cmd {
	record, ok := b.detail.Get()
	if !ok {
		return nil
	}

	m, ok := record.(*anilist.Media)
	if !ok {
		return nil
	}

	b.reviews.listC.Title = "Reviews of " + m.Name()
	b.reviews.listC.ResetSelected()
	b.newState(reviewsState)
	return b.reviews.setParams(anilist.ReviewQuery{MediaID: m.ID, Sort: "RATING_DESC"})
}

// loadHistory fills the history list with recently opened records.
func (b *statefulBubble) loadHistory() (tea.Cmd, error) {
	entries, err := history.Recent(0)
	if err != nil {
		return nil, err
	}

	return b.historyC.SetItems(lo.Map(entries, func(e *history.Entry, _ int) list.Item { return historyItem(e) })), nil
}

// removeHistory deletes the selected history entry.
func (b *statefulBubble) removeHistory() tea.Cmd {
	item, ok := b.historyC.SelectedItem().(*listItem)
	if !ok {
		return nil
	}

	entry := item.internal.(*history.Entry)
	if err := history.Remove(entry); err != nil {
		b.logger.WithError(err).Warn("removing history")
		return ui.Notify(fmt.Sprintf("%s Could not remove %s", icon.Get(icon.Fail), entry.Title))
	}

	b.historyC.RemoveItem(b.historyC.Index())
	return nil
}

func recordKey(record any) string {
	switch r := record.(type) {
	case *anilist.Media:
		return "media:" + r.Key()
	case *anilist.Character:
		return "character:" + r.Key()
	default:
		return ""
	}
}
