// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/anisan-cli/anidex/icon"
	"github.com/anisan-cli/anidex/internal/ui"
	"github.com/anisan-cli/anidex/key"
	"github.com/anisan-cli/anidex/paginate"
	"github.com/anisan-cli/anidex/query"
	"github.com/anisan-cli/anidex/style"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// stateMsg carries a controller snapshot to the screen of tab.
type stateMsg[T any] struct {
	tab   tab
	state paginate.State[T]
}

// throttleTickMsg asks the screen of tab to retry a held search text.
type throttleTickMsg struct {
	tab tab
}

// waitFor reads the next snapshot from updates. A closed channel yields no message.
func waitFor[T any](t tab, updates <-chan paginate.State[T]) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-updates
		if !ok {
			return nil
		}
		return stateMsg[T]{tab: t, state: s}
	}
}

// screen is one controller-backed list surface.
type screen interface {
	id() tab
	onFocus() tea.Cmd
	onBlur()
	typing() bool
	apply(msg tea.Msg) (tea.Cmd, bool)
	tick() tea.Cmd
	handleKey(msg tea.KeyMsg) tea.Cmd
	forward(msg tea.Msg) tea.Cmd
	selected() (any, bool)
	setSize(width, height int)
	view() string
	dispose()
}

// filter cycles one parameter of P through its options.
type filter[P any] struct {
	binding bubblesKey.Binding
	name    string
	cycle   func(P, int) P
	label   func(P) string
}

type listScreen[P comparable, T paginate.Item] struct {
	tab        tab
	controller *paginate.Controller[P, T]
	wrap       func(T) list.Item
	logger     logrus.FieldLogger
	keymap     *statefulKeymap

	params    P
	pageSize  int
	threshold int
	started   bool
	focused   bool

	listC    list.Model
	current  paginate.State[T]
	notified error

	filters []filter[P]

	// search is set for screens with a search box.
	search     func(P, string) P
	inputC     textinput.Model
	throttle   *paginate.Throttle
	interval   time.Duration
	suggestion mo.Option[string]
	width      int
}

func (s *listScreen[P, T]) id() tab {
	return s.tab
}

// start initializes the controller with the current parameters and begins listening for updates.
func (s *listScreen[P, T]) start() tea.Cmd {
	if s.started {
		return nil
	}

	if err := s.controller.Initialize(s.params, s.pageSize); err != nil {
		s.logger.WithError(err).Error("initialize")
		return nil
	}

	s.started = true
	return tea.Batch(waitFor(s.tab, s.controller.Updates()), s.listC.StartSpinner())
}

// onFocus starts the screen on its first focus. Later focuses keep the accumulated list.
func (s *listScreen[P, T]) onFocus() tea.Cmd {
	s.focused = true
	s.keymap.setTyping(s.typing())

	if s.started {
		return nil
	}

	if s.search != nil {
		s.inputC.Focus()
		s.keymap.setTyping(true)
	}

	return tea.Batch(s.start(), textinput.Blink)
}

// onBlur leaves the controller running so the list is intact when the tab is focused again.
func (s *listScreen[P, T]) onBlur() {
	s.focused = false
}

func (s *listScreen[P, T]) typing() bool {
	return s.search != nil && s.inputC.Focused()
}

// setParams commits new parameters. The controller ignores equal ones.
func (s *listScreen[P, T]) setParams(params P) tea.Cmd {
	s.params = params
	if !s.started {
		return s.start()
	}

	if err := s.controller.UpdateParameters(params); err != nil {
		s.logger.WithError(err).Error("update parameters")
	}
	return nil
}

// apply renders a controller snapshot addressed to this screen.
func (s *listScreen[P, T]) apply(msg tea.Msg) (tea.Cmd, bool) {
	m, ok := msg.(stateMsg[T])
	if !ok || m.tab != s.tab {
		return nil, false
	}

	s.current = m.state
	if m.state.Phase == paginate.Disposed {
		return nil, true
	}

	cmds := []tea.Cmd{
		s.listC.SetItems(lo.Map(m.state.Items, func(item T, _ int) list.Item { return s.wrap(item) })),
		waitFor(s.tab, s.controller.Updates()),
	}

	if m.state.Loading {
		cmds = append(cmds, s.listC.StartSpinner())
	} else {
		s.listC.StopSpinner()
	}

	var fetchErr *paginate.FetchError
	switch {
	case errors.As(m.state.Err, &fetchErr) && !fetchErr.Initial:
		if m.state.Err != s.notified {
			s.notified = m.state.Err
			cmds = append(cmds, ui.Notify(fmt.Sprintf("%s Could not load page %d", icon.Get(icon.Warn), fetchErr.Page)))
		}
	case m.state.Err == nil && len(m.state.Items) == 0 && m.state.Phase == paginate.Ready && m.state.HasNextPage():
		// Everything fetched so far was filtered out, so there is nothing to scroll towards.
		s.notified = nil
		if err := s.controller.LoadMore(); err != nil {
			s.logger.WithError(err).Warn("load more")
		}
	case m.state.Err == nil:
		s.notified = nil
		cmds = append(cmds, s.maybeLoadMore())
	}

	return tea.Batch(cmds...), true
}

// maybeLoadMore requests the next page when the cursor is near the end of the list.
func (s *listScreen[P, T]) maybeLoadMore() tea.Cmd {
	total := len(s.listC.Items())
	if total == 0 || s.listC.Index() < total-s.threshold {
		return nil
	}

	if err := s.controller.LoadMore(); err != nil {
		s.logger.WithError(err).Warn("load more")
	}
	return nil
}

// retry reloads after a failed first page and asks for the next page after a failed later one.
func (s *listScreen[P, T]) retry() tea.Cmd {
	var fetchErr *paginate.FetchError
	if !errors.As(s.current.Err, &fetchErr) {
		return nil
	}

	var err error
	if fetchErr.Initial {
		err = s.controller.Reload()
	} else {
		err = s.controller.LoadMore()
	}

	if err != nil {
		s.logger.WithError(err).Warn("retry")
	}
	return nil
}

func (s *listScreen[P, T]) handleKey(msg tea.KeyMsg) tea.Cmd {
	if s.typing() {
		return s.handleTyping(msg)
	}

	for _, f := range s.filters {
		if bubblesKey.Matches(msg, f.binding) {
			return s.setParams(f.cycle(s.params, 1))
		}
	}

	switch {
	case bubblesKey.Matches(msg, s.keymap.retry):
		return s.retry()
	case s.search != nil && bubblesKey.Matches(msg, s.keymap.search):
		s.keymap.setTyping(true)
		return s.inputC.Focus()
	}

	return s.forward(msg)
}

func (s *listScreen[P, T]) handleTyping(msg tea.KeyMsg) tea.Cmd {
	switch {
	case bubblesKey.Matches(msg, s.keymap.confirm):
		text := s.inputC.Value()
		s.throttle.Flush()
		if err := query.Remember(text, 1); err != nil {
			s.logger.WithError(err).Warn("remember query")
		}
		s.inputC.Blur()
		s.keymap.setTyping(false)
		return s.setParams(s.search(s.params, text))
	case bubblesKey.Matches(msg, s.keymap.back):
		s.inputC.Blur()
		s.keymap.setTyping(false)
		return nil
	case bubblesKey.Matches(msg, s.keymap.acceptSearchSuggestion):
		if suggestion, ok := s.suggestion.Get(); ok {
			s.inputC.SetValue(suggestion)
			s.inputC.CursorEnd()
			s.suggestion = mo.None[string]()
			return s.offer()
		}
		return nil
	}

	before := s.inputC.Value()

	var cmd tea.Cmd
	s.inputC, cmd = s.inputC.Update(msg)
	if s.inputC.Value() == before {
		return cmd
	}

	s.suggestion = suggest(s.inputC.Value())
	return tea.Batch(cmd, s.offer())
}

// offer passes the typed text through the throttle. A held text is retried after the interval.
func (s *listScreen[P, T]) offer() tea.Cmd {
	text := s.inputC.Value()
	if s.throttle.Offer(text) {
		return s.setParams(s.search(s.params, text))
	}

	t := s.tab
	return tea.Tick(s.interval, func(time.Time) tea.Msg {
		return throttleTickMsg{tab: t}
	})
}

// tick commits a held search text once the throttle allows it.
func (s *listScreen[P, T]) tick() tea.Cmd {
	if s.throttle == nil || !s.throttle.Pending() {
		return nil
	}
	return s.offer()
}

// forward passes msg to the list and loads more if the cursor moved near the end.
func (s *listScreen[P, T]) forward(msg tea.Msg) tea.Cmd {
	var listCmd, inputCmd tea.Cmd
	s.listC, listCmd = s.listC.Update(msg)
	if s.search != nil {
		s.inputC, inputCmd = s.inputC.Update(msg)
	}

	if _, ok := msg.(tea.KeyMsg); ok {
		return tea.Batch(listCmd, inputCmd, s.maybeLoadMore())
	}
	return tea.Batch(listCmd, inputCmd)
}

func (s *listScreen[P, T]) selected() (any, bool) {
	item, ok := s.listC.SelectedItem().(*listItem)
	if !ok || item == nil {
		return nil, false
	}
	return item.internal, true
}

func (s *listScreen[P, T]) setSize(width, height int) {
	s.width = width
	s.inputC.Width = width

	header := lineCount(s.header())
	s.listC.SetSize(width, max(height-header, 1))
	s.listC.Help.Width = width
}

// header renders the search box and filter labels above the list.
func (s *listScreen[P, T]) header() string {
	var lines []string

	if s.search != nil {
		line := s.inputC.View()
		if suggestion, ok := s.suggestion.Get(); ok && s.typing() {
			line += " " + style.Faint(suggestion)
		}
		lines = append(lines, line)
	}

	if len(s.filters) > 0 {
		labels := lo.Map(s.filters, func(f filter[P], _ int) string {
			return fmt.Sprintf("%s %s", style.Faint(f.name+":"), f.label(s.params))
		})
		lines = append(lines, strings.Join(labels, style.Faint(" • ")))
	}

	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func (s *listScreen[P, T]) view() string {
	var fetchErr *paginate.FetchError
	if errors.As(s.current.Err, &fetchErr) && fetchErr.Initial {
		return s.header() + "\n" + style.ErrorTitle("Error") + "\n\n" +
			icon.Get(icon.Fail) + " " + fetchErr.Err.Error() + "\n\n" +
			style.Faint("press r to retry")
	}

	return s.header() + s.listC.View()
}

func (s *listScreen[P, T]) dispose() {
	s.controller.Dispose()
}

func lineCount(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n")
}

// suggest returns a completion of text from the search history, if one is remembered.
func suggest(text string) mo.Option[string] {
	if !viper.GetBool(key.SearchShowQuerySuggestions) || strings.TrimSpace(text) == "" {
		return mo.None[string]()
	}

	suggestion, ok := query.Suggest(text).Get()
	if !ok || strings.EqualFold(suggestion, text) {
		return mo.None[string]()
	}
	return mo.Some(suggestion)
}
