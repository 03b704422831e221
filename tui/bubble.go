// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/anisan-cli/anidex/anilist"
	"github.com/anisan-cli/anidex/constant"
	"github.com/anisan-cli/anidex/internal/ui"
	"github.com/anisan-cli/anidex/key"
	"github.com/anisan-cli/anidex/log"
	"github.com/anisan-cli/anidex/paginate"
	"github.com/anisan-cli/anidex/style"
	"github.com/anisan-cli/anidex/util"
	"github.com/benbjohnson/clock"
	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// detailer loads single records for the detail view.
type detailer interface {
	MediaByID(ctx context.Context, id int) (*anilist.Media, error)
	CharacterByID(ctx context.Context, id int) (*anilist.Character, error)
}

// sources are the remote collaborators of the interface.
type sources struct {
	anime      paginate.Fetcher[anilist.MediaListing, *anilist.Media]
	search     paginate.Fetcher[anilist.MediaSearch, *anilist.Media]
	characters paginate.Fetcher[anilist.CharacterSearch, *anilist.Character]
	news       paginate.Fetcher[anilist.NewsFilter, *anilist.Media]
	reviews    paginate.Fetcher[anilist.ReviewQuery, *anilist.Review]
	details    detailer
	keep       func(*anilist.Media) bool
}

func clientSources(client *anilist.Client) sources {
	return sources{
		anime:      client.AnimeListing(),
		search:     client.MediaSearcher(),
		characters: client.CharacterSearcher(),
		news:       client.NewsFeed(),
		reviews:    client.ReviewFeed(),
		details:    client,
		keep:       anilist.Keep(client.HidesAdult()),
	}
}

// statefulBubble encapsulates the comprehensive application state, including component models and workflow tracking.
type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]

	keymap *statefulKeymap
	logger logrus.FieldLogger

	ctx    context.Context
	cancel context.CancelFunc

	// components
	screens  map[tab]screen
	reviews  *listScreen[anilist.ReviewQuery, *anilist.Review]
	active   tab
	historyC list.Model
	detailC  viewport.Model
	helpC    help.Model

	details  detailer
	detail   mo.Option[any]
	loading  bool
	notifier *ui.Model

	width, height int
}

// setState performs a synchronous transition of both the application workflow and its associated keymap.
func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState transitions to s, recording the previous state for previousState.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	b.statesHistory.Push(b.state)
	b.setState(s)
}

// previousState restores the application to its immediate predecessor in the navigation stack.
func (b *statefulBubble) previousState() {
	if previous, ok := b.statesHistory.Pop().Get(); ok {
		b.setState(previous)
	}
}

func (b *statefulBubble) current() screen {
	return b.screens[b.active]
}

// focus blurs the active tab and focuses t.
func (b *statefulBubble) focus(t tab) tea.Cmd {
	if s, ok := b.screens[b.active]; ok && b.active != t {
		s.onBlur()
	}

	b.active = t
	b.keymap.setTab(t)
	return b.screens[t].onFocus()
}

// resize propagates terminal dimension changes to all child component models.
func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	listWidth := width - xx
	listHeight := height - yy - lipgloss.Height(b.viewTabs())

	for _, s := range b.screens {
		s.setSize(listWidth, listHeight)
	}
	b.reviews.setSize(listWidth, listHeight)

	b.historyC.SetSize(listWidth, listHeight)
	b.historyC.Help.Width = listWidth

	b.width = width - x
	b.height = height - y
	b.detailC.Width = b.width
	b.detailC.Height = max(b.height-2, 1)
	b.helpC.Width = listWidth
}

// Options for newBubble beyond the remote sources.
type bubbleOptions struct {
	pageSize  int
	threshold int
	interval  time.Duration
	clock     clock.Clock
	hideAdult bool
}

func defaultBubbleOptions() bubbleOptions {
	return bubbleOptions{
		pageSize:  max(viper.GetInt(key.BrowsePageSize), 1),
		threshold: max(viper.GetInt(key.TUILoadMoreThreshold), 1),
		interval:  time.Duration(viper.GetInt(key.SearchThrottleMs)) * time.Millisecond,
		hideAdult: viper.GetBool(key.BrowseHideAdult),
	}
}

// newBubble performs a complete initialization of the application's primary UI model.
func newBubble(src sources, opts bubbleOptions) *statefulBubble {
	ctx, cancel := context.WithCancel(context.Background())
	keymap := newStatefulKeymap()

	bubble := &statefulBubble{
		statesHistory: util.Stack[state]{},
		keymap:        keymap,
		logger:        log.Component("tui"),
		ctx:           ctx,
		cancel:        cancel,
		details:       src.details,
		notifier:      &ui.Model{},
		helpC:         help.New(),
		detailC:       viewport.New(0, 0),
	}

	makeList := func(title string) list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
		delegate.Styles.SelectedTitle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(style.AccentColor).
			Foreground(style.AccentColor).
			Padding(0, 0, 0, 1)
		delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(lipgloss.Color("7"))
		delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

		listC := list.New([]list.Item{}, delegate, 0, 0)
		listC.KeyMap = keymap.forList()
		listC.AdditionalShortHelpKeys = keymap.ShortHelp
		listC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
			return keymap.FullHelp()[0]
		}
		listC.Title = title
		listC.Styles.NoItems = paddingStyle
		listC.Styles.Title = lipgloss.NewStyle().Foreground(style.Base).Background(style.AccentColor).Padding(0, 1)
		listC.SetFilteringEnabled(false)
		listC.SetShowStatusBar(false)
		return listC
	}

	makeInput := func(placeholder string) textinput.Model {
		inputC := textinput.New()
		inputC.Placeholder = placeholder
		inputC.CharLimit = 60
		inputC.Prompt = viper.GetString(key.TUISearchPromptString)
		return inputC
	}

	logger := func(t tab) logrus.FieldLogger {
		return bubble.logger.WithField("tab", t.String())
	}

	keep := src.keep
	if keep == nil {
		keep = anilist.Keep(opts.hideAdult)
	}
	mediaFilter := paginate.WithFilter(keep)

	anime := &listScreen[anilist.MediaListing, *anilist.Media]{
		tab:        animeTab,
		controller: paginate.New(src.anime, paginate.WithContext[*anilist.Media](ctx), paginate.WithLogger[*anilist.Media](logger(animeTab)), mediaFilter),
		wrap:       mediaItem,
		logger:     logger(animeTab),
		keymap:     keymap,
		pageSize:   opts.pageSize,
		threshold:  opts.threshold,
		listC:      makeList("Popular Anime"),
	}

	search := &listScreen[anilist.MediaSearch, *anilist.Media]{
		tab:        searchTab,
		controller: paginate.New(src.search, paginate.WithContext[*anilist.Media](ctx), paginate.WithLogger[*anilist.Media](logger(searchTab)), mediaFilter),
		wrap:       mediaItem,
		logger:     logger(searchTab),
		keymap:     keymap,
		pageSize:   opts.pageSize,
		threshold:  opts.threshold,
		listC:      makeList("Search Results"),
		filters: []filter[anilist.MediaSearch]{
			{
				binding: keymap.mediaType,
				name:    "Type",
				cycle: func(p anilist.MediaSearch, step int) anilist.MediaSearch {
					p.Type = anilist.Cycle(anilist.TypeOptions, p.Type, step).Value
					return p
				},
				label: func(p anilist.MediaSearch) string { return anilist.Label(anilist.TypeOptions, p.Type) },
			},
		},
		search: func(p anilist.MediaSearch, text string) anilist.MediaSearch {
			p.Search = text
			return p
		},
		inputC:   makeInput(fmt.Sprintf("Search Anime (v%s)", constant.Version)),
		throttle: paginate.NewThrottle(opts.interval, opts.clock),
		interval: opts.interval,
	}

	characters := &listScreen[anilist.CharacterSearch, *anilist.Character]{
		tab:        charactersTab,
		controller: paginate.New(src.characters, paginate.WithContext[*anilist.Character](ctx), paginate.WithLogger[*anilist.Character](logger(charactersTab))),
		wrap:       characterItem,
		logger:     logger(charactersTab),
		keymap:     keymap,
		params:     anilist.CharacterSearch{Sort: anilist.CharacterSortOptions[0].Value},
		pageSize:   opts.pageSize,
		threshold:  opts.threshold,
		listC:      makeList("Characters"),
		filters: []filter[anilist.CharacterSearch]{
			{
				binding: keymap.sort,
				name:    "Sort",
				cycle: func(p anilist.CharacterSearch, step int) anilist.CharacterSearch {
					p.Sort = anilist.Cycle(anilist.CharacterSortOptions, p.Sort, step).Value
					return p
				},
				label: func(p anilist.CharacterSearch) string { return anilist.Label(anilist.CharacterSortOptions, p.Sort) },
			},
		},
		search: func(p anilist.CharacterSearch, text string) anilist.CharacterSearch {
			p.Search = text
			return p
		},
		inputC:   makeInput("Search Characters"),
		throttle: paginate.NewThrottle(opts.interval, opts.clock),
		interval: opts.interval,
	}

	news := &listScreen[anilist.NewsFilter, *anilist.Media]{
		tab:        newsTab,
		controller: paginate.New(src.news, paginate.WithContext[*anilist.Media](ctx), paginate.WithLogger[*anilist.Media](logger(newsTab)), mediaFilter),
		wrap:       newsItem,
		logger:     logger(newsTab),
		keymap:     keymap,
		pageSize:   opts.pageSize,
		threshold:  opts.threshold,
		listC:      makeList("News"),
		filters:    newsFilters(keymap),
	}

	bubble.reviews = &listScreen[anilist.ReviewQuery, *anilist.Review]{
		tab:        reviewsTab,
		controller: paginate.New(src.reviews, paginate.WithContext[*anilist.Review](ctx), paginate.WithLogger[*anilist.Review](logger(reviewsTab))),
		wrap:       reviewItem,
		logger:     logger(reviewsTab),
		keymap:     keymap,
		pageSize:   opts.pageSize,
		threshold:  opts.threshold,
		listC:      makeList("Reviews"),
	}

	bubble.screens = map[tab]screen{
		animeTab:      anime,
		searchTab:     search,
		charactersTab: characters,
		newsTab:       news,
	}

	bubble.historyC = makeList("History")
	bubble.historyC.SetShowStatusBar(true)
	bubble.historyC.SetStatusBarItemName("entry", "entries")

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	return bubble
}

func newsFilters(keymap *statefulKeymap) []filter[anilist.NewsFilter] {
	field := func(binding bubblesKey.Binding, name string, options []anilist.Option, get func(*anilist.NewsFilter) *string) filter[anilist.NewsFilter] {
		return filter[anilist.NewsFilter]{
			binding: binding,
			name:    name,
			cycle: func(p anilist.NewsFilter, step int) anilist.NewsFilter {
				v := get(&p)
				*v = anilist.Cycle(options, *v, step).Value
				return p
			},
			label: func(p anilist.NewsFilter) string { return anilist.Label(options, *get(&p)) },
		}
	}

	return []filter[anilist.NewsFilter]{
		field(keymap.genre, "Genre", anilist.GenreOptions, func(p *anilist.NewsFilter) *string { return &p.Genre }),
		field(keymap.mediaType, "Type", anilist.TypeOptions, func(p *anilist.NewsFilter) *string { return &p.Type }),
		field(keymap.status, "Status", anilist.StatusOptions, func(p *anilist.NewsFilter) *string { return &p.Status }),
		field(keymap.sort, "Sort", anilist.SortOptions, func(p *anilist.NewsFilter) *string { return &p.Sort }),
	}
}

// dispose stops every controller and cancels outstanding requests.
func (b *statefulBubble) dispose() {
	for _, s := range b.screens {
		s.dispose()
	}
	b.reviews.dispose()
	b.cancel()
}

// tabsInOrder lists the browsable screens in tab bar order.
func (b *statefulBubble) tabsInOrder() []screen {
	return lo.Map(browsable, func(t tab, _ int) screen { return b.screens[t] })
}
