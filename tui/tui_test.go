package tui

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/anisan-cli/anidex/anilist"
	"github.com/anisan-cli/anidex/filesystem"
	"github.com/anisan-cli/anidex/history"
	"github.com/anisan-cli/anidex/internal/ui"
	"github.com/anisan-cli/anidex/key"
	"github.com/anisan-cli/anidex/paginate"
	"github.com/benbjohnson/clock"
	tea "github.com/charmbracelet/bubbletea"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

// remote is a fake Anilist serving numbered records. Pages listed in fail return an error.
type remote struct {
	mu    sync.Mutex
	total int
	fail  map[int]bool
	calls int
}

func (r *remote) page(page, perPage int) (ids []int, hasNext bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls++
	if r.fail[page] {
		return nil, false, fmt.Errorf("page %d unavailable", page)
	}

	for id := (page-1)*perPage + 1; id <= min(page*perPage, r.total); id++ {
		ids = append(ids, id)
	}
	return ids, page*perPage < r.total, nil
}

func mediaFetcher[P comparable](r *remote) paginate.FetcherFunc[P, *anilist.Media] {
	return func(_ context.Context, _ P, page, perPage int) (paginate.Page[*anilist.Media], error) {
		ids, hasNext, err := r.page(page, perPage)
		if err != nil {
			return paginate.Page[*anilist.Media]{}, err
		}

		items := make([]*anilist.Media, len(ids))
		for i, id := range ids {
			items[i] = &anilist.Media{ID: id, Title: anilist.Title{Romaji: fmt.Sprintf("Media %d", id)}}
		}
		return paginate.Page[*anilist.Media]{Items: items, PageInfo: paginate.PageInfo{CurrentPage: page, HasNextPage: hasNext}}, nil
	}
}

func characterFetcher(r *remote) paginate.FetcherFunc[anilist.CharacterSearch, *anilist.Character] {
	return func(_ context.Context, _ anilist.CharacterSearch, page, perPage int) (paginate.Page[*anilist.Character], error) {
		ids, hasNext, err := r.page(page, perPage)
		if err != nil {
			return paginate.Page[*anilist.Character]{}, err
		}

		items := make([]*anilist.Character, len(ids))
		for i, id := range ids {
			items[i] = &anilist.Character{ID: id, Name: anilist.Name{Full: fmt.Sprintf("Character %d", id)}}
		}
		return paginate.Page[*anilist.Character]{Items: items, PageInfo: paginate.PageInfo{CurrentPage: page, HasNextPage: hasNext}}, nil
	}
}

func reviewFetcher(r *remote) paginate.FetcherFunc[anilist.ReviewQuery, *anilist.Review] {
	return func(_ context.Context, q anilist.ReviewQuery, page, perPage int) (paginate.Page[*anilist.Review], error) {
		ids, hasNext, err := r.page(page, perPage)
		if err != nil {
			return paginate.Page[*anilist.Review]{}, err
		}

		items := make([]*anilist.Review, len(ids))
		for i, id := range ids {
			items[i] = &anilist.Review{ID: id, MediaID: q.MediaID, Summary: fmt.Sprintf("Review %d", id)}
		}
		return paginate.Page[*anilist.Review]{Items: items, PageInfo: paginate.PageInfo{CurrentPage: page, HasNextPage: hasNext}}, nil
	}
}

type fakeDetails struct{}

func (fakeDetails) MediaByID(_ context.Context, id int) (*anilist.Media, error) {
	return &anilist.Media{ID: id, Title: anilist.Title{English: fmt.Sprintf("Full Media %d", id)}, Description: "loaded"}, nil
}

func (fakeDetails) CharacterByID(_ context.Context, id int) (*anilist.Character, error) {
	if id < 0 {
		return nil, errors.New("no such character")
	}
	return &anilist.Character{ID: id, Name: anilist.Name{Full: fmt.Sprintf("Full Character %d", id)}}, nil
}

type fixture struct {
	bubble  *statefulBubble
	clock   *clock.Mock
	anime   *remote
	search  *remote
	chars   *remote
	news    *remote
	reviews *remote
}

func newFixture() *fixture {
	return newFilteredFixture(nil)
}

// newFilteredFixture builds a fixture whose media lists only keep records accepted by keep.
func newFilteredFixture(keep func(*anilist.Media) bool) *fixture {
	f := &fixture{
		clock:   clock.NewMock(),
		anime:   &remote{total: 12, fail: map[int]bool{}},
		search:  &remote{total: 12, fail: map[int]bool{}},
		chars:   &remote{total: 12, fail: map[int]bool{}},
		news:    &remote{total: 12, fail: map[int]bool{}},
		reviews: &remote{total: 3, fail: map[int]bool{}},
	}

	f.bubble = newBubble(sources{
		anime:      mediaFetcher[anilist.MediaListing](f.anime),
		search:     mediaFetcher[anilist.MediaSearch](f.search),
		characters: characterFetcher(f.chars),
		news:       mediaFetcher[anilist.NewsFilter](f.news),
		reviews:    reviewFetcher(f.reviews),
		details:    fakeDetails{},
		keep:       keep,
	}, bubbleOptions{
		pageSize:  5,
		threshold: 2,
		interval:  300 * time.Millisecond,
		clock:     f.clock,
	})
	f.bubble.resize(120, 80)
	return f
}

func (f *fixture) animeScreen() *listScreen[anilist.MediaListing, *anilist.Media] {
	return f.bubble.screens[animeTab].(*listScreen[anilist.MediaListing, *anilist.Media])
}

func (f *fixture) searchScreen() *listScreen[anilist.MediaSearch, *anilist.Media] {
	return f.bubble.screens[searchTab].(*listScreen[anilist.MediaSearch, *anilist.Media])
}

func (f *fixture) newsScreen() *listScreen[anilist.NewsFilter, *anilist.Media] {
	return f.bubble.screens[newsTab].(*listScreen[anilist.NewsFilter, *anilist.Media])
}

// settle waits for the controller of s and delivers its state to the bubble, as waitFor would.
func settle[P comparable, T paginate.Item](b *statefulBubble, s *listScreen[P, T]) paginate.State[T] {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	state, err := s.controller.Await(ctx)
	So(err, ShouldBeNil)
	b.Update(stateMsg[T]{tab: s.tab, state: state})
	return state
}

func press(b *statefulBubble, keys ...tea.KeyMsg) {
	for _, k := range keys {
		b.Update(k)
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	down   = tea.KeyMsg{Type: tea.KeyDown}
	enter  = tea.KeyMsg{Type: tea.KeyEnter}
	esc    = tea.KeyMsg{Type: tea.KeyEsc}
	tabKey = tea.KeyMsg{Type: tea.KeyTab}
)

func TestBrowse(t *testing.T) {
	Convey("Given a bubble over fake remotes", t, func() {
		viper.Set(key.HistorySaveOnOpen, true)
		f := newFixture()
		b := f.bubble
		Reset(b.dispose)

		start := func() {
			b.Init()
			settle(b, f.animeScreen())
		}

		Convey("Init focuses the anime tab and lists its first page", func() {
			start()
			So(b.active, ShouldEqual, animeTab)
			So(f.animeScreen().listC.Items(), ShouldHaveLength, 5)
			So(f.anime.calls, ShouldEqual, 1)
			So(f.search.calls, ShouldEqual, 0)
		})

		Convey("Moving the cursor near the end loads the next page", func() {
			start()
			press(b, down, down)
			So(f.anime.calls, ShouldEqual, 1)

			press(b, down)
			state := settle(b, f.animeScreen())
			So(f.anime.calls, ShouldEqual, 2)
			So(state.Items, ShouldHaveLength, 10)
			So(state.PageInfo.CurrentPage, ShouldEqual, 2)
			So(f.animeScreen().listC.Items(), ShouldHaveLength, 10)
		})

		Convey("A failed later page keeps the list and shows a notification", func() {
			f.anime.fail[2] = true
			start()
			press(b, down, down, down)
			state := settle(b, f.animeScreen())

			So(state.Items, ShouldHaveLength, 5)
			So(f.animeScreen().notified, ShouldEqual, state.Err)

			b.Update(ui.Notify("Could not load page 2")())
			text, ok := b.notifier.Visible()
			So(ok, ShouldBeTrue)
			So(text, ShouldContainSubstring, "page 2")

			Convey("And retry asks for the page again", func() {
				delete(f.anime.fail, 2)
				press(b, runes("r"))
				state := settle(b, f.animeScreen())
				So(state.Items, ShouldHaveLength, 10)
				So(state.Err, ShouldBeNil)
			})
		})

		Convey("A failed first page shows an error with a retry hint", func() {
			f.anime.fail[1] = true
			start()
			So(b.View(), ShouldContainSubstring, "press r to retry")

			delete(f.anime.fail, 1)
			press(b, runes("r"))
			state := settle(b, f.animeScreen())
			So(state.Items, ShouldHaveLength, 5)
			So(b.View(), ShouldNotContainSubstring, "press r to retry")
		})

		Convey("Switching tabs blurs the old screen and starts the new one once", func() {
			start()
			press(b, tabKey)
			So(b.active, ShouldEqual, searchTab)
			So(f.animeScreen().focused, ShouldBeFalse)
			So(f.searchScreen().focused, ShouldBeTrue)
			So(f.searchScreen().typing(), ShouldBeTrue)
			settle(b, f.searchScreen())
			So(f.search.calls, ShouldEqual, 1)

			press(b, esc, tea.KeyMsg{Type: tea.KeyShiftTab})
			So(b.active, ShouldEqual, animeTab)
			So(f.animeScreen().listC.Items(), ShouldHaveLength, 5)
			So(f.anime.calls, ShouldEqual, 1)
		})

		Convey("Quitting disposes every controller", func() {
			start()
			press(b, runes("q"))
			So(f.animeScreen().controller.State().Phase, ShouldEqual, paginate.Disposed)
			So(f.newsScreen().controller.State().Phase, ShouldEqual, paginate.Disposed)
		})
	})
}

func TestFilteredBrowse(t *testing.T) {
	Convey("Given a first page that is entirely filtered out", t, func() {
		f := newFilteredFixture(func(m *anilist.Media) bool { return m.ID > 5 })
		b := f.bubble
		Reset(b.dispose)

		b.Init()
		state := settle(b, f.animeScreen())
		So(state.Items, ShouldBeEmpty)
		So(state.HasNextPage(), ShouldBeTrue)

		Convey("The next page is requested without any scrolling", func() {
			state := settle(b, f.animeScreen())
			So(f.anime.calls, ShouldEqual, 2)
			So(state.PageInfo.CurrentPage, ShouldEqual, 2)
			So(state.Items, ShouldHaveLength, 5)
			So(state.Items[0].ID, ShouldEqual, 6)
			So(f.animeScreen().listC.Items(), ShouldHaveLength, 5)
		})
	})

	Convey("Given a list where nothing passes the filter", t, func() {
		f := newFilteredFixture(func(*anilist.Media) bool { return false })
		b := f.bubble
		Reset(b.dispose)

		b.Init()
		for i := 0; i < 3; i++ {
			settle(b, f.animeScreen())
		}

		Convey("Loading stops at the last page", func() {
			state := f.animeScreen().controller.State()
			So(state.Items, ShouldBeEmpty)
			So(state.HasNextPage(), ShouldBeFalse)
			So(f.anime.calls, ShouldEqual, 3)
		})
	})
}

func TestSearch(t *testing.T) {
	Convey("Given the search tab", t, func() {
		viper.Set(key.SearchShowQuerySuggestions, false)
		f := newFixture()
		b := f.bubble
		Reset(b.dispose)

		b.focus(searchTab)
		s := f.searchScreen()
		settle(b, s)

		Convey("The first keystroke commits, closer ones are held", func() {
			press(b, runes("n"))
			So(s.controller.Params().Search, ShouldEqual, "n")

			f.clock.Add(100 * time.Millisecond)
			press(b, runes("a"))
			So(s.controller.Params().Search, ShouldEqual, "n")

			Convey("And a tick after the interval commits the held text", func() {
				f.clock.Add(250 * time.Millisecond)
				b.Update(throttleTickMsg{tab: searchTab})
				So(s.controller.Params().Search, ShouldEqual, "na")
			})

			Convey("And an early tick keeps holding it", func() {
				f.clock.Add(50 * time.Millisecond)
				b.Update(throttleTickMsg{tab: searchTab})
				So(s.controller.Params().Search, ShouldEqual, "n")
			})

			Convey("And enter commits immediately and leaves the search box", func() {
				press(b, enter)
				So(s.controller.Params().Search, ShouldEqual, "na")
				So(s.typing(), ShouldBeFalse)
			})
		})

		Convey("Clearing the box commits at once", func() {
			press(b, runes("x"))
			f.clock.Add(10 * time.Millisecond)
			press(b, tea.KeyMsg{Type: tea.KeyBackspace})
			So(s.controller.Params().Search, ShouldEqual, "")
		})

		Convey("The type filter cycles outside the search box", func() {
			press(b, esc, runes("t"))
			So(s.controller.Params().Type, ShouldEqual, "ANIME")
			press(b, runes("t"))
			So(s.controller.Params().Type, ShouldEqual, "MANGA")
			press(b, runes("/"))
			So(s.typing(), ShouldBeTrue)
		})
	})
}

func TestNews(t *testing.T) {
	Convey("Given the news tab", t, func() {
		f := newFixture()
		b := f.bubble
		Reset(b.dispose)

		b.focus(newsTab)
		s := f.newsScreen()
		settle(b, s)

		Convey("Filter keys cycle their options and reset the list", func() {
			press(b, runes("f"))
			So(s.controller.Params().Genre, ShouldEqual, "Action")

			press(b, runes("s"), runes("s"))
			So(s.controller.Params().Status, ShouldEqual, "RELEASING")

			press(b, runes("O"))
			So(s.controller.Params().Sort, ShouldEqual, "TITLE_ENGLISH")

			state := settle(b, s)
			So(state.Items, ShouldHaveLength, 5)
			So(b.View(), ShouldContainSubstring, "Action")
		})
	})
}

func TestDetail(t *testing.T) {
	Convey("Given a listed anime", t, func() {
		viper.Set(key.HistorySaveOnOpen, true)
		f := newFixture()
		b := f.bubble
		Reset(b.dispose)

		b.focus(animeTab)
		settle(b, f.animeScreen())

		Convey("Enter opens its detail and loads the full record", func() {
			b.Update(enter)
			So(b.state, ShouldEqual, detailState)
			So(b.loading, ShouldBeTrue)

			cmd := b.openDetail(&anilist.Media{ID: 1})
			b.Update(cmd())
			So(b.loading, ShouldBeFalse)

			record, ok := b.detail.Get()
			So(ok, ShouldBeTrue)
			So(record.(*anilist.Media).Description, ShouldEqual, "loaded")

			saved, err := history.Get()
			So(err, ShouldBeNil)
			So(saved, ShouldContainKey, "media:1")

			Convey("Reviews of it are listed by their own controller", func() {
				b.Update(runes("v"))
				So(b.state, ShouldEqual, reviewsState)
				state := settle(b, b.reviews)
				So(state.Items, ShouldHaveLength, 3)
				So(b.reviews.controller.Params().MediaID, ShouldEqual, 1)

				b.Update(esc)
				So(b.state, ShouldEqual, detailState)
			})

			Convey("Esc goes back to the list", func() {
				b.Update(esc)
				So(b.state, ShouldEqual, browseState)
				_, ok := b.detail.Get()
				So(ok, ShouldBeFalse)
			})
		})

		Convey("A late detail for another record is ignored", func() {
			b.openDetail(&anilist.Media{ID: 2})
			b.Update(detailMsg{record: &anilist.Media{ID: 3}})
			record, _ := b.detail.Get()
			So(record.(*anilist.Media).ID, ShouldEqual, 2)
		})

		Convey("A failed detail keeps the partial record", func() {
			b.openDetail(&anilist.Character{ID: -1, Name: anilist.Name{Full: "Partial"}})
			b.Update(detailMsg{err: errors.New("boom")})
			record, _ := b.detail.Get()
			So(record.(*anilist.Character).Name.Full, ShouldEqual, "Partial")
			So(b.loading, ShouldBeFalse)
		})
	})
}
