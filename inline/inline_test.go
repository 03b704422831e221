package inline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/anisan-cli/anidex/anilist"
	"github.com/anisan-cli/anidex/history"
	"github.com/anisan-cli/anidex/paginate"
	. "github.com/smartystreets/goconvey/convey"
)

// pagedMedia serves ids [1..total] in pages, overlapping each page with the
// last id of the previous one. Page failPage fails.
func pagedMedia(total, failPage int, calls *int) paginate.FetcherFunc[anilist.MediaSearch, *anilist.Media] {
	return func(_ context.Context, _ anilist.MediaSearch, page, perPage int) (paginate.Page[*anilist.Media], error) {
		*calls++
		if page == failPage {
			return paginate.Page[*anilist.Media]{}, errors.New("boom")
		}

		start := (page-1)*perPage + 1
		if page > 1 {
			start--
		}

		var items []*anilist.Media
		for id := start; id <= min(page*perPage, total); id++ {
			items = append(items, &anilist.Media{ID: id, Title: anilist.Title{Romaji: "Title"}, Genres: []string{"Action"}})
		}

		return paginate.Page[*anilist.Media]{
			Items:    items,
			PageInfo: paginate.PageInfo{CurrentPage: page, HasNextPage: page*perPage < total},
		}, nil
	}
}

func ids(items []*anilist.Media) []int {
	out := make([]int, len(items))
	for i, m := range items {
		out[i] = m.ID
	}
	return out
}

func TestCollect(t *testing.T) {
	ctx := context.Background()
	params := anilist.MediaSearch{Search: "naruto"}

	Convey("Given a fetcher with overlapping pages", t, func() {
		var calls int

		Convey("It collects the requested number of pages without duplicates", func() {
			out, err := Collect(ctx, pagedMedia(10, 0, &calls), params, &Options{Pages: 2, PageSize: 3})
			So(err, ShouldBeNil)
			So(out.Pages, ShouldEqual, 2)
			So(out.HasNextPage, ShouldBeTrue)
			So(ids(out.Items), ShouldResemble, []int{1, 2, 3, 4, 5, 6})
			So(out.Query, ShouldResemble, params)
			So(calls, ShouldEqual, 2)
		})

		Convey("It stops at the last page", func() {
			out, err := Collect(ctx, pagedMedia(5, 0, &calls), params, &Options{Pages: 10, PageSize: 3})
			So(err, ShouldBeNil)
			So(out.Pages, ShouldEqual, 2)
			So(out.HasNextPage, ShouldBeFalse)
			So(ids(out.Items), ShouldResemble, []int{1, 2, 3, 4, 5})
			So(calls, ShouldEqual, 2)
		})

		Convey("Zero pages means one page", func() {
			out, err := Collect(ctx, pagedMedia(10, 0, &calls), params, &Options{PageSize: 3})
			So(err, ShouldBeNil)
			So(out.Pages, ShouldEqual, 1)
			So(calls, ShouldEqual, 1)
		})

		Convey("A failed first page returns no output", func() {
			out, err := Collect(ctx, pagedMedia(10, 1, &calls), params, &Options{Pages: 3, PageSize: 3})
			So(out, ShouldBeNil)

			var fetchErr *paginate.FetchError
			So(errors.As(err, &fetchErr), ShouldBeTrue)
			So(fetchErr.Initial, ShouldBeTrue)
		})

		Convey("A failed later page keeps what was collected", func() {
			out, err := Collect(ctx, pagedMedia(10, 2, &calls), params, &Options{Pages: 3, PageSize: 3})
			So(err, ShouldNotBeNil)
			So(out, ShouldNotBeNil)
			So(out.Pages, ShouldEqual, 1)
			So(ids(out.Items), ShouldResemble, []int{1, 2, 3})
		})

		Convey("The merge filter applies", func() {
			keepOdd := paginate.WithFilter(func(m *anilist.Media) bool { return m.ID%2 == 1 })
			out, err := Collect(ctx, pagedMedia(6, 0, &calls), params, &Options{Pages: 2, PageSize: 3}, keepOdd)
			So(err, ShouldBeNil)
			So(ids(out.Items), ShouldResemble, []int{1, 3, 5})
		})
	})
}

func TestRun(t *testing.T) {
	ctx := context.Background()
	params := anilist.MediaSearch{Search: "test"}

	Convey("Given an output buffer", t, func() {
		var (
			buf   bytes.Buffer
			calls int
		)

		Convey("JSON output decodes into the output document", func() {
			err := Run(ctx, pagedMedia(2, 0, &calls), params, MediaColumns, &Options{Out: &buf, Json: true, PageSize: 5})
			So(err, ShouldBeNil)

			var out Output[anilist.MediaSearch, *anilist.Media]
			So(json.Unmarshal(buf.Bytes(), &out), ShouldBeNil)
			So(out.Query.Search, ShouldEqual, "test")
			So(out.Pages, ShouldEqual, 1)
			So(out.Items, ShouldHaveLength, 2)
		})

		Convey("An empty result encodes items as an empty array", func() {
			err := Run(ctx, pagedMedia(0, 0, &calls), params, MediaColumns, &Options{Out: &buf, Json: true, PageSize: 5})
			So(err, ShouldBeNil)
			So(buf.String(), ShouldContainSubstring, `"items":[]`)
		})

		Convey("Table output lists every item", func() {
			err := Run(ctx, pagedMedia(2, 0, &calls), params, MediaColumns, &Options{Out: &buf, PageSize: 5})
			So(err, ShouldBeNil)
			So(buf.String(), ShouldContainSubstring, "Title")
			So(buf.String(), ShouldContainSubstring, "Action")
		})

		Convey("A failed first page writes nothing", func() {
			err := Run(ctx, pagedMedia(2, 1, &calls), params, MediaColumns, &Options{Out: &buf, Json: true})
			So(err, ShouldNotBeNil)
			So(buf.Len(), ShouldEqual, 0)
		})
	})
}

func TestSchema(t *testing.T) {
	Convey("Schemas exist for every surface", t, func() {
		for surface := range Schemas {
			schema, ok := Schema(surface)
			So(ok, ShouldBeTrue)
			So(schema, ShouldNotBeNil)
		}

		_, ok := Schema("unknown")
		So(ok, ShouldBeFalse)
	})

	Convey("Generic names lose their package paths", t, func() {
		So(schemaName(reflect.TypeOf(Output[anilist.MediaSearch, *anilist.Media]{})), ShouldEqual, "OutputMediaSearchMedia")
		So(schemaName(reflect.TypeOf(anilist.Media{})), ShouldEqual, "Media")
	})
}

func TestWrite(t *testing.T) {
	Convey("Given history entries", t, func() {
		var buf bytes.Buffer
		entries := []*history.Entry{
			{Kind: history.KindMedia, ID: 1, Title: "Frieren", Opened: 2},
			{Kind: history.KindCharacter, ID: 7, Title: "Fern", Opened: 1},
		}

		Convey("A table lists them", func() {
			So(Write(&buf, HistoryColumns, entries, false), ShouldBeNil)
			So(buf.String(), ShouldContainSubstring, "Frieren")
			So(buf.String(), ShouldContainSubstring, "character")
		})

		Convey("JSON encodes them as an array", func() {
			So(Write(&buf, HistoryColumns, entries, true), ShouldBeNil)

			var decoded []map[string]any
			So(json.Unmarshal(buf.Bytes(), &decoded), ShouldBeNil)
			So(decoded, ShouldHaveLength, 2)
			So(decoded[1]["title"], ShouldEqual, "Fern")
		})

		Convey("No entries encode as an empty array", func() {
			So(Write[*history.Entry](&buf, HistoryColumns, nil, true), ShouldBeNil)
			So(buf.String(), ShouldEqual, "[]\n")
		})
	})
}
