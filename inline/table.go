package inline

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/anisan-cli/anidex/anilist"
	"github.com/anisan-cli/anidex/history"
	"github.com/anisan-cli/anidex/util"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/samber/lo"
)

const titleWidth = 48

// Columns describes how items are laid out in table output.
type Columns[T any] struct {
	Header []string
	Row    func(T) []string
}

func number(n int) string {
	if n == 0 {
		return "-"
	}
	return strconv.Itoa(n)
}

// MediaColumns lay out anime listings and title searches.
var MediaColumns = Columns[*anilist.Media]{
	Header: []string{"ID", "Title", "Format", "Status", "Episodes", "Score", "Genres"},
	Row: func(m *anilist.Media) []string {
		return []string{
			strconv.Itoa(m.ID),
			util.Ellipsize(m.Name(), titleWidth),
			m.Format,
			m.Status,
			number(m.Episodes),
			number(m.AverageScore),
			strings.Join(m.Genres, ", "),
		}
	},
}

// NewsColumns lay out the news feed.
var NewsColumns = Columns[*anilist.Media]{
	Header: []string{"ID", "Title", "Type", "Status", "Source", "Popularity"},
	Row: func(m *anilist.Media) []string {
		return []string{
			strconv.Itoa(m.ID),
			util.Ellipsize(m.Name(), titleWidth),
			m.Type,
			anilist.Label(anilist.StatusOptions, m.Status),
			anilist.NewsSource(m.Source),
			number(m.Popularity),
		}
	},
}

// CharacterColumns lay out character searches.
var CharacterColumns = Columns[*anilist.Character]{
	Header: []string{"ID", "Name", "Native", "Favourites"},
	Row: func(c *anilist.Character) []string {
		return []string{
			strconv.Itoa(c.ID),
			util.Ellipsize(c.Name.Full, titleWidth),
			c.Name.Native,
			number(c.Favourites),
		}
	},
}

// HistoryColumns lay out recently opened records.
var HistoryColumns = Columns[*history.Entry]{
	Header: []string{"Kind", "ID", "Title", "Opened", "Last opened"},
	Row: func(e *history.Entry) []string {
		return []string{
			string(e.Kind),
			strconv.Itoa(e.ID),
			util.Ellipsize(e.Title, titleWidth),
			strconv.Itoa(e.Opened),
			e.OpenedAt.Format(time.DateTime),
		}
	},
}

func writeTable[T any](out io.Writer, columns Columns[T], items []T) error {
	table := tablewriter.NewTable(out)
	table.Configure(func(config *tablewriter.Config) {
		config.Header.Alignment.Global = tw.AlignLeft
		config.Row.Alignment.Global = tw.AlignLeft
		config.Header.Padding.Global = tw.Padding{Left: " ", Right: " "}
		config.Row.Padding.Global = tw.Padding{Left: " ", Right: " "}
	})

	table.Header(columns.Header)
	if err := table.Bulk(lo.Map(items, func(item T, _ int) []string { return columns.Row(item) })); err != nil {
		return err
	}

	return table.Render()
}
