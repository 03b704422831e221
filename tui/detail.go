// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"
	"strings"

	"github.com/anisan-cli/anidex/anilist"
	"github.com/anisan-cli/anidex/color"
	"github.com/anisan-cli/anidex/icon"
	"github.com/anisan-cli/anidex/style"
	"github.com/anisan-cli/anidex/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

var (
	fieldStyle = lipgloss.NewStyle().Foreground(style.FaintColor).Width(12)
	genreTag   = style.Tag(style.Base, style.Lavender)
)

func someRecord(record any) mo.Option[any] {
	return mo.Some(record)
}

// renderDetail lays out a media or character for the detail viewport.
func (b *statefulBubble) renderDetail(record any) string {
	width := max(b.width, 20)

	switch r := record.(type) {
	case *anilist.Media:
		return renderMedia(r, width)
	case *anilist.Character:
		return renderCharacter(r, width)
	default:
		return ""
	}
}

func field(name, value string) string {
	if value == "" {
		return ""
	}
	return fieldStyle.Render(name) + value
}

func joinFields(fields ...string) string {
	return strings.Join(lo.Compact(fields), "\n")
}

func renderMedia(m *anilist.Media, width int) string {
	title := style.Title(m.Name())
	if m.Title.Native != "" {
		title += " " + style.Faint(m.Title.Native)
	}

	var (
		score    string
		episodes string
		airing   string
		trailer  string
	)
	if m.AverageScore > 0 {
		score = style.Fg(color.Orange)(fmt.Sprintf("★ %d%%", m.AverageScore))
	}
	if m.Episodes > 0 {
		episodes = util.Quantify(m.Episodes, "episode", "episodes")
	} else if m.Chapters > 0 {
		episodes = util.Quantify(m.Chapters, "chapter", "chapters")
	}
	if m.NextAiringEpisode != nil {
		airing = fmt.Sprintf("episode %d airs in %s", m.NextAiringEpisode.Episode, util.Quantify(m.NextAiringEpisode.TimeUntilAiring/3600, "hour", "hours"))
	}
	if m.Trailer != nil {
		trailer = m.Trailer.URL()
	}

	genres := strings.Join(lo.Map(m.Genres, func(g string, _ int) string { return genreTag(g) }), " ")

	sections := []string{
		title,
		joinFields(
			field("Format", m.Format),
			field("Status", anilist.Label(anilist.StatusOptions, m.Status)),
			field("Source", anilist.NewsSource(m.Source)),
			field("Score", score),
			field("Length", episodes),
			field("Aired", dateRange(m.StartDate, m.EndDate)),
			field("Next", airing),
			field("Studios", strings.Join(m.StudioNames(), ", ")),
			field("Trailer", trailer),
			field("Link", style.Fg(color.Blue)(m.URL())),
		),
		genres,
		wrap.String(util.StripHTML(m.Description), width),
	}

	if characters := m.Characters.Nodes; len(characters) > 0 {
		names := lo.Map(characters, func(c *anilist.Character, _ int) string { return c.Name.Full })
		sections = append(sections, style.Bold(icon.Get(icon.Character)+" Characters")+"\n"+wrap.String(strings.Join(names, ", "), width))
	}

	return strings.Join(lo.Compact(sections), "\n\n")
}

func renderCharacter(c *anilist.Character, width int) string {
	title := style.Title(c.Name.Full)
	if c.Name.Native != "" {
		title += " " + style.Faint(c.Name.Native)
	}

	var favourites string
	if c.Favourites > 0 {
		favourites = style.Fg(style.FavouriteColor)(fmt.Sprintf("♥ %d", c.Favourites))
	}

	sections := []string{
		title,
		joinFields(
			field("Age", c.Age),
			field("Gender", c.Gender),
			field("Blood type", c.BloodType),
			field("Favourites", favourites),
			field("Link", style.Fg(color.Blue)(c.URL())),
		),
		wrap.String(util.StripHTML(c.Description), width),
	}

	if media := c.Media.Nodes; len(media) > 0 {
		names := lo.Map(media, func(m *anilist.Media, _ int) string { return m.Name() })
		sections = append(sections, style.Bold(icon.Get(icon.Anime)+" Appears in")+"\n"+wrap.String(strings.Join(names, ", "), width))
	}

	return strings.Join(lo.Compact(sections), "\n\n")
}

func dateRange(start, end anilist.Date) string {
	from, to := start.String(), end.String()
	switch {
	case start.Year == 0:
		return ""
	case end.Year == 0 || to == from:
		return from
	default:
		return from + " - " + to
	}
}
