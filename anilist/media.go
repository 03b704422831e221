// Package anilist provides a client for the Anilist GraphQL API.
package anilist

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/anisan-cli/anidex/constant"
	"github.com/samber/lo"
)

// Date represents a calendar date in the Anilist GraphQL API. Unknown parts are zero.
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

func (d Date) String() string {
	switch {
	case d.Year == 0:
		return "?"
	case d.Month == 0:
		return strconv.Itoa(d.Year)
	case d.Day == 0:
		return fmt.Sprintf("%d-%02d", d.Year, d.Month)
	default:
		return fmt.Sprintf("%d-%02d-%02d", d.Year, d.Month, d.Day)
	}
}

// Title holds the localized titles of a media.
type Title struct {
	Romaji  string `json:"romaji" jsonschema:"description=Romanized title."`
	English string `json:"english" jsonschema:"description=English title."`
	Native  string `json:"native" jsonschema:"description=Native title. Usually in kanji."`
}

// Tag is a descriptive tag attached to a media.
type Tag struct {
	Name string `json:"name"`
	Rank int    `json:"rank" jsonschema:"description=How relevant the tag is to the media from 1 to 100."`
}

// Ranking is a placement of a media in one of Anilist's charts.
type Ranking struct {
	ID      int    `json:"id"`
	Rank    int    `json:"rank"`
	Type    string `json:"type"`
	Format  string `json:"format"`
	Context string `json:"context"`
	AllTime bool   `json:"allTime"`
	Season  string `json:"season,omitempty"`
}

// Trailer points to a promotional video.
type Trailer struct {
	ID        string `json:"id"`
	Site      string `json:"site"`
	Thumbnail string `json:"thumbnail"`
}

// URL returns a watchable link to the trailer, or an empty string for unknown sites.
func (t *Trailer) URL() string {
	if t == nil || t.ID == "" {
		return ""
	}

	switch strings.ToLower(t.Site) {
	case "youtube":
		return "https://www.youtube.com/watch?v=" + t.ID
	case "dailymotion":
		return "https://www.dailymotion.com/video/" + t.ID
	default:
		return ""
	}
}

// Airing describes the next episode to air.
type Airing struct {
	ID              int `json:"id"`
	Episode         int `json:"episode"`
	TimeUntilAiring int `json:"timeUntilAiring" jsonschema:"description=Seconds until the episode airs."`
}

// Image holds cover or portrait URLs of different sizes.
type Image struct {
	ExtraLarge string `json:"extraLarge,omitempty"`
	Large      string `json:"large,omitempty"`
	Medium     string `json:"medium,omitempty"`
}

// Best returns the largest available image URL.
func (i Image) Best() string {
	return lo.Ternary(i.ExtraLarge != "", i.ExtraLarge, lo.Ternary(i.Large != "", i.Large, i.Medium))
}

// Media is an anime or a manga.
type Media struct {
	ID                int        `json:"id" jsonschema:"description=ID of the media on Anilist."`
	IDMal             int        `json:"idMal,omitempty" jsonschema:"description=ID of the media on MyAnimeList."`
	Title             Title      `json:"title"`
	Type              string     `json:"type,omitempty" jsonschema:"enum=ANIME,enum=MANGA"`
	Format            string     `json:"format,omitempty"`
	Status            string     `json:"status,omitempty"`
	Source            string     `json:"source,omitempty" jsonschema:"description=Source material of the media."`
	Description       string     `json:"description,omitempty"`
	Genres            []string   `json:"genres"`
	Tags              []Tag      `json:"tags,omitempty"`
	Episodes          int        `json:"episodes,omitempty"`
	Chapters          int        `json:"chapters,omitempty"`
	Volumes           int        `json:"volumes,omitempty"`
	Duration          int        `json:"duration,omitempty" jsonschema:"description=Average episode length in minutes."`
	AverageScore      int        `json:"averageScore,omitempty"`
	MeanScore         int        `json:"meanScore,omitempty"`
	Popularity        int        `json:"popularity,omitempty"`
	Trending          int        `json:"trending,omitempty"`
	IsAdult           bool       `json:"isAdult"`
	Season            string     `json:"season,omitempty"`
	Hashtag           string     `json:"hashtag,omitempty"`
	BannerImage       string     `json:"bannerImage,omitempty"`
	CoverImage        Image      `json:"coverImage"`
	StartDate         Date       `json:"startDate"`
	EndDate           Date       `json:"endDate"`
	Rankings          []Ranking  `json:"rankings,omitempty"`
	Trailer           *Trailer   `json:"trailer,omitempty"`
	NextAiringEpisode *Airing    `json:"nextAiringEpisode,omitempty"`
	Studios           Studios    `json:"studios"`
	Characters        Characters `json:"characters"`
	SiteURL           string     `json:"siteUrl,omitempty"`
}

// Studios is the studio connection of a media.
type Studios struct {
	Nodes []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"nodes"`
}

// Characters is the character connection of a media.
type Characters struct {
	Nodes []*Character `json:"nodes"`
}

// Key identifies the media for deduplication.
func (m *Media) Key() string {
	return strconv.Itoa(m.ID)
}

// Name returns the english title, falling back to the romanized and native ones.
func (m *Media) Name() string {
	if m.Title.English != "" {
		return m.Title.English
	}
	if m.Title.Romaji != "" {
		return m.Title.Romaji
	}
	return m.Title.Native
}

// URL returns the Anilist page of the media.
func (m *Media) URL() string {
	if m.SiteURL != "" {
		return m.SiteURL
	}
	return fmt.Sprintf("%s/%s/%d", constant.AnilistSite, strings.ToLower(lo.Ternary(m.Type != "", m.Type, "anime")), m.ID)
}

// StudioNames lists the studios that produced the media.
func (m *Media) StudioNames() []string {
	names := make([]string, 0, len(m.Studios.Nodes))
	for _, s := range m.Studios.Nodes {
		names = append(names, s.Name)
	}
	return names
}

// IsExplicit reports whether the media is adult content.
// Anilist flags are not always set, so explicit genres and tags count too.
func (m *Media) IsExplicit() bool {
	if m.IsAdult {
		return true
	}

	if lo.ContainsBy(m.Genres, func(g string) bool { return strings.EqualFold(g, "hentai") }) {
		return true
	}

	return lo.ContainsBy(m.Tags, func(t Tag) bool { return strings.EqualFold(t.Name, "nudity") })
}

func (m *Media) String() string {
	return m.Name()
}

// Character is a person appearing in a media.
type Character struct {
	ID          int    `json:"id" jsonschema:"description=ID of the character on Anilist."`
	Name        Name   `json:"name"`
	Image       Image  `json:"image"`
	Description string `json:"description,omitempty"`
	Age         string `json:"age,omitempty"`
	Gender      string `json:"gender,omitempty"`
	BloodType   string `json:"bloodType,omitempty"`
	Favourites  int    `json:"favourites,omitempty"`
	IsFavourite bool   `json:"isFavourite,omitempty"`
	SiteURL     string `json:"siteUrl,omitempty"`
	Media       struct {
		Nodes []*Media `json:"nodes"`
	} `json:"media"`
}

// Name holds the names of a character.
type Name struct {
	Full   string `json:"full"`
	Native string `json:"native,omitempty"`
}

// Key identifies the character for deduplication.
func (c *Character) Key() string {
	return strconv.Itoa(c.ID)
}

// URL returns the Anilist page of the character.
func (c *Character) URL() string {
	if c.SiteURL != "" {
		return c.SiteURL
	}
	return fmt.Sprintf("%s/character/%d", constant.AnilistSite, c.ID)
}

func (c *Character) String() string {
	return c.Name.Full
}

// Review is a user review of a media.
type Review struct {
	ID        int    `json:"id"`
	MediaID   int    `json:"mediaId"`
	UserID    int    `json:"userId"`
	Summary   string `json:"summary,omitempty"`
	Body      string `json:"body"`
	Score     int    `json:"score,omitempty"`
	CreatedAt int64  `json:"createdAt"`
	User      struct {
		ID     int    `json:"id"`
		Name   string `json:"name"`
		Avatar Image  `json:"avatar"`
	} `json:"user"`
}

// Key identifies the review for deduplication.
func (r *Review) Key() string {
	return strconv.Itoa(r.ID)
}

// NewsSource labels the provenance of a news feed entry.
// Original works are verified news, anything else is adapted from manga.
func NewsSource(source string) string {
	if source == "ORIGINAL" {
		return "Verified"
	}
	return "Manga"
}
