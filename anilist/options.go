// Package anilist provides a client for the Anilist GraphQL API.
package anilist

import "github.com/samber/lo"

// Option is a selectable filter value. An empty Value means the filter is not applied.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// GenreOptions filter the news feed by genre.
var GenreOptions = []Option{
	{"All", ""},
	{"Action", "Action"},
	{"Comedy", "Comedy"},
	{"Drama", "Drama"},
	{"Fantasy", "Fantasy"},
	{"Romance", "Romance"},
}

// SortOptions order the news feed.
var SortOptions = []Option{
	{"Default", ""},
	{"Title (A-Z)", "TITLE_ENGLISH"},
	{"Start Date (Oldest)", "START_DATE"},
	{"Start Date (Newest)", "START_DATE_DESC"},
	{"End Date (Oldest)", "END_DATE"},
	{"End Date (Newest)", "END_DATE_DESC"},
	{"Episodes (Most)", "EPISODES_DESC"},
	{"Episodes (Least)", "EPISODES"},
	{"Popularity", "POPULARITY_DESC"},
	{"Trending", "TRENDING_DESC"},
}

// StatusOptions filter the news feed by release status.
var StatusOptions = []Option{
	{"All", ""},
	{"Finished", "FINISHED"},
	{"Releasing", "RELEASING"},
	{"Not Yet Released", "NOT_YET_RELEASED"},
	{"Cancelled", "CANCELLED"},
	{"Hiatus", "HIATUS"},
}

// TypeOptions filter by media type.
var TypeOptions = []Option{
	{"All", ""},
	{"Anime", "ANIME"},
	{"Manga", "MANGA"},
}

// CharacterSortOptions order character searches.
var CharacterSortOptions = []Option{
	{"Most Favourites", "FAVOURITES_DESC"},
	{"Least Favourites", "FAVOURITES"},
}

// Cycle returns the option step positions away from value, wrapping around.
// An unknown value counts as the first option.
func Cycle(options []Option, value string, step int) Option {
	if len(options) == 0 {
		return Option{}
	}

	_, i, found := lo.FindIndexOf(options, func(o Option) bool { return o.Value == value })
	if !found {
		i = 0
	}

	n := len(options)
	return options[((i+step)%n+n)%n]
}

// Label returns the label of value, or value itself when it is not listed.
func Label(options []Option, value string) string {
	if o, ok := lo.Find(options, func(o Option) bool { return o.Value == value }); ok {
		return o.Label
	}
	return value
}

// Values lists the non-empty values of options, for flag completion.
func Values(options []Option) []string {
	return lo.FilterMap(options, func(o Option, _ int) (string, bool) {
		return o.Value, o.Value != ""
	})
}

// Valid reports whether value is one of options.
func Valid(options []Option, value string) bool {
	return lo.ContainsBy(options, func(o Option) bool { return o.Value == value })
}
