// Package query manages the persistence and retrieval of search query history and suggestions.
package query

import (
	"strings"
	"sync"

	"github.com/anisan-cli/anidex/filesystem"
	"github.com/anisan-cli/anidex/key"
	"github.com/anisan-cli/anidex/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

type queryRecord struct {
	Rank  int    `json:"rank"`
	Query string `json:"query"`
}

var (
	mu              sync.Mutex
	cacherOnce      sync.Once
	cacher          *gache.Cache[map[string]*queryRecord]
	suggestionCache = make(map[string][]*queryRecord)
)

func store() *gache.Cache[map[string]*queryRecord] {
	cacherOnce.Do(func() {
		cacher = gache.New[map[string]*queryRecord](&gache.Options{
			Path:       where.Queries(),
			FileSystem: &filesystem.GacheFs{},
		})
	})
	return cacher
}

func load() map[string]*queryRecord {
	cached, expired, err := store().Get()
	if expired || err != nil || cached == nil {
		return make(map[string]*queryRecord)
	}
	return cached
}

// Remember records a search query or raises its rank by weight.
// Blank queries are ignored.
func Remember(q string, weight int) error {
	q = sanitize(q)
	if q == "" {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	cached := load()
	if record, ok := cached[q]; ok {
		record.Rank += weight
	} else {
		cached[q] = &queryRecord{Rank: weight, Query: q}
	}

	clear(suggestionCache)
	return store().Set(cached)
}

// Forget removes a query from the history.
func Forget(q string) error {
	mu.Lock()
	defer mu.Unlock()

	cached := load()
	delete(cached, sanitize(q))
	clear(suggestionCache)
	return store().Set(cached)
}

// Suggest returns the most relevant past query for a partial input.
func Suggest(q string) mo.Option[string] {
	suggestions := SuggestMany(q)
	if len(suggestions) == 0 {
		return mo.None[string]()
	}
	return mo.Some(suggestions[0])
}

// SuggestMany returns past queries fuzzy-matching the partial input, most used first.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return []string{}
	}

	q = sanitize(q)

	mu.Lock()
	defer mu.Unlock()

	records, ok := suggestionCache[q]
	if !ok {
		for _, record := range load() {
			if record.Query != q && fuzzy.Match(q, record.Query) {
				records = append(records, record)
			}
		}

		sortByRank(records)
		suggestionCache[q] = records
	}

	return lo.Map(records, func(r *queryRecord, _ int) string {
		return r.Query
	})
}

// Top returns up to n past queries, most used first.
func Top(n int) []string {
	mu.Lock()
	defer mu.Unlock()

	records := lo.Values(load())
	sortByRank(records)

	return lo.Map(lo.Slice(records, 0, n), func(r *queryRecord, _ int) string {
		return r.Query
	})
}

func sortByRank(records []*queryRecord) {
	slices.SortFunc(records, func(a, b *queryRecord) int {
		if a.Rank != b.Rank {
			return b.Rank - a.Rank
		}
		return strings.Compare(a.Query, b.Query)
	})
}

func sanitize(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}
