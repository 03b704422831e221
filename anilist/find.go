// Package anilist provides a client for the Anilist GraphQL API.
package anilist

import (
	"context"
	"fmt"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
)

const findClosestAttempts = 3

// FindClosest resolves a free-form title to the best matching media.
// When a search yields nothing, the trailing word is dropped and the search retried.
func (c *Client) FindClosest(ctx context.Context, name string) (*Media, error) {
	name = normalizedSearch(name)
	if name == "" {
		return nil, fmt.Errorf("empty title: %w", ErrNotFound)
	}

	if id, ok := relationCacher.Get(name).Get(); ok {
		if id == -1 {
			return nil, fmt.Errorf("no results found on Anilist for %q: %w", name, ErrNotFound)
		}
		if media, err := c.MediaByID(ctx, id); err == nil {
			return media, nil
		}
		_ = relationCacher.Delete(name)
	}

	return c.findClosest(ctx, name, name, 0)
}

func (c *Client) findClosest(ctx context.Context, name, original string, try int) (*Media, error) {
	if try >= findClosestAttempts {
		_ = relationCacher.Set(original, -1)
		return nil, fmt.Errorf("no results found on Anilist for %q: %w", original, ErrNotFound)
	}

	page, err := c.MediaSearcher().FetchPage(ctx, MediaSearch{Search: name}, 1, 10)
	if err != nil {
		return nil, err
	}

	candidates := lo.Filter(page.Items, func(m *Media, _ int) bool { return m.Name() != "" })
	if len(candidates) == 0 {
		words := strings.Fields(name)
		if len(words) <= 1 {
			return c.findClosest(ctx, name, original, findClosestAttempts)
		}

		shorter := strings.Join(words[:len(words)-1], " ")
		c.logger.WithField("title", name).Infof("no results, trying %q", shorter)
		return c.findClosest(ctx, shorter, original, try+1)
	}

	closest := lo.MinBy(candidates, func(a, b *Media) bool {
		return titleDistance(name, a) < titleDistance(name, b)
	})

	_ = relationCacher.Set(original, closest.ID)
	if name != original {
		_ = relationCacher.Set(name, closest.ID)
	}

	return closest, nil
}

// titleDistance is the smallest edit distance between name and any title of m.
func titleDistance(name string, m *Media) int {
	titles := lo.Compact([]string{m.Title.English, m.Title.Romaji, m.Title.Native})
	return lo.Min(lo.Map(titles, func(t string, _ int) int {
		return levenshtein.Distance(name, normalizedSearch(t))
	}))
}
