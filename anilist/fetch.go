// Package anilist provides a client for the Anilist GraphQL API.
package anilist

import (
	"context"
	"fmt"
	"strings"

	"github.com/anisan-cli/anidex/paginate"
)

// MediaListing parameterizes the unfiltered popular anime list. It has no fields, so it never changes.
type MediaListing struct{}

// MediaSearch parameterizes a title search.
type MediaSearch struct {
	Search string `json:"search"`
	Type   string `json:"type,omitempty"`
}

// CharacterSearch parameterizes a character name search.
type CharacterSearch struct {
	Search string `json:"search"`
	Sort   string `json:"sort,omitempty"`
}

// NewsFilter parameterizes the news feed. Empty fields are not sent.
type NewsFilter struct {
	Genre  string `json:"genre,omitempty"`
	Type   string `json:"type,omitempty"`
	Status string `json:"status,omitempty"`
	Sort   string `json:"sort,omitempty"`
}

// ReviewQuery parameterizes the reviews of one media.
type ReviewQuery struct {
	MediaID int    `json:"mediaId"`
	Sort    string `json:"sort,omitempty"`
}

type variables map[string]any

func pageVariables(page, perPage int) variables {
	return variables{"page": page, "perPage": perPage}
}

// set adds value unless it is empty, so Anilist treats the filter as absent.
func (v variables) set(name, value string) variables {
	if value != "" {
		v[name] = value
	}
	return v
}

func (v variables) setList(name, value string) variables {
	if value != "" {
		v[name] = []string{value}
	}
	return v
}

func (c *Client) pageVariables(page, perPage int) variables {
	vars := pageVariables(page, perPage)
	if c.hideAdult {
		vars["isAdult"] = false
	}
	return vars
}

type pageData struct {
	Page struct {
		PageInfo   paginate.PageInfo `json:"pageInfo"`
		Media      []*Media          `json:"media"`
		Characters []*Character      `json:"characters"`
		Reviews    []*Review         `json:"reviews"`
	} `json:"Page"`
}

func (c *Client) page(ctx context.Context, query string, vars variables) (*pageData, error) {
	var data pageData
	if err := c.Do(ctx, query, vars, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// normalizedSearch trims and lowercases a search term the way it is sent to Anilist.
func normalizedSearch(search string) string {
	return strings.ToLower(strings.TrimSpace(search))
}

// AnimeListing pages through popular anime.
type AnimeListing struct{ client *Client }

// AnimeListing returns the fetcher for the popular anime list.
func (c *Client) AnimeListing() AnimeListing {
	return AnimeListing{client: c}
}

// FetchPage implements paginate.Fetcher.
func (f AnimeListing) FetchPage(ctx context.Context, _ MediaListing, page, perPage int) (paginate.Page[*Media], error) {
	data, err := f.client.page(ctx, listingQuery, f.client.pageVariables(page, perPage))
	if err != nil {
		return paginate.Page[*Media]{}, fmt.Errorf("anime listing page %d: %w", page, err)
	}
	return paginate.Page[*Media]{Items: data.Page.Media, PageInfo: data.Page.PageInfo}, nil
}

// MediaSearcher pages through title search results.
type MediaSearcher struct{ client *Client }

// MediaSearcher returns the fetcher for title searches.
func (c *Client) MediaSearcher() MediaSearcher {
	return MediaSearcher{client: c}
}

// FetchPage implements paginate.Fetcher.
func (f MediaSearcher) FetchPage(ctx context.Context, params MediaSearch, page, perPage int) (paginate.Page[*Media], error) {
	vars := f.client.pageVariables(page, perPage).
		set("search", normalizedSearch(params.Search)).
		set("type", params.Type)

	data, err := f.client.page(ctx, mediaSearchQuery, vars)
	if err != nil {
		return paginate.Page[*Media]{}, fmt.Errorf("search %q page %d: %w", params.Search, page, err)
	}
	return paginate.Page[*Media]{Items: data.Page.Media, PageInfo: data.Page.PageInfo}, nil
}

// CharacterSearcher pages through character search results.
type CharacterSearcher struct{ client *Client }

// CharacterSearcher returns the fetcher for character searches.
func (c *Client) CharacterSearcher() CharacterSearcher {
	return CharacterSearcher{client: c}
}

// FetchPage implements paginate.Fetcher.
func (f CharacterSearcher) FetchPage(ctx context.Context, params CharacterSearch, page, perPage int) (paginate.Page[*Character], error) {
	vars := pageVariables(page, perPage).
		set("search", normalizedSearch(params.Search)).
		setList("sort", params.Sort)

	data, err := f.client.page(ctx, characterSearchQuery, vars)
	if err != nil {
		return paginate.Page[*Character]{}, fmt.Errorf("character search %q page %d: %w", params.Search, page, err)
	}
	return paginate.Page[*Character]{Items: data.Page.Characters, PageInfo: data.Page.PageInfo}, nil
}

// NewsFeed pages through the filtered news feed.
type NewsFeed struct{ client *Client }

// NewsFeed returns the fetcher for the news feed.
func (c *Client) NewsFeed() NewsFeed {
	return NewsFeed{client: c}
}

// FetchPage implements paginate.Fetcher.
func (f NewsFeed) FetchPage(ctx context.Context, params NewsFilter, page, perPage int) (paginate.Page[*Media], error) {
	vars := f.client.pageVariables(page, perPage).
		set("genre", params.Genre).
		set("type", params.Type).
		set("status", params.Status).
		setList("sort", params.Sort)

	data, err := f.client.page(ctx, newsQuery, vars)
	if err != nil {
		return paginate.Page[*Media]{}, fmt.Errorf("news page %d: %w", page, err)
	}
	return paginate.Page[*Media]{Items: data.Page.Media, PageInfo: data.Page.PageInfo}, nil
}

// ReviewFeed pages through the reviews of a media.
type ReviewFeed struct{ client *Client }

// ReviewFeed returns the fetcher for media reviews.
func (c *Client) ReviewFeed() ReviewFeed {
	return ReviewFeed{client: c}
}

// FetchPage implements paginate.Fetcher.
func (f ReviewFeed) FetchPage(ctx context.Context, params ReviewQuery, page, perPage int) (paginate.Page[*Review], error) {
	vars := pageVariables(page, perPage).setList("sort", params.Sort)
	vars["mediaId"] = params.MediaID

	data, err := f.client.page(ctx, reviewsQuery, vars)
	if err != nil {
		return paginate.Page[*Review]{}, fmt.Errorf("reviews of %d page %d: %w", params.MediaID, page, err)
	}
	return paginate.Page[*Review]{Items: data.Page.Reviews, PageInfo: data.Page.PageInfo}, nil
}

// Keep returns a merge filter for media lists.
// Untitled media are always dropped; explicit media are dropped when hideAdult is set.
func Keep(hideAdult bool) func(*Media) bool {
	return func(m *Media) bool {
		if m == nil || m.Name() == "" {
			return false
		}
		return !hideAdult || !m.IsExplicit()
	}
}
