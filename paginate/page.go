// Package paginate accumulates pages of remote query results into a single, deduplicated list.
//
// A Controller owns the lifecycle of one list surface: it fetches page 1 for the
// current parameters, appends later pages on LoadMore, and discards everything
// when the parameters change. Responses issued under superseded parameters are
// dropped on arrival.
package paginate

import "context"

// Item is anything the controller can deduplicate.
// Key must be stable for the lifetime of a query; numeric identifiers are expected to be stringified.
type Item interface {
	Key() string
}

// PageInfo describes where a page sits in the remote result set.
type PageInfo struct {
	CurrentPage int  `json:"currentPage" jsonschema:"description=Ordinal of the last page merged into the list."`
	HasNextPage bool `json:"hasNextPage" jsonschema:"description=Whether the remote source reported another page."`
}

// Page is one batch of items returned by a single fetch.
type Page[T any] struct {
	Items    []T      `json:"items"`
	PageInfo PageInfo `json:"pageInfo"`
}

// Fetcher retrieves one page of items for the given parameters.
type Fetcher[P comparable, T any] interface {
	FetchPage(ctx context.Context, params P, page, perPage int) (Page[T], error)
}

// FetcherFunc adapts a plain function to the Fetcher interface.
type FetcherFunc[P comparable, T any] func(ctx context.Context, params P, page, perPage int) (Page[T], error)

// FetchPage implements Fetcher.
func (f FetcherFunc[P, T]) FetchPage(ctx context.Context, params P, page, perPage int) (Page[T], error) {
	return f(ctx, params, page, perPage)
}
