// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/anisan-cli/anidex/log"
	"github.com/anisan-cli/anidex/paginate"
	"github.com/sirupsen/logrus"
)

// Options control how many pages are collected and how they are written.
type Options struct {
	Out      io.Writer
	Pages    int
	PageSize int
	Json     bool
	Logger   logrus.FieldLogger
}

// Run collects up to options.Pages pages of fetcher results for params and
// writes them to options.Out.
//
// A failed first page is returned as an error with nothing written. A failed
// later page stops paging; the items collected so far are still written and
// the failure is returned afterwards.
func Run[P comparable, T paginate.Item](
	ctx context.Context,
	fetcher paginate.Fetcher[P, T],
	params P,
	columns Columns[T],
	options *Options,
	opts ...paginate.Option[T],
) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	output, collectErr := Collect(ctx, fetcher, params, options, opts...)
	if output == nil {
		return collectErr
	}

	var err error
	if options.Json {
		err = writeJson(options.Out, output)
	} else {
		err = writeTable(options.Out, columns, output.Items)
	}

	return errors.Join(collectErr, err)
}

// Write prints items already in hand, as JSON or a table.
func Write[T any](out io.Writer, columns Columns[T], items []T, asJson bool) error {
	if asJson {
		if items == nil {
			items = []T{}
		}
		return writeJson(out, items)
	}
	return writeTable(out, columns, items)
}

// Collect drives a controller through up to options.Pages pages.
// The returned output is nil only when the first page failed.
func Collect[P comparable, T paginate.Item](
	ctx context.Context,
	fetcher paginate.Fetcher[P, T],
	params P,
	options *Options,
	opts ...paginate.Option[T],
) (*Output[P, T], error) {
	logger := options.Logger
	if logger == nil {
		logger = log.Component("inline")
	}

	pages := max(options.Pages, 1)
	pageSize := options.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	opts = append(opts, paginate.WithContext[T](ctx), paginate.WithLogger[T](logger))
	controller := paginate.New(fetcher, opts...)
	defer controller.Dispose()

	if err := controller.Initialize(params, pageSize); err != nil {
		return nil, err
	}

	state, err := controller.Await(ctx)
	if err != nil {
		return nil, err
	}
	if state.Err != nil {
		return nil, state.Err
	}

	for state.PageInfo.CurrentPage < pages && state.HasNextPage() {
		if err := controller.LoadMore(); err != nil {
			return nil, err
		}

		if state, err = controller.Await(ctx); err != nil {
			return nil, err
		}

		if state.Err != nil {
			logger.WithError(state.Err).Warn("stopped paging")
			return newOutput(params, state), fmt.Errorf("partial result: %w", state.Err)
		}
	}

	return newOutput(params, state), nil
}
