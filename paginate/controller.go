package paginate

import (
	"context"
	"io"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// Option configures a Controller.
type Option[T Item] func(*options[T])

type options[T Item] struct {
	ctx    context.Context
	logger logrus.FieldLogger
	filter func(T) bool
}

// WithContext sets the parent context of every fetch. Cancelling it fails in-flight fetches.
func WithContext[T Item](ctx context.Context) Option[T] {
	return func(o *options[T]) { o.ctx = ctx }
}

// WithLogger sets the logger used for fetch and merge diagnostics.
func WithLogger[T Item](logger logrus.FieldLogger) Option[T] {
	return func(o *options[T]) { o.logger = logger }
}

// WithFilter drops fetched items for which keep returns false before they are merged.
func WithFilter[T Item](keep func(T) bool) Option[T] {
	return func(o *options[T]) { o.filter = keep }
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Controller accumulates pages of T fetched for parameters P.
//
// All methods are safe for concurrent use and never block on the network.
// Results are applied under the controller's lock, tagged with the parameter
// epoch they were issued under; a result from an older epoch is discarded.
type Controller[P comparable, T Item] struct {
	fetcher Fetcher[P, T]
	logger  logrus.FieldLogger
	filter  func(T) bool
	parent  context.Context

	mu       sync.Mutex
	params   P
	pageSize int
	epoch    uint64
	ctx      context.Context
	cancel   context.CancelFunc
	items    []T
	seen     map[string]struct{}
	pageInfo PageInfo
	loading  bool
	err      error
	phase    Phase
	updates  chan State[T]
	settled  chan struct{}
}

// New returns an idle controller. Nothing is fetched until Initialize.
func New[P comparable, T Item](fetcher Fetcher[P, T], opts ...Option[T]) *Controller[P, T] {
	o := options[T]{
		ctx:    context.Background(),
		logger: discardLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	settled := make(chan struct{})
	close(settled)

	return &Controller[P, T]{
		fetcher: fetcher,
		logger:  o.logger,
		filter:  o.filter,
		parent:  o.ctx,
		seen:    make(map[string]struct{}),
		phase:   Idle,
		updates: make(chan State[T], 1),
		settled: settled,
	}
}

// Initialize sets the first parameters and page size, then fetches page 1.
func (c *Controller[P, T]) Initialize(params P, pageSize int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case c.phase == Disposed:
		return ErrDisposed
	case c.phase != Idle:
		return ErrAlreadyInitialized
	case pageSize <= 0:
		return ErrInvalidPageSize
	}

	c.params = params
	c.pageSize = pageSize
	c.restart()
	return nil
}

// UpdateParameters replaces the current parameters.
// Equal parameters are ignored; different ones reset the accumulated list and refetch page 1.
func (c *Controller[P, T]) UpdateParameters(params P) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.phase {
	case Disposed:
		return ErrDisposed
	case Idle:
		return ErrNotInitialized
	}

	if params == c.params {
		return nil
	}

	c.params = params
	c.restart()
	return nil
}

// Reload discards the accumulated list and refetches page 1 for the current parameters.
func (c *Controller[P, T]) Reload() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.phase {
	case Disposed:
		return ErrDisposed
	case Idle:
		return ErrNotInitialized
	}

	c.restart()
	return nil
}

// LoadMore fetches the page after the current one.
// It is a no-op while any fetch is outstanding or when there is no next page.
func (c *Controller[P, T]) LoadMore() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.phase {
	case Disposed:
		return ErrDisposed
	case Idle:
		return ErrNotInitialized
	}

	if c.loading || !c.pageInfo.HasNextPage {
		return nil
	}

	page := c.pageInfo.CurrentPage + 1
	c.beginLoading()
	c.phase = FetchingMore
	c.publish()

	go c.fetch(c.ctx, c.epoch, c.params, page, c.pageSize)
	return nil
}

// Dispose stops the controller. In-flight results are dropped and Updates is closed.
// Calling Dispose more than once is harmless.
func (c *Controller[P, T]) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase == Disposed {
		return
	}

	c.epoch++
	if c.cancel != nil {
		c.cancel()
	}
	if c.loading {
		c.loading = false
		close(c.settled)
	}
	c.phase = Disposed
	close(c.updates)
	c.logger.WithField("epoch", c.epoch).Debug("controller disposed")
}

// State returns a snapshot of the accumulated result.
func (c *Controller[P, T]) State() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// Params returns the current parameters.
func (c *Controller[P, T]) Params() P {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.params
}

// Updates streams state changes. The channel holds only the latest snapshot,
// so a slow reader skips intermediate states but always sees the newest one.
// It is closed by Dispose.
func (c *Controller[P, T]) Updates() <-chan State[T] {
	return c.updates
}

// Await blocks until no fetch is outstanding and returns the settled state.
func (c *Controller[P, T]) Await(ctx context.Context) (State[T], error) {
	for {
		c.mu.Lock()
		if !c.loading {
			s := c.snapshot()
			c.mu.Unlock()
			if s.Phase == Disposed {
				return s, ErrDisposed
			}
			return s, nil
		}
		settled := c.settled
		c.mu.Unlock()

		select {
		case <-ctx.Done():
			return c.State(), ctx.Err()
		case <-settled:
		}
	}
}

// restart begins a new epoch and fetches page 1. Callers hold c.mu.
func (c *Controller[P, T]) restart() {
	c.epoch++
	if c.cancel != nil {
		c.cancel()
	}
	c.ctx, c.cancel = context.WithCancel(c.parent)

	c.items = nil
	c.seen = make(map[string]struct{})
	c.pageInfo = PageInfo{}
	c.err = nil
	c.beginLoading()
	c.phase = FetchingInitial
	c.publish()

	c.logger.WithField("epoch", c.epoch).Debug("fetching first page")
	go c.fetch(c.ctx, c.epoch, c.params, 1, c.pageSize)
}

func (c *Controller[P, T]) beginLoading() {
	if !c.loading {
		c.loading = true
		c.settled = make(chan struct{})
	}
}

func (c *Controller[P, T]) endLoading() {
	if c.loading {
		c.loading = false
		close(c.settled)
	}
}

func (c *Controller[P, T]) fetch(ctx context.Context, epoch uint64, params P, page, perPage int) {
	result, err := c.fetcher.FetchPage(ctx, params, page, perPage)

	c.mu.Lock()
	defer c.mu.Unlock()

	logger := c.logger.WithFields(logrus.Fields{"epoch": epoch, "page": page})
	if epoch != c.epoch {
		logger.Debug("discarding stale response")
		return
	}

	c.endLoading()

	if err != nil {
		initial := page == 1
		c.err = &FetchError{Page: page, Initial: initial, Err: err}
		if initial {
			c.phase = Failed
		} else {
			c.phase = Ready
		}
		logger.WithError(err).Warn("page fetch failed")
		c.publish()
		return
	}

	if result.PageInfo.CurrentPage != 0 && result.PageInfo.CurrentPage != page {
		logger.WithField("reported", result.PageInfo.CurrentPage).Warn("remote reported a different page")
	}

	added := c.merge(result.Items)
	c.pageInfo = PageInfo{CurrentPage: page, HasNextPage: result.PageInfo.HasNextPage}
	c.err = nil
	c.phase = Ready

	logger.WithFields(logrus.Fields{
		"received": len(result.Items),
		"added":    added,
		"items":    len(c.items),
		"has_next": c.pageInfo.HasNextPage,
	}).Debug("page merged")
	c.publish()
}

// merge appends items whose key has not been seen yet, preserving arrival order.
func (c *Controller[P, T]) merge(incoming []T) (added int) {
	for _, item := range incoming {
		if c.filter != nil && !c.filter(item) {
			continue
		}

		k := item.Key()
		if _, dup := c.seen[k]; dup {
			continue
		}

		c.seen[k] = struct{}{}
		c.items = append(c.items, item)
		added++
	}

	return
}

func (c *Controller[P, T]) snapshot() State[T] {
	return State[T]{
		Items:    slices.Clone(c.items),
		PageInfo: c.pageInfo,
		Loading:  c.loading,
		Err:      c.err,
		Phase:    c.phase,
		Epoch:    c.epoch,
	}
}

// publish replaces any unread snapshot with the current one. Callers hold c.mu.
func (c *Controller[P, T]) publish() {
	select {
	case <-c.updates:
	default:
	}

	select {
	case c.updates <- c.snapshot():
	default:
	}
}
