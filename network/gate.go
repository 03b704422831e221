package network

import (
	"context"
	"sync"

	"go.uber.org/ratelimit"
)

type waiter struct {
	ctx   context.Context
	ready chan struct{}
}

// Gate hands limiter permits to callers in arrival order.
// A permit is only taken while someone is waiting for it, and a permit whose
// caller gave up is passed on to the next live caller instead of being lost.
type Gate struct {
	limiter ratelimit.Limiter
	waiters chan waiter
	once    sync.Once
}

// NewGate wraps limiter.
func NewGate(limiter ratelimit.Limiter) *Gate {
	return &Gate{
		limiter: limiter,
		waiters: make(chan waiter),
	}
}

var (
	sharedGateOnce sync.Once
	sharedGate     *Gate
)

// SharedGate returns the gate over the process-wide limiter.
func SharedGate() *Gate {
	sharedGateOnce.Do(func() {
		sharedGate = NewGate(Limiter())
	})
	return sharedGate
}

// Wait blocks until a permit is available or ctx is done.
func (g *Gate) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	g.once.Do(func() { go g.dispatch() })

	w := waiter{ctx: ctx, ready: make(chan struct{})}
	select {
	case g.waiters <- w:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-w.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (g *Gate) dispatch() {
	for w := range g.waiters {
		if w.ctx.Err() != nil {
			continue
		}

		g.limiter.Take()
		for w.ctx.Err() != nil {
			w = <-g.waiters
		}
		close(w.ready)
	}
}
