package paginate

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// DefaultThrottleInterval is the minimum spacing between committed search changes.
const DefaultThrottleInterval = 300 * time.Millisecond

// Throttle decides which keystrokes of a search box become query changes.
//
// The interval is measured from the last committed change, not the last
// keystroke. An empty search text always commits immediately.
type Throttle struct {
	interval time.Duration
	clock    clock.Clock

	mu        sync.Mutex
	last      time.Time
	committed bool
	pending   string
	held      bool
}

// NewThrottle returns a throttle using clk, or the wall clock when clk is nil.
func NewThrottle(interval time.Duration, clk clock.Clock) *Throttle {
	if clk == nil {
		clk = clock.New()
	}
	if interval < 0 {
		interval = 0
	}

	return &Throttle{interval: interval, clock: clk}
}

// Offer reports whether text should be committed as the new query.
// A rejected text is held until the next commit or Flush.
func (t *Throttle) Offer(text string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock.Now()
	if text == "" || !t.committed || now.Sub(t.last) >= t.interval {
		t.commit(now)
		return true
	}

	t.pending = text
	t.held = true
	return false
}

// Flush commits the most recently held text, if any.
func (t *Throttle) Flush() (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.held {
		return "", false
	}

	text := t.pending
	t.commit(t.clock.Now())
	return text, true
}

// Pending reports whether a rejected text is waiting for Flush.
func (t *Throttle) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.held
}

func (t *Throttle) commit(now time.Time) {
	t.last = now
	t.committed = true
	t.pending = ""
	t.held = false
}
