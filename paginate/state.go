package paginate

import (
	"errors"
	"fmt"
)

// Phase is the lifecycle position of a Controller.
type Phase int

const (
	Idle Phase = iota
	FetchingInitial
	Ready
	Failed
	FetchingMore
	Disposed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case FetchingInitial:
		return "fetching initial"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	case FetchingMore:
		return "fetching more"
	case Disposed:
		return "disposed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// State is a read-only snapshot of the accumulated result.
// Items is a copy; mutating it does not affect the controller.
type State[T any] struct {
	Items    []T
	PageInfo PageInfo
	Loading  bool
	Err      error
	Phase    Phase
	Epoch    uint64
}

// HasNextPage reports whether LoadMore may fetch another page.
func (s State[T]) HasNextPage() bool {
	return s.PageInfo.HasNextPage
}

// Precondition violations. These are returned synchronously and never stored in State.
var (
	ErrNotInitialized     = errors.New("paginate: controller is not initialized")
	ErrAlreadyInitialized = errors.New("paginate: controller is already initialized")
	ErrInvalidPageSize    = errors.New("paginate: page size must be positive")
	ErrDisposed           = errors.New("paginate: controller is disposed")
)

// FetchError records a failed page fetch in State.Err.
// Initial is true when page 1 for the current parameters failed.
type FetchError struct {
	Page    int
	Initial bool
	Err     error
}

func (e *FetchError) Error() string {
	if e.Initial {
		return fmt.Sprintf("initial fetch failed: %v", e.Err)
	}
	return fmt.Sprintf("fetching page %d failed: %v", e.Page, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsInitial reports whether err is a failed page 1 fetch.
func IsInitial(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.Initial
}
