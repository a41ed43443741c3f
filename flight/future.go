package flight

import (
	"context"

	"github.com/delaneyj/asyncparty/abort"
)

// Future is the shared handle for one in-flight factory invocation. Every
// caller that joined the flight holds the same Future; it settles exactly
// once.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

func (f *Future[T]) settle(val T, err error) {
	f.val = val
	f.err = err
	close(f.done)
}

// Done is closed once the future settles.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Settled reports whether the future already holds its outcome.
func (f *Future[T]) Settled() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the future settles or ctx is done, whichever comes
// first; an already settled future wins over an already done context.
// Giving up the wait abandons this caller only, never the flight.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	default:
	}
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, abort.FromContext(ctx)
	}
}
