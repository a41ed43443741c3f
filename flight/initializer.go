package flight

import "context"

// Initializer deduplicates one-time setup. Overlapping calls share a single
// factory invocation, a success is cached for every call after it, and a
// failure is never cached, so the next call simply tries again.
type Initializer[T any] struct {
	op *op[T]
}

func NewInitializer[T any](factory Factory[T]) *Initializer[T] {
	return &Initializer[T]{op: newOp(factory, true)}
}

// Call returns the cached value, joins the flight in progress, or starts a
// fresh one, whichever the current state asks for. A ctx done first abandons
// only this caller's wait.
func (i *Initializer[T]) Call(ctx context.Context) (T, error) {
	return i.op.call(ctx)
}

// Begin starts or joins the flight without waiting on it. Callers that
// overlap, recursive calls from inside the factory included, all receive the
// identical Future.
func (i *Initializer[T]) Begin() *Future[T] {
	return i.op.begin()
}

func (i *Initializer[T]) Running() bool {
	return i.op.isRunning()
}

func (i *Initializer[T]) Resolved() bool {
	return i.op.isResolved()
}

// Reset discards the cached value and returns to idle. Called mid-flight it
// defers: the running invocation completes, the factory runs once more, and
// the originally issued Future settles with that second result.
func (i *Initializer[T]) Reset() {
	i.op.reset()
}

// Sub observes status transitions as (running, resolved) pairs; the returned
// closure unsubscribes.
func (i *Initializer[T]) Sub(fn func(running, resolved bool)) func() bool {
	return i.op.sub(fn)
}
