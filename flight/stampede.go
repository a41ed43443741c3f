package flight

import "context"

// Stampede collapses overlapping calls into one factory invocation but keeps
// nothing: every settlement discards the shared future, so the next call
// starts clean even right after a success. Resolved reports whether the last
// settlement succeeded.
type Stampede[T any] struct {
	op *op[T]
}

func NewStampede[T any](factory Factory[T]) *Stampede[T] {
	return &Stampede[T]{op: newOp(factory, false)}
}

// Call joins the flight in progress or starts a fresh one.
func (s *Stampede[T]) Call(ctx context.Context) (T, error) {
	return s.op.call(ctx)
}

// Begin starts or joins the flight without waiting on it.
func (s *Stampede[T]) Begin() *Future[T] {
	return s.op.begin()
}

func (s *Stampede[T]) Running() bool {
	return s.op.isRunning()
}

func (s *Stampede[T]) Resolved() bool {
	return s.op.isResolved()
}

// Reset clears the last-settle flag; mid-flight it defers exactly like
// Initializer.Reset.
func (s *Stampede[T]) Reset() {
	s.op.reset()
}

// Sub observes status transitions as (running, resolved) pairs; the returned
// closure unsubscribes.
func (s *Stampede[T]) Sub(fn func(running, resolved bool)) func() bool {
	return s.op.sub(fn)
}
