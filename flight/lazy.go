package flight

import "context"

// Lazy is an owner-scoped stand-in for a module-level singleton: the first
// Get builds the value, later Gets reuse it, Reset forces a rebuild on the
// Get after it. Concurrent first Gets share one build.
type Lazy[T any] struct {
	init *Initializer[T]
}

func NewLazy[T any](factory Factory[T]) *Lazy[T] {
	return &Lazy[T]{init: NewInitializer(factory)}
}

func (l *Lazy[T]) Get(ctx context.Context) (T, error) {
	return l.init.Call(ctx)
}

// Initialized reports whether a built value is currently held.
func (l *Lazy[T]) Initialized() bool {
	return l.init.Resolved()
}

func (l *Lazy[T]) Reset() {
	l.init.Reset()
}
