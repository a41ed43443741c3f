// Package flight collapses concurrent calls to an async factory into one
// invocation. Initializer additionally memoizes a success forever (until
// Reset), Stampede forgets every outcome the moment it settles, and Lazy is
// the holder-shaped wrapper over Initializer for would-be singletons.
package flight

import (
	"context"
	"sync"

	"github.com/delaneyj/asyncparty/emitter"
)

// Factory produces the value a flight settles with. It takes no arguments;
// cancellation only ever abandons waiters, never a factory that is already
// running.
type Factory[T any] func() (T, error)

// op is the single-flight engine shared by Initializer and Stampede.
// memoize keeps the settled future around after a success so later calls
// reuse it; without it every settlement discards the future.
//
// gen is the deferred-reset generation: Reset during a flight bumps it, and
// the runner, finding its captured generation stale at settle time, throws
// the result away and invokes the factory again, so the future everyone is
// holding settles with the fresh outcome.
type op[T any] struct {
	mu       sync.Mutex
	factory  Factory[T]
	memoize  bool
	running  bool
	resolved bool
	gen      uint64
	fut      *Future[T]

	statusMu    sync.Mutex
	statusIdle  *sync.Cond
	dispatching bool
	pending     [][2]bool
	changed     *emitter.Emitter
}

func newOp[T any](factory Factory[T], memoize bool) *op[T] {
	if factory == nil {
		panic("flight: nil factory")
	}
	o := &op[T]{factory: factory, memoize: memoize, changed: emitter.New()}
	o.statusIdle = sync.NewCond(&o.statusMu)
	return o
}

// begin starts the factory on its own goroutine, or joins the flight already
// running. While running every caller gets the same Future, the factory
// itself included should it call back in.
func (o *op[T]) begin() *Future[T] {
	o.mu.Lock()
	if o.running || (o.memoize && o.resolved) {
		f := o.fut
		o.mu.Unlock()
		return f
	}
	f := newFuture[T]()
	o.fut = f
	o.running = true
	o.resolved = false
	gen := o.gen
	o.mu.Unlock()

	o.notify(true, false)
	go o.run(f, gen)
	return f
}

func (o *op[T]) run(f *Future[T], gen uint64) {
	for {
		val, err := o.factory()
		o.mu.Lock()
		if o.gen != gen {
			// a reset arrived mid-flight: drop this result and run the
			// factory again; the original future settles with the rerun
			gen = o.gen
			o.mu.Unlock()
			continue
		}
		o.running = false
		o.resolved = err == nil
		if err != nil || !o.memoize {
			o.fut = nil
		}
		resolved := o.resolved
		o.mu.Unlock()

		f.settle(val, err)
		o.notify(false, resolved)
		return
	}
}

func (o *op[T]) call(ctx context.Context) (T, error) {
	return o.begin().Wait(ctx)
}

func (o *op[T]) isRunning() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.running
}

func (o *op[T]) isResolved() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.resolved
}

// reset returns the op to idle. Called while running it defers instead: the
// in-flight invocation finishes, the factory runs once more, and the
// already-issued future settles with that second outcome, which also decides
// the post-call resolved state.
func (o *op[T]) reset() {
	o.mu.Lock()
	if o.running {
		o.gen++
		o.mu.Unlock()
		return
	}
	was := o.resolved
	o.resolved = false
	o.fut = nil
	o.mu.Unlock()
	if was {
		o.notify(false, false)
	}
}

// sub registers fn for status transitions; it receives the post-transition
// (running, resolved) pair. The returned closure unsubscribes. Under
// concurrent callers the pairs identify transitions, not necessarily the
// latest state; read isRunning/isResolved for that. fn may call begin or
// reset; the transitions those cause are delivered after the one fn is
// handling. fn must not subscribe or unsubscribe this op's status emitter
// from inside the callback, though calling the closure from another
// goroutine is fine.
func (o *op[T]) sub(fn func(running, resolved bool)) func() bool {
	if fn == nil {
		panic("flight: nil status handler")
	}
	o.statusMu.Lock()
	for o.dispatching {
		o.statusIdle.Wait()
	}
	tok := o.changed.Subscribe(func(args ...any) any {
		fn(args[0].(bool), args[1].(bool))
		return nil
	})
	o.statusMu.Unlock()
	return func() bool {
		o.statusMu.Lock()
		for o.dispatching {
			o.statusIdle.Wait()
		}
		defer o.statusMu.Unlock()
		return o.changed.Unsubscribe(tok)
	}
}

// notify queues a (running, resolved) transition and drains the queue,
// unless another notify is already doing so. Handlers run with statusMu
// released, so a handler may call back into begin or reset; the transitions
// those cause land behind the one being handled, in order, whether they
// arrive re-entrantly or from another goroutine.
func (o *op[T]) notify(running, resolved bool) {
	o.statusMu.Lock()
	o.pending = append(o.pending, [2]bool{running, resolved})
	if o.dispatching {
		o.statusMu.Unlock()
		return
	}
	o.dispatching = true
	for len(o.pending) > 0 {
		next := o.pending[0]
		o.pending = o.pending[1:]
		o.statusMu.Unlock()
		o.changed.Emit(next[0], next[1])
		o.statusMu.Lock()
	}
	o.pending = nil
	o.dispatching = false
	o.statusMu.Unlock()
	o.statusIdle.Broadcast()
}
