package emitter

import (
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Unsubscribe is the sentinel a handler returns to drop itself. It plays the
// role a JS Symbol would: an opaque value nothing returns by accident.
var Unsubscribe = int64(xxhash.Sum64String("UNSUBSCRIBE") & 0x7fffffffffffffff)

// SubscribeFunc is the callable-subscribe shape: calling it subscribes, and
// the closure it hands back unsubscribes, reporting whether anything was
// removed.
type SubscribeFunc func(handler Handler) (unsubscribe func() bool)

// EmitFunc broadcasts to the subscribers of the emitter it was split from.
type EmitFunc func(args ...any)

// Emitter wraps a Registry with a monotonic emit counter and the
// Unsubscribe-on-return convention.
//
// Like the Registry it is confined to a single goroutine, but handlers may
// freely call back into it: a nested Emit runs to completion as plain
// recursion before the outer pass resumes, and subscribing or unsubscribing
// mid-emit follows the Registry restart rule.
type Emitter struct {
	reg    Registry
	emitID uint64
}

func New() *Emitter {
	return &Emitter{reg: Registry{head: noIndex, tail: noIndex}}
}

// Subscribe links handler at the tail and returns its unsubscribe token.
func (e *Emitter) Subscribe(handler Handler) Token {
	return e.reg.Insert(handler)
}

// Unsubscribe removes the node for tok. Stale or unknown tokens return
// false and touch nothing.
func (e *Emitter) Unsubscribe(tok Token) bool {
	return e.reg.Remove(tok)
}

// Emit bumps the emit id, then invokes every live handler with args. A
// handler returning Unsubscribe is removed right after it returns and never
// runs again. Removing a not-yet-visited subscriber mid-emit restarts the
// pass from head, which re-invokes the live handlers that already ran; see
// Registry.ForEach. Handler panics are not recovered and abort the pass.
func (e *Emitter) Emit(args ...any) {
	e.emitID++
	e.reg.walk(func(tok Token, handler Handler) bool {
		res, ok := handler(args...).(int64)
		return ok && res == Unsubscribe
	})
}

// EmitID returns the id assigned to the most recent Emit call. Read from
// inside a handler it identifies the call currently executing.
func (e *Emitter) EmitID() uint64 {
	return e.emitID
}

// Size returns the live subscriber count.
func (e *Emitter) Size() int {
	return e.reg.Size()
}

// FindHandler returns the handler subscribed under tok, or nil once the
// token is gone.
func (e *Emitter) FindHandler(tok Token) Handler {
	if !e.reg.Contains(tok) {
		return nil
	}
	return e.reg.slots[tok.idx].handler
}

// FindToken returns the token of the first subscriber whose handler shares
// fn's code pointer. Distinct closures over one function literal are
// indistinguishable here, so prefer holding tokens when that matters.
func (e *Emitter) FindToken(fn Handler) (Token, bool) {
	if fn == nil {
		return Token{}, false
	}
	want := reflect.ValueOf(fn).Pointer()
	for i := e.reg.head; i != noIndex; i = e.reg.slots[i].next {
		s := &e.reg.slots[i]
		if reflect.ValueOf(s.handler).Pointer() == want {
			return Token{idx: i, seq: s.seq}, true
		}
	}
	return Token{}, false
}

// ForEach walks the live subscribers without emitting; the restart rule from
// Registry.ForEach applies.
func (e *Emitter) ForEach(visit func(tok Token, handler Handler)) {
	e.reg.ForEach(visit)
}

// Split decomposes the emitter into a subscribe function and an emit
// function sharing the same registry, for callers that want the two halves
// handed out separately.
func (e *Emitter) Split() (SubscribeFunc, EmitFunc) {
	sub := func(handler Handler) func() bool {
		tok := e.Subscribe(handler)
		return func() bool {
			return e.Unsubscribe(tok)
		}
	}
	return sub, e.Emit
}
