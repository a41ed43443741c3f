package gate

import (
	"context"
	"sync"

	"github.com/delaneyj/asyncparty/abort"
	"github.com/delaneyj/asyncparty/emitter"
)

// Gate is an admission latch. Enter returns straight away while the gate is
// unlocked and otherwise blocks until someone writes locked back to false.
// Waiters queue on an internal emitter and are all woken by the unlocking
// write; each re-checks the latch before admitting itself, so a gate that is
// locked again by the time a waiter gets scheduled keeps it queued.
//
// Unlike the emitter package, a Gate may be shared between goroutines.
type Gate struct {
	mu      sync.Mutex
	locked  bool
	changed *emitter.Emitter
}

func New(locked bool) *Gate {
	return &Gate{locked: locked, changed: emitter.New()}
}

// Locked reports the current latch state.
func (g *Gate) Locked() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.locked
}

// SetLocked writes the latch state, a plain synchronous write. A true to
// false transition notifies every waiter queued at that moment, exactly
// once; writing the value already held does nothing.
func (g *Gate) SetLocked(locked bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.locked == locked {
		return
	}
	g.locked = locked
	if !locked {
		g.changed.Emit()
	}
}

// Waiters returns how many Enter calls are queued right now.
func (g *Gate) Waiters() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.changed.Size()
}

// Enter admits the caller once the gate is unlocked: immediately when
// unlocked at call time, otherwise after an unlock that still holds at the
// waiter's re-check. A ctx done first aborts the wait with an *abort.Error.
func (g *Gate) Enter(ctx context.Context) error {
	for {
		g.mu.Lock()
		if !g.locked {
			g.mu.Unlock()
			return nil
		}
		woken := make(chan struct{})
		tok := g.changed.Subscribe(func(...any) any {
			close(woken)
			return emitter.Unsubscribe
		})
		g.mu.Unlock()

		select {
		case <-woken:
			// go around: only a latch still open at the re-check admits
		case <-ctx.Done():
			g.mu.Lock()
			g.changed.Unsubscribe(tok)
			g.mu.Unlock()
			return abort.FromContext(ctx)
		}
	}
}
