package emitter_test

import (
	"testing"

	"github.com/delaneyj/asyncparty/emitter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// should track subscribes and unsubscribes in its size
func TestEmitterSize(t *testing.T) {
	e := emitter.New()
	assert.Equal(t, 0, e.Size())

	toks := make([]emitter.Token, 5)
	for i := range toks {
		toks[i] = e.Subscribe(noop)
	}
	assert.Equal(t, 5, e.Size())

	assert.True(t, e.Unsubscribe(toks[1]))
	assert.True(t, e.Unsubscribe(toks[3]))
	assert.False(t, e.Unsubscribe(toks[3]))
	assert.Equal(t, 3, e.Size())
}

// should pass emit arguments through to every handler
func TestEmitArgs(t *testing.T) {
	e := emitter.New()
	var got []any
	e.Subscribe(func(args ...any) any {
		got = append(got, args...)
		return nil
	})

	e.Emit("x", 42)
	assert.Equal(t, []any{"x", 42}, got)

	e.Emit()
	assert.Len(t, got, 2)
}

// should repeat already run handlers when one removes a later one
func TestEmitRemoveAheadRestarts(t *testing.T) {
	e := emitter.New()
	h1Runs, h2Runs := 0, 0

	var second emitter.Token
	e.Subscribe(func(...any) any {
		h1Runs++
		e.Unsubscribe(second)
		return nil
	})
	second = e.Subscribe(func(...any) any {
		h2Runs++
		return nil
	})

	e.Emit()
	assert.Equal(t, 2, h1Runs)
	assert.Equal(t, 0, h2Runs)
	assert.Equal(t, 1, e.Size())

	e.Emit()
	assert.Equal(t, 3, h1Runs)
	assert.Equal(t, 0, h2Runs)
}

// should restart once per removal ahead of the cursor
func TestEmitRestartCounts(t *testing.T) {
	e := emitter.New()
	h1Runs, h2Runs, h3Runs := 0, 0, 0

	var third emitter.Token
	e.Subscribe(func(...any) any {
		h1Runs++
		return nil
	})
	e.Subscribe(func(...any) any {
		h2Runs++
		e.Unsubscribe(third)
		return nil
	})
	third = e.Subscribe(func(...any) any {
		h3Runs++
		return nil
	})

	e.Emit()
	assert.Equal(t, 2, h1Runs)
	assert.Equal(t, 2, h2Runs)
	assert.Equal(t, 0, h3Runs)
}

// should not restart when a handler removes one that already ran
func TestEmitRemoveBehindNoRestart(t *testing.T) {
	e := emitter.New()
	h1Runs, h2Runs, h3Runs := 0, 0, 0

	var first emitter.Token
	first = e.Subscribe(func(...any) any {
		h1Runs++
		return nil
	})
	e.Subscribe(func(...any) any {
		h2Runs++
		e.Unsubscribe(first)
		return nil
	})
	e.Subscribe(func(...any) any {
		h3Runs++
		return nil
	})

	e.Emit()
	assert.Equal(t, 1, h1Runs)
	assert.Equal(t, 1, h2Runs)
	assert.Equal(t, 1, h3Runs)
	assert.Equal(t, 2, e.Size())
}

// should not restart when a handler removes itself
func TestEmitSelfRemoveNoRestart(t *testing.T) {
	e := emitter.New()
	h1Runs, h2Runs := 0, 0

	var first emitter.Token
	first = e.Subscribe(func(...any) any {
		h1Runs++
		e.Unsubscribe(first)
		return nil
	})
	e.Subscribe(func(...any) any {
		h2Runs++
		return nil
	})

	e.Emit()
	assert.Equal(t, 1, h1Runs)
	assert.Equal(t, 1, h2Runs)
	assert.Equal(t, 1, e.Size())

	e.Emit()
	assert.Equal(t, 1, h1Runs)
	assert.Equal(t, 2, h2Runs)
}

// should not restart the outer pass when a removed node already ran before a nested emit
func TestNestedEmitRemoveBehindNoRestart(t *testing.T) {
	e := emitter.New()
	h1Runs, h2Runs, h3Runs := 0, 0, 0
	nested := false

	var first emitter.Token
	first = e.Subscribe(func(...any) any {
		h1Runs++
		if !nested {
			nested = true
			e.Emit()
		}
		return nil
	})
	e.Subscribe(func(...any) any {
		h2Runs++
		e.Unsubscribe(first)
		return nil
	})
	e.Subscribe(func(...any) any {
		h3Runs++
		return nil
	})

	e.Emit()
	assert.Equal(t, 2, h1Runs)
	assert.Equal(t, 2, h2Runs)
	assert.Equal(t, 2, h3Runs)
	assert.Equal(t, 2, e.Size())
}

// should drop a handler that returns the unsubscribe sentinel
func TestUnsubscribeSentinel(t *testing.T) {
	e := emitter.New()
	oneShot, steady := 0, 0

	e.Subscribe(func(...any) any {
		oneShot++
		return emitter.Unsubscribe
	})
	e.Subscribe(func(...any) any {
		steady++
		return nil
	})

	e.Emit()
	e.Emit()
	e.Emit()

	assert.Equal(t, 1, oneShot)
	assert.Equal(t, 3, steady)
	assert.Equal(t, 1, e.Size())
}

// should keep handlers whose return value merely looks unusual
func TestNonSentinelReturnsIgnored(t *testing.T) {
	e := emitter.New()
	runs := 0
	e.Subscribe(func(...any) any {
		runs++
		return "UNSUBSCRIBE"
	})
	e.Subscribe(func(...any) any {
		return 0
	})

	e.Emit()
	e.Emit()
	assert.Equal(t, 2, runs)
	assert.Equal(t, 2, e.Size())
}

// should bump the emit id before handlers run, nested emits included
func TestEmitIDNested(t *testing.T) {
	e := emitter.New()
	var seen []uint64
	nested := false

	e.Subscribe(func(...any) any {
		seen = append(seen, e.EmitID())
		if !nested {
			nested = true
			e.Emit()
		}
		return nil
	})

	e.Emit()
	assert.Equal(t, []uint64{1, 2}, seen)
	assert.Equal(t, uint64(2), e.EmitID())
}

// should not run a handler subscribed during the emit that added it
func TestSubscribeDuringEmit(t *testing.T) {
	e := emitter.New()
	lateRuns := 0
	added := false

	e.Subscribe(func(...any) any {
		if !added {
			added = true
			e.Subscribe(func(...any) any {
				lateRuns++
				return nil
			})
		}
		return nil
	})

	e.Emit()
	assert.Equal(t, 0, lateRuns)

	e.Emit()
	assert.Equal(t, 1, lateRuns)
}

// should let a handler panic tear through the emit untouched
func TestHandlerPanicPropagates(t *testing.T) {
	e := emitter.New()
	afterRuns := 0

	bad := e.Subscribe(func(...any) any {
		panic("boom")
	})
	e.Subscribe(func(...any) any {
		afterRuns++
		return nil
	})

	assert.PanicsWithValue(t, "boom", func() { e.Emit() })
	assert.Equal(t, 0, afterRuns)
	assert.Equal(t, 2, e.Size())

	// the emitter stays usable once the culprit is gone
	require.True(t, e.Unsubscribe(bad))
	e.Emit()
	assert.Equal(t, 1, afterRuns)
}

// should look handlers up by token until they are gone
func TestFindHandler(t *testing.T) {
	e := emitter.New()
	ran := 0
	tok := e.Subscribe(func(...any) any {
		ran++
		return nil
	})

	h := e.FindHandler(tok)
	require.NotNil(t, h)
	h()
	assert.Equal(t, 1, ran)

	e.Unsubscribe(tok)
	assert.Nil(t, e.FindHandler(tok))
}

// should recover a token from the subscribed function value
func TestFindToken(t *testing.T) {
	e := emitter.New()
	h := func(...any) any { return "h" }
	tok := e.Subscribe(h)
	e.Subscribe(noop)

	got, ok := e.FindToken(h)
	require.True(t, ok)
	assert.Equal(t, tok, got)

	_, ok = e.FindToken(func(...any) any { return "absent" })
	assert.False(t, ok)

	e.Unsubscribe(tok)
	_, ok = e.FindToken(h)
	assert.False(t, ok)
}

// should expose subscribe and emit as a detached pair
func TestSplit(t *testing.T) {
	e := emitter.New()
	sub, emit := e.Split()

	runs := 0
	unsub := sub(func(...any) any {
		runs++
		return nil
	})
	assert.Equal(t, 1, e.Size())

	emit("hello")
	assert.Equal(t, 1, runs)

	assert.True(t, unsub())
	assert.False(t, unsub())
	assert.Equal(t, 0, e.Size())

	emit()
	assert.Equal(t, 1, runs)
}
