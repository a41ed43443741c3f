package flight_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/delaneyj/asyncparty/abort"
	"github.com/delaneyj/asyncparty/flight"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// should collapse overlapping calls into one factory invocation
func TestInitializerDedup(t *testing.T) {
	release := make(chan struct{})
	calls := 0
	init := flight.NewInitializer(func() (int, error) {
		calls++
		<-release
		return 42, nil
	})

	f1 := init.Begin()
	f2 := init.Begin()
	assert.Same(t, f1, f2)
	assert.True(t, init.Running())

	const n = 6
	results := make(chan int, n)
	for i := 0; i < n; i++ {
		go func() {
			v, err := init.Call(context.Background())
			assert.NoError(t, err)
			results <- v
		}()
	}

	close(release)
	for i := 0; i < n; i++ {
		assert.Equal(t, 42, <-results)
	}
	assert.Equal(t, 1, calls)
	assert.False(t, init.Running())
	assert.True(t, init.Resolved())
}

// should hand the cached value to every call after the first success
func TestInitializerMemoizes(t *testing.T) {
	calls := 0
	init := flight.NewInitializer(func() (string, error) {
		calls++
		return "built", nil
	})

	for i := 0; i < 4; i++ {
		v, err := init.Call(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "built", v)
	}
	assert.Equal(t, 1, calls)
}

// should give a factory calling back in its own flight, not a deadlock
func TestInitializerRecursiveBegin(t *testing.T) {
	var init *flight.Initializer[int]
	inner := make(chan *flight.Future[int], 1)
	init = flight.NewInitializer(func() (int, error) {
		inner <- init.Begin()
		return 7, nil
	})

	f := init.Begin()
	v, err := f.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.Same(t, f, <-inner)
}

// should not cache a failure, so the next call tries again
func TestInitializerFailureNotCached(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	init := flight.NewInitializer(func() (int, error) {
		calls++
		if calls == 1 {
			return 0, boom
		}
		return 5, nil
	})

	_, err := init.Call(context.Background())
	assert.Same(t, boom, err)
	assert.False(t, init.Resolved())

	v, err := init.Call(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, v)
	assert.True(t, init.Resolved())
	assert.Equal(t, 2, calls)
}

// should defer a reset that lands mid-flight and settle with the rerun
func TestInitializerResetWhileRunning(t *testing.T) {
	started := make(chan int, 2)
	release := make(chan struct{})
	calls := 0
	init := flight.NewInitializer(func() (int, error) {
		calls++
		n := calls
		started <- n
		if n == 1 {
			<-release
		}
		return n * 10, nil
	})

	f := init.Begin()
	require.Equal(t, 1, <-started)

	init.Reset()
	close(release)

	require.Equal(t, 2, <-started)
	v, err := f.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 20, v)
	assert.Equal(t, 2, calls)
	assert.True(t, init.Resolved())
	assert.False(t, init.Running())
}

// should rebuild after a reset of a settled value
func TestInitializerResetWhenIdle(t *testing.T) {
	calls := 0
	init := flight.NewInitializer(func() (int, error) {
		calls++
		return calls, nil
	})

	v, err := init.Call(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	init.Reset()
	assert.False(t, init.Resolved())

	v, err = init.Call(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, 2, calls)
}

// should announce status transitions in order and honor unsubscribe
func TestInitializerStatusSub(t *testing.T) {
	init := flight.NewInitializer(func() (int, error) {
		return 1, nil
	})

	var mu sync.Mutex
	var pairs [][2]bool
	unsub := init.Sub(func(running, resolved bool) {
		mu.Lock()
		pairs = append(pairs, [2]bool{running, resolved})
		mu.Unlock()
	})

	_, err := init.Call(context.Background())
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(pairs) == 2
	}, time.Second, time.Millisecond)
	mu.Lock()
	assert.Equal(t, [][2]bool{{true, false}, {false, true}}, pairs)
	mu.Unlock()

	init.Reset()
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(pairs) == 3
	}, time.Second, time.Millisecond)
	mu.Lock()
	assert.Equal(t, [2]bool{false, false}, pairs[2])
	mu.Unlock()

	assert.True(t, unsub())
	assert.False(t, unsub())

	_, err = init.Call(context.Background())
	require.NoError(t, err)
	mu.Lock()
	assert.Len(t, pairs, 3)
	mu.Unlock()
}

// should let a status handler reset the value it was just told about
func TestInitializerStatusHandlerResets(t *testing.T) {
	calls := 0
	init := flight.NewInitializer(func() (int, error) {
		calls++
		return calls, nil
	})

	resetOnce := false
	unsub := init.Sub(func(running, resolved bool) {
		if resolved && !resetOnce {
			resetOnce = true
			init.Reset()
		}
	})
	defer unsub()

	v, err := init.Call(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	require.Eventually(t, func() bool { return !init.Resolved() },
		time.Second, time.Millisecond)

	v, err = init.Call(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, 2, calls)
}

// should abandon only the cancelled waiter, never the flight
func TestInitializerWaiterCancelled(t *testing.T) {
	release := make(chan struct{})
	calls := 0
	init := flight.NewInitializer(func() (int, error) {
		calls++
		<-release
		return 42, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := init.Call(ctx)
		errCh <- err
	}()

	require.Eventually(t, init.Running, time.Second, time.Millisecond)
	cancel()
	err := <-errCh
	require.Error(t, err)
	assert.True(t, abort.Is(err))

	close(release)
	v, err := init.Call(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 1, calls)
}

// should panic on a nil factory
func TestInitializerNilFactoryPanics(t *testing.T) {
	assert.Panics(t, func() { flight.NewInitializer[int](nil) })
}
