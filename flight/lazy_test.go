package flight_test

import (
	"context"
	"sync"
	"testing"

	"github.com/delaneyj/asyncparty/flight"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// should build the value once no matter how many goroutines ask
func TestLazyBuildsOnce(t *testing.T) {
	calls := 0
	lazy := flight.NewLazy(func() (*sync.Map, error) {
		calls++
		return &sync.Map{}, nil
	})
	assert.False(t, lazy.Initialized())

	const n = 8
	got := make(chan *sync.Map, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := lazy.Get(context.Background())
			assert.NoError(t, err)
			got <- v
		}()
	}
	wg.Wait()
	close(got)

	first := <-got
	for v := range got {
		assert.Same(t, first, v)
	}
	assert.Equal(t, 1, calls)
	assert.True(t, lazy.Initialized())
}

// should rebuild on the first get after a reset
func TestLazyReset(t *testing.T) {
	calls := 0
	lazy := flight.NewLazy(func() (int, error) {
		calls++
		return calls, nil
	})

	v, err := lazy.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	lazy.Reset()
	assert.False(t, lazy.Initialized())

	v, err = lazy.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, 2, calls)
}
