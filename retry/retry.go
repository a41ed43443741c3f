package retry

import (
	"context"
	"time"

	"github.com/delaneyj/asyncparty/abort"
)

const (
	DefaultAttempts   = 3
	DefaultMinTimeout = 500 * time.Millisecond
	DefaultMaxTimeout = 8 * time.Second
)

// Config bounds the retry loop. Zero fields fall back to the defaults above.
type Config struct {
	Attempts   int
	MinTimeout time.Duration
	MaxTimeout time.Duration
	// OnCatch observes every failed attempt: the error, the zero-based
	// attempt index and the configured attempt limit.
	OnCatch func(err error, attempt, attempts int)
}

func (c Config) withDefaults() Config {
	if c.Attempts <= 0 {
		c.Attempts = DefaultAttempts
	}
	if c.MinTimeout <= 0 {
		c.MinTimeout = DefaultMinTimeout
	}
	if c.MaxTimeout <= 0 {
		c.MaxTimeout = DefaultMaxTimeout
	}
	if c.MaxTimeout < c.MinTimeout {
		c.MaxTimeout = c.MinTimeout
	}
	return c
}

// Backoff returns the delay slept before the retry that follows attempt
// (zero-based): MinTimeout doubled per attempt, clamped to MaxTimeout.
// Monotonically non-decreasing, no jitter.
func (c Config) Backoff(attempt int) time.Duration {
	c = c.withDefaults()
	d := c.MinTimeout
	for i := 0; i < attempt; i++ {
		d *= 2
		if d >= c.MaxTimeout || d <= 0 {
			return c.MaxTimeout
		}
	}
	if d > c.MaxTimeout {
		d = c.MaxTimeout
	}
	return d
}

// Do invokes factory until it succeeds, the attempt limit is reached, or ctx
// is done. The last factory error is returned unchanged at the limit. A done
// ctx surfaces as an *abort.Error, checked after each failure and during the
// backoff sleep, which it cuts short; a factory already running is never
// interrupted. OnCatch fires on every failure, the final one included,
// except when the context is already done by the time the failure lands.
func Do[T any](ctx context.Context, factory func(context.Context) (T, error), cfg Config) (T, error) {
	cfg = cfg.withDefaults()
	var zero T
	var lastErr error
	for attempt := 0; attempt < cfg.Attempts; attempt++ {
		v, err := factory(ctx)
		if err == nil {
			return v, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return zero, abort.FromContext(ctx)
		}
		if cfg.OnCatch != nil {
			cfg.OnCatch(err, attempt, cfg.Attempts)
		}
		if attempt == cfg.Attempts-1 {
			break
		}
		timer := time.NewTimer(cfg.Backoff(attempt))
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return zero, abort.FromContext(ctx)
		}
	}
	return zero, lastErr
}
