package retry

import (
	"context"
	"fmt"
	"time"
)

// Config controls the backoff schedule.
type Config struct {
	// MaxAttempts is the number of retries after the first try.
	MaxAttempts int
	// InitialDelay is the wait before the first retry. Each further
	// retry doubles it, capped at MaxDelay.
	InitialDelay time.Duration
	MaxDelay     time.Duration
}

func DefaultConfig() Config {
	return Config{
		MaxAttempts:  3,
		InitialDelay: 100 * time.Millisecond,
		MaxDelay:     2 * time.Second,
	}
}

// Retry runs op, retrying with doubling backoff until it succeeds, the
// attempts are exhausted, or the context is cancelled. The last error
// stays reachable through errors.Is.
func Retry(ctx context.Context, cfg Config, op func() error) error {
	var lastErr error

	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("retry aborted: %w", err)
		}

		if lastErr = op(); lastErr == nil {
			return nil
		}
		if attempt >= cfg.MaxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("retry aborted: %w", ctx.Err())
		case <-time.After(delayFor(cfg, attempt)):
		}
	}

	return fmt.Errorf("gave up after %d attempts: %w", cfg.MaxAttempts+1, lastErr)
}

func delayFor(cfg Config, attempt int) time.Duration {
	delay := cfg.InitialDelay << attempt
	if cfg.MaxDelay > 0 && (delay > cfg.MaxDelay || delay <= 0) {
		delay = cfg.MaxDelay
	}
	return delay
}
