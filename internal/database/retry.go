package database

import (
	"context"
	"fmt"
	"time"
)

// retry calls fn up to attempts times, sleeping delay between failures.
func retry(ctx context.Context, attempts int, delay time.Duration, fn func(ctx context.Context, attempt int) error) error {
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = fn(ctx, attempt); err == nil {
			return nil
		}
		if attempt == attempts {
			break
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return fmt.Errorf("giving up after %d attempts: %w", attempts, err)
}
