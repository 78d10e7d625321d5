package retry

import (
	"context"
	"time"
)

// Pauses between attempts. Every operation is tried once plus once per pause.
var backoff = []time.Duration{1 * time.Second, 3 * time.Second, 5 * time.Second}

func DoRetry(ctx context.Context, operation func() error) error {
	_, err := DoRetryWithResult(ctx, func() (struct{}, error) {
		return struct{}{}, operation()
	})
	return err
}

func DoRetryWithResult[T any](ctx context.Context, operation func() (T, error)) (T, error) {
	var result T
	var err error
	for attempt := 0; ; attempt++ {
		result, err = operation()
		if err == nil || attempt >= len(backoff) {
			return result, err
		}
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-time.After(backoff[attempt]):
		}
	}
}
