package utils

import (
	"context"
	stderrors "errors"
	"math/rand"
	"time"

	"github.com/route-optimizer/internal/pkg/errors"
)

const (
	// maxJitter bounds the random component added to each backoff delay.
	maxJitter = 250 * time.Millisecond
)

// RetryOnRateLimit runs fn up to attempts times, doubling the delay
// after each rate-limited failure and adding random jitter. Any error
// other than ErrRateLimited fails fast. The context cancels waiting
// between attempts.
func RetryOnRateLimit(ctx context.Context, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}

	var err error
	delay := baseDelay
	for i := 0; i < attempts; i++ {
		if err = fn(); err == nil {
			return nil
		}
		if !stderrors.Is(err, errors.ErrRateLimited) {
			return err
		}
		if i == attempts-1 {
			break
		}

		jitter := time.Duration(rand.Int63n(int64(maxJitter)))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay + jitter):
		}
		delay *= 2
	}
	return err
}
