package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "github.com/route-optimizer/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryOnRateLimit(t *testing.T) {
	t.Run("succeeds first try", func(t *testing.T) {
		calls := 0
		err := RetryOnRateLimit(context.Background(), 3, time.Millisecond, func() error {
			calls++
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries only on rate limit", func(t *testing.T) {
		calls := 0
		err := RetryOnRateLimit(context.Background(), 3, time.Millisecond, func() error {
			calls++
			return apperrors.ErrRateLimited
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrRateLimited))
		assert.Equal(t, 3, calls)
	})

	t.Run("fails fast on other errors", func(t *testing.T) {
		calls := 0
		err := RetryOnRateLimit(context.Background(), 3, time.Millisecond, func() error {
			calls++
			return apperrors.ErrUpstreamUnavailable
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrUpstreamUnavailable))
		assert.Equal(t, 1, calls)
	})

	t.Run("recovers mid-sequence", func(t *testing.T) {
		calls := 0
		err := RetryOnRateLimit(context.Background(), 3, time.Millisecond, func() error {
			calls++
			if calls < 3 {
				return apperrors.ErrRateLimited
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("honors wrapped sentinels", func(t *testing.T) {
		calls := 0
		err := RetryOnRateLimit(context.Background(), 2, time.Millisecond, func() error {
			calls++
			return errors.Join(errors.New("throttled"), apperrors.ErrRateLimited)
		})
		require.Error(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("context cancels the wait", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := RetryOnRateLimit(ctx, 3, time.Second, func() error {
			return apperrors.ErrRateLimited
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.Canceled))
	})
}
