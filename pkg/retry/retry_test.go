package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/visioncart/storefront/pkg/retry"
)

func TestDoWithResult(t *testing.T) {

	t.Run("SucceedsAfterRetries", func(t *testing.T) {
		attempts := 0
		cfg := retry.RetryConfig{
			MaxAttempts: 3,
			Backoff:     retry.LinearBackoff(time.Millisecond),
		}

		got, err := retry.DoWithResult(context.Background(), cfg, func() (int, error) {
			attempts++
			if attempts < 3 {
				return 0, errors.New("transient")
			}
			return 42, nil
		})

		require.NoError(t, err)
		assert.Equal(t, 42, got)
		assert.Equal(t, 3, attempts)
	})

	t.Run("ExhaustsAttempts", func(t *testing.T) {
		failure := errors.New("persistent")
		attempts := 0
		cfg := retry.RetryConfig{
			MaxAttempts: 2,
			Backoff:     retry.LinearBackoff(time.Millisecond),
		}

		_, err := retry.DoWithResult(context.Background(), cfg, func() (int, error) {
			attempts++
			return 0, failure
		})

		assert.ErrorIs(t, err, failure)
		assert.Equal(t, 2, attempts)
	})

	t.Run("NonRetryableStopsImmediately", func(t *testing.T) {
		fatal := errors.New("fatal")
		attempts := 0
		cfg := retry.RetryConfig{
			MaxAttempts: 5,
			Backoff:     retry.LinearBackoff(time.Millisecond),
			ShouldRetry: func(err error) bool { return !errors.Is(err, fatal) },
		}

		_, err := retry.DoWithResult(context.Background(), cfg, func() (int, error) {
			attempts++
			return 0, fatal
		})

		assert.ErrorIs(t, err, fatal)
		assert.Equal(t, 1, attempts)
	})

	t.Run("CancelledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := retry.Do(ctx, retry.RetryConfig{}, func() error {
			t.Fatal("fn must not run on a cancelled context")
			return nil
		})

		assert.ErrorIs(t, err, context.Canceled)
	})
}
