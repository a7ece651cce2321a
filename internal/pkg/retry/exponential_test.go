package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fastConfig() Config {
	return Config{
		MaxRetries: 3,
		BaseDelay:  time.Millisecond,
		MaxDelay:   5 * time.Millisecond,
		Multiplier: 2.0,
	}
}

func TestExecute_SucceedsFirstAttempt(t *testing.T) {
	retrier := New(fastConfig())

	calls := 0
	err := retrier.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestExecute_SucceedsAfterRetries(t *testing.T) {
	retrier := New(fastConfig())

	calls := 0
	err := retrier.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestExecute_ExhaustsRetries(t *testing.T) {
	retrier := New(fastConfig())

	failure := errors.New("persistent failure")
	calls := 0
	err := retrier.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return failure
	})

	assert.ErrorIs(t, err, failure)
	assert.Contains(t, err.Error(), "retry limit exceeded")
	assert.Equal(t, 4, calls) // first attempt plus three retries
}

func TestExecute_NonRetryableStopsImmediately(t *testing.T) {
	fatal := errors.New("bad payload")
	cfg := fastConfig()
	cfg.Retryable = func(err error) bool { return !errors.Is(err, fatal) }
	retrier := New(cfg)

	calls := 0
	err := retrier.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return fatal
	})

	assert.ErrorIs(t, err, fatal)
	assert.Equal(t, 1, calls)
}

func TestExecute_ContextCancelled(t *testing.T) {
	retrier := New(fastConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := retrier.Execute(ctx, func(ctx context.Context) error {
		t.Fatal("should not be called with a cancelled context")
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
}
