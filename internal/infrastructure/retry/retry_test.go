package retry

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig(attempts int) Config {
	return Config{
		MaxAttempts:  attempts,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}
}

func TestDo_SuccessOnFirstAttempt(t *testing.T) {
	var attempts int32

	got, err := Do(context.Background(), ProviderConfig(3), func(ctx context.Context) (string, error) {
		atomic.AddInt32(&attempts, 1)
		return "token", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "token", got)
	assert.Equal(t, int32(1), attempts)
}

func TestDo_SuccessAfterRetries(t *testing.T) {
	var attempts int32

	got, err := Do(context.Background(), fastConfig(5), func(ctx context.Context) (int, error) {
		if atomic.AddInt32(&attempts, 1) < 3 {
			return 0, errors.New("temporary error")
		}
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, int32(3), attempts)
}

func TestDo_MaxAttemptsExceeded(t *testing.T) {
	var attempts int32
	persistent := errors.New("persistent error")

	_, err := Do(context.Background(), fastConfig(3), func(ctx context.Context) (struct{}, error) {
		atomic.AddInt32(&attempts, 1)
		return struct{}{}, persistent
	})

	assert.Equal(t, persistent, err)
	assert.Equal(t, int32(3), attempts)
}

func TestDo_ZeroMaxAttempts(t *testing.T) {
	var attempts int32

	_, err := Do(context.Background(), Config{}, func(ctx context.Context) (int, error) {
		atomic.AddInt32(&attempts, 1)
		return 0, errors.New("boom")
	})

	assert.Error(t, err)
	assert.Equal(t, int32(1), attempts)
}

func TestDo_RetryIfStopsOnPermanentError(t *testing.T) {
	var attempts int32
	permanent := errors.New("bad request")

	cfg := fastConfig(5).WithRetryIf(func(err error) bool {
		return !errors.Is(err, permanent)
	})

	_, err := Do(context.Background(), cfg, func(ctx context.Context) (int, error) {
		if atomic.AddInt32(&attempts, 1) == 1 {
			return 0, errors.New("unavailable")
		}
		return 0, permanent
	})

	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, int32(2), attempts)
}

func TestDo_OnRetryCalledBetweenAttempts(t *testing.T) {
	var seen []int

	cfg := fastConfig(3).WithOnRetry(func(attempt int, err error) {
		seen = append(seen, attempt)
	})

	_, err := Do(context.Background(), cfg, func(ctx context.Context) (int, error) {
		return 0, errors.New("down")
	})

	assert.Error(t, err)
	assert.Equal(t, []int{1, 2}, seen)
}

func TestDo_ContextAlreadyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var attempts int32
	_, err := Do(ctx, fastConfig(3), func(ctx context.Context) (int, error) {
		atomic.AddInt32(&attempts, 1)
		return 0, nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(0), attempts)
}

func TestDo_ContextCancelledDuringBackoffReturnsLastError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	last := errors.New("upstream 503")

	cfg := Config{MaxAttempts: 5, InitialDelay: time.Second, MaxDelay: time.Second, Multiplier: 1}
	cfg = cfg.WithOnRetry(func(int, error) { cancel() })

	start := time.Now()
	_, err := Do(ctx, cfg, func(ctx context.Context) (int, error) {
		return 0, last
	})

	assert.Equal(t, last, err)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestDo_MaxDelayRespected(t *testing.T) {
	start := time.Now()

	_, err := Do(context.Background(), Config{
		MaxAttempts:  4,
		InitialDelay: 20 * time.Millisecond,
		MaxDelay:     25 * time.Millisecond,
		Multiplier:   10.0,
	}, func(ctx context.Context) (int, error) {
		return 0, errors.New("error")
	})

	assert.Error(t, err)
	assert.Less(t, time.Since(start), 300*time.Millisecond)
}

func TestProviderConfig(t *testing.T) {
	cfg := ProviderConfig(2).WithInitialDelay(50 * time.Millisecond)

	assert.Equal(t, 2, cfg.MaxAttempts)
	assert.Equal(t, 50*time.Millisecond, cfg.InitialDelay)
	assert.Equal(t, 2*time.Second, cfg.MaxDelay)
	assert.Equal(t, 2.0, cfg.Multiplier)
}
