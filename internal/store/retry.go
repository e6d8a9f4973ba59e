package store

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryConfig configures retry behavior for transient store failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultRetryConfig returns the retry policy used for SQL backends.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 100 * time.Millisecond,
		MaxWait:     2 * time.Second,
		Multiplier:  2.0,
	}
}

// retryStore is a decorator that retries transient errors with exponential
// backoff and jitter. A Save is a single whole-block statement, so retrying
// it can never leave a partial block behind.
type retryStore struct {
	inner  BlockStore
	config RetryConfig
}

// WithRetry wraps a BlockStore with retry logic.
func WithRetry(s BlockStore, cfg RetryConfig) BlockStore {
	return &retryStore{inner: s, config: cfg}
}

func (r *retryStore) Load(ctx context.Context, name string) ([]byte, error) {
	var data []byte
	err := r.do(ctx, func() error {
		var err error
		data, err = r.inner.Load(ctx, name)
		return err
	})
	return data, err
}

func (r *retryStore) Save(ctx context.Context, name string, data []byte) error {
	return r.do(ctx, func() error {
		return r.inner.Save(ctx, name, data)
	})
}

func (r *retryStore) Close() error {
	return r.inner.Close()
}

func (r *retryStore) do(ctx context.Context, op func() error) error {
	var lastErr error
	attempts := max(r.config.MaxAttempts, 1)
	for attempt := range attempts {
		err := op()
		if err == nil {
			return nil
		}
		lastErr = err

		if !shouldRetry(err) {
			return err
		}

		// Last attempt: don't sleep, just return the error.
		if attempt == attempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.backoff(attempt)):
		}
	}
	return lastErr
}

// shouldRetry determines if an error is retryable. A missing block is an
// answer, not a failure.
func shouldRetry(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, ErrBlockNotFound) {
		return false
	}
	// Other errors (network, lock contention, etc.) are treated as transient.
	return true
}

// backoff computes the wait duration for the given attempt.
func (r *retryStore) backoff(attempt int) time.Duration {
	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	if wait > float64(r.config.MaxWait) {
		wait = float64(r.config.MaxWait)
	}

	// Add ±20% jitter.
	jitter := wait * 0.2 * (2*rand.Float64() - 1)
	wait += jitter

	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
