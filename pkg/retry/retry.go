package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/orgball2608/x-relay-telegram-bot/pkg/logger"
)

type Config struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
}

func DefaultConfig() Config {
	return Config{
		MaxRetries:      5,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     10 * time.Second,
		Multiplier:      2,
	}
}

// Permanent marks err as not worth retrying.
func Permanent(err error) error {
	return backoff.Permanent(err)
}

// Do runs operation until it succeeds, the retry budget is spent or ctx is done.
func Do(ctx context.Context, log logger.Logger, operationName string, operation func() error, cfg Config) error {
	_, err := Value(ctx, log, operationName, func() (struct{}, error) {
		return struct{}{}, operation()
	}, cfg)
	return err
}

// Value is Do for operations that produce a result.
func Value[T any](ctx context.Context, log logger.Logger, operationName string, operation func() (T, error), cfg Config) (T, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = cfg.InitialInterval
	bo.MaxInterval = cfg.MaxInterval
	bo.Multiplier = cfg.Multiplier
	bo.MaxElapsedTime = 0
	bo.Reset()

	policy := backoff.WithContext(backoff.WithMaxRetries(bo, cfg.MaxRetries), ctx)

	attempt := 0
	notify := func(err error, next time.Duration) {
		attempt++
		log.Warn(
			"Operation failed, retrying...",
			"operation", operationName,
			"attempt", attempt,
			"error", err,
			"next_attempt_in", next.Round(time.Millisecond).String(),
		)
	}

	return backoff.RetryNotifyWithData(operation, policy, notify)
}
