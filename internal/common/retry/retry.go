package retry

import (
	"context"

	"github.com/cenkalti/backoff/v4"

	"github.com/catebi/go-tax-declaration/internal/config"
)

const DefaultMaxRetries uint64 = 3

// Retryer retries a failing operation with exponential backoff until it
// succeeds, the retry budget is exhausted, or the operation returns a
// permanent error.
type Retryer interface {
	Do(ctx context.Context, operation func() error) error
	StopRetryWithErr(err error) error
}

type exponentialBackoff struct {
	ebCfg config.ExponentialBackOffConfig
}

// NewExponentialBackOff will init the Retryer interface with an exponential
// backoff mechanism.
func NewExponentialBackOff(ebCfg config.ExponentialBackOffConfig) Retryer {
	if ebCfg.MaxBackoffTime <= 0 {
		ebCfg.MaxBackoffTime = backoff.DefaultMaxElapsedTime
	}

	if ebCfg.BackoffMultiplier <= 0 {
		ebCfg.BackoffMultiplier = backoff.DefaultMultiplier
	}

	if ebCfg.InitialInterval <= 0 {
		ebCfg.InitialInterval = backoff.DefaultInitialInterval
	}

	if ebCfg.MaxRetries == 0 {
		ebCfg.MaxRetries = DefaultMaxRetries
	}

	return &exponentialBackoff{ebCfg: ebCfg}
}

// Do creates a fresh ExponentialBackOff instance for every execution, so
// retry state never leaks between operations.
func (r *exponentialBackoff) Do(ctx context.Context, operation func() error) error {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = r.ebCfg.InitialInterval
	eb.MaxElapsedTime = r.ebCfg.MaxBackoffTime
	eb.Multiplier = r.ebCfg.BackoffMultiplier

	return backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(eb, r.ebCfg.MaxRetries), ctx))
}

// StopRetryWithErr marks an error as permanent so Do returns it without
// further attempts. Call it inside the operation func.
func (r *exponentialBackoff) StopRetryWithErr(err error) error {
	return backoff.Permanent(err)
}
