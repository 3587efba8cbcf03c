package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catebi/go-tax-declaration/internal/common/retry"
	"github.com/catebi/go-tax-declaration/internal/config"
)

func testRetryer() retry.Retryer {
	return retry.NewExponentialBackOff(config.ExponentialBackOffConfig{
		MaxRetries:      3,
		InitialInterval: time.Millisecond,
		MaxBackoffTime:  time.Second,
	})
}

func TestRetryer_Do_SucceedsAfterTransientFailures(t *testing.T) {
	retryer := testRetryer()

	attempts := 0
	err := retryer.Do(context.Background(), func() error {
		attempts++
		if attempts < 3 {
			return errors.New("transient")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestRetryer_Do_ExhaustsBudget(t *testing.T) {
	retryer := testRetryer()

	wantErr := errors.New("still broken")
	attempts := 0
	err := retryer.Do(context.Background(), func() error {
		attempts++
		return wantErr
	})

	require.ErrorIs(t, err, wantErr)
	assert.Equal(t, 4, attempts, "initial attempt plus three retries")
}

func TestRetryer_Do_PermanentErrorStopsImmediately(t *testing.T) {
	retryer := testRetryer()

	wantErr := errors.New("pointless to retry")
	attempts := 0
	err := retryer.Do(context.Background(), func() error {
		attempts++
		return retryer.StopRetryWithErr(wantErr)
	})

	require.ErrorIs(t, err, wantErr)
	assert.Equal(t, 1, attempts)
}

func TestRetryer_Do_CanceledContext(t *testing.T) {
	retryer := testRetryer()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := retryer.Do(ctx, func() error {
		return errors.New("transient")
	})
	require.Error(t, err)
}
