package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetry(t *testing.T) {
	temporary := errors.New("temporary")
	permanent := errors.New("permanent")

	testCases := []struct {
		name      string
		failures  int
		failWith  error
		wantCalls int
		wantErr   error
	}{
		{name: "first attempt succeeds", failures: 0, wantCalls: 1},
		{name: "succeeds after retries", failures: 2, failWith: temporary, wantCalls: 3},
		{name: "gives up after max attempts", failures: 10, failWith: temporary, wantCalls: 3, wantErr: temporary},
		{name: "permanent error is not retried", failures: 10, failWith: permanent, wantCalls: 1, wantErr: permanent},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			cfg := RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond}
			err := Retry(context.Background(), cfg, func() error {
				calls++
				if calls <= tc.failures {
					return tc.failWith
				}
				return nil
			}, permanent)

			assert.Equal(t, tc.wantCalls, calls)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	boom := errors.New("boom")
	calls := 0
	err := Retry(ctx, RetryConfig{MaxAttempts: 5, InitialDelay: time.Second}, func() error {
		calls++
		return boom
	})

	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, err, context.Canceled)
}
