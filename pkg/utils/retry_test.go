package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetry(t *testing.T) {
	errTemporary := errors.New("temporary")
	errFatal := errors.New("fatal")

	cfg := RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond}

	testCases := []struct {
		name      string
		results   []error
		stop      []error
		wantCalls int
		wantErr   error
	}{
		{
			name:      "first attempt succeeds",
			results:   []error{nil},
			wantCalls: 1,
		},
		{
			name:      "succeeds after failure",
			results:   []error{errTemporary, nil},
			wantCalls: 2,
		},
		{
			name:      "attempts exhausted",
			results:   []error{errTemporary, errTemporary, errTemporary},
			wantCalls: 3,
			wantErr:   errTemporary,
		},
		{
			name:      "stop error is not retried",
			results:   []error{errFatal},
			stop:      []error{errFatal},
			wantCalls: 1,
			wantErr:   errFatal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			err := Retry(context.Background(), cfg, func() error {
				err := tc.results[calls]
				calls++
				return err
			}, tc.stop...)

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

	calls := 0
	err := Retry(ctx, RetryConfig{MaxAttempts: 5, InitialDelay: time.Second}, func() error {
		calls++
		return errors.New("temporary")
	})

	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, context.Canceled)
}
