//go:build !integration

package circuitbreaker

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errRedisDown = errors.New("dial tcp 127.0.0.1:6379: connect: connection refused")

func failing() error { return errRedisDown }
func healthy() error { return nil }

func cacheBreaker(failures, successes int, timeout time.Duration) *CircuitBreaker {
	return New(Config{
		FailureThreshold: failures,
		SuccessThreshold: successes,
		Timeout:          timeout,
		Name:             "redis-cache",
		Ignore:           IgnoreCanceled,
	})
}

func TestCircuitBreaker_Execute(t *testing.T) {
	tests := []struct {
		name      string
		calls     []func() error
		wantErr   error
		wantState State
	}{
		{name: "success stays closed", calls: []func() error{healthy}, wantState: StateClosed},
		{name: "one failure below threshold", calls: []func() error{failing}, wantErr: errRedisDown, wantState: StateClosed},
		{name: "threshold opens", calls: []func() error{failing, failing}, wantErr: errRedisDown, wantState: StateOpen},
		{name: "success resets the count", calls: []func() error{failing, healthy, failing}, wantErr: errRedisDown, wantState: StateClosed},
		{name: "open rejects", calls: []func() error{failing, failing, healthy}, wantErr: ErrCircuitOpen, wantState: StateOpen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb := cacheBreaker(2, 1, time.Minute)

			var err error
			for _, call := range tt.calls {
				err = cb.Execute(context.Background(), call)
			}

			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Equal(t, tt.wantState, cb.State())
		})
	}
}

func TestCircuitBreaker_Recovery(t *testing.T) {
	cb := cacheBreaker(2, 2, 50*time.Millisecond)

	_ = cb.Execute(context.Background(), failing)
	_ = cb.Execute(context.Background(), failing)
	require.Equal(t, StateOpen, cb.State())

	time.Sleep(60 * time.Millisecond)

	require.NoError(t, cb.Execute(context.Background(), healthy))
	assert.Equal(t, StateHalfOpen, cb.State())

	require.NoError(t, cb.Execute(context.Background(), healthy))
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb := cacheBreaker(2, 2, 50*time.Millisecond)

	_ = cb.Execute(context.Background(), failing)
	_ = cb.Execute(context.Background(), failing)
	time.Sleep(60 * time.Millisecond)

	err := cb.Execute(context.Background(), failing)

	assert.ErrorIs(t, err, errRedisDown)
	assert.Equal(t, StateOpen, cb.State())
	assert.Equal(t, ErrCircuitOpen, cb.Execute(context.Background(), healthy))
}

func TestCircuitBreaker_CanceledRequests(t *testing.T) {
	t.Run("done context skips the call", func(t *testing.T) {
		cb := cacheBreaker(1, 1, time.Minute)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		called := false
		err := cb.Execute(ctx, func() error {
			called = true
			return nil
		})

		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)
		assert.Equal(t, StateClosed, cb.State())
	})

	t.Run("cancellation is not a backend failure", func(t *testing.T) {
		cb := cacheBreaker(1, 1, time.Minute)

		err := cb.Execute(context.Background(), func() error {
			return fmt.Errorf("get package view: %w", context.Canceled)
		})

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, StateClosed, cb.State())
		assert.Equal(t, 0, cb.GetStats().FailureCount)
	})

	t.Run("deadline still counts", func(t *testing.T) {
		cb := cacheBreaker(1, 1, time.Minute)

		_ = cb.Execute(context.Background(), func() error { return context.DeadlineExceeded })

		assert.True(t, cb.IsOpen())
	})
}

func TestCircuitBreaker_OnStateChange(t *testing.T) {
	type change struct {
		name     string
		from, to State
	}
	var changes []change

	cb := New(Config{
		FailureThreshold: 1,
		SuccessThreshold: 1,
		Timeout:          20 * time.Millisecond,
		Name:             "mongodb-audit-logs",
		OnStateChange: func(name string, from, to State) {
			changes = append(changes, change{name, from, to})
		},
	})

	_ = cb.Execute(context.Background(), failing)
	_ = cb.Execute(context.Background(), healthy)
	time.Sleep(30 * time.Millisecond)
	_ = cb.Execute(context.Background(), healthy)

	assert.Equal(t, []change{
		{"mongodb-audit-logs", StateClosed, StateOpen},
		{"mongodb-audit-logs", StateOpen, StateHalfOpen},
		{"mongodb-audit-logs", StateHalfOpen, StateClosed},
	}, changes)
}

func TestCircuitBreaker_GetStats(t *testing.T) {
	cb := cacheBreaker(3, 1, time.Minute)

	stats := cb.GetStats()
	assert.Equal(t, "redis-cache", stats.Name)
	assert.Equal(t, "closed", stats.State)
	assert.True(t, stats.IsHealthy)
	assert.Zero(t, stats.FailureCount)

	_ = cb.Execute(context.Background(), failing)

	stats = cb.GetStats()
	assert.Equal(t, 1, stats.FailureCount)
	assert.False(t, stats.LastFailure.IsZero())
	assert.Equal(t, "redis-cache", cb.Name())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "open", StateOpen.String())
	assert.Equal(t, "half-open", StateHalfOpen.String())
	assert.Equal(t, "unknown", State(9).String())
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, 5, config.FailureThreshold)
	assert.Equal(t, 2, config.SuccessThreshold)
	assert.Equal(t, 30*time.Second, config.Timeout)
	assert.Equal(t, "catering", config.Name)
	assert.True(t, config.Ignore(context.Canceled))
	assert.False(t, config.Ignore(errRedisDown))
}
