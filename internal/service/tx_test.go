//go:build !integration

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// retryingTx runs fn attempts times, like the driver does on transient errors.
type retryingTx struct {
	attempts int
	err      error
	calls    int
}

func (tx *retryingTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.calls++
	attempts := tx.attempts
	if attempts < 1 {
		attempts = 1
	}
	var err error
	for i := 0; i < attempts; i++ {
		if err = fn(ctx); err != nil {
			return err
		}
	}
	return tx.err
}

func TestInTransaction_HooksRunAfterCommit(t *testing.T) {
	tx := &retryingTx{}
	var order []string

	err := inTransaction(context.Background(), tx, func(ctx context.Context) error {
		afterCommit(ctx, func(context.Context) { order = append(order, "hook") })
		order = append(order, "body")
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"body", "hook"}, order)
}

func TestInTransaction_HooksDroppedOnFailure(t *testing.T) {
	tests := []struct {
		name string
		tx   *retryingTx
		body error
	}{
		{name: "body fails", tx: &retryingTx{}, body: errors.New("boom")},
		{name: "commit fails", tx: &retryingTx{err: errors.New("commit failed")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ran := false
			err := inTransaction(context.Background(), tt.tx, func(ctx context.Context) error {
				afterCommit(ctx, func(context.Context) { ran = true })
				return tt.body
			})

			assert.Error(t, err)
			assert.False(t, ran)
		})
	}
}

func TestInTransaction_RetryDoesNotDuplicateHooks(t *testing.T) {
	tx := &retryingTx{attempts: 3}
	runs := 0

	err := inTransaction(context.Background(), tx, func(ctx context.Context) error {
		afterCommit(ctx, func(context.Context) { runs++ })
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, runs)
}

func TestInTransaction_NestedDefersToOuter(t *testing.T) {
	tx := &retryingTx{}
	var order []string

	err := inTransaction(context.Background(), tx, func(ctx context.Context) error {
		err := inTransaction(ctx, tx, func(ctx context.Context) error {
			afterCommit(ctx, func(context.Context) { order = append(order, "inner") })
			return nil
		})
		order = append(order, "outer body")
		return err
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"outer body", "inner"}, order)
	assert.Equal(t, 2, tx.calls)
}

func TestAfterCommit_RunsImmediatelyOutsideTransaction(t *testing.T) {
	ran := false
	afterCommit(context.Background(), func(context.Context) { ran = true })
	assert.True(t, ran)
}
