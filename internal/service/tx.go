package service

import (
	"context"
	"sync"

	"github.com/guttosm/catering-service/internal/repository"
)

// commitHooks collects side effects that must only run once the outermost transaction commits.
type commitHooks struct {
	mu  sync.Mutex
	fns []func(context.Context)
}

type commitHooksKey struct{}

func (h *commitHooks) add(fn func(context.Context)) {
	h.mu.Lock()
	h.fns = append(h.fns, fn)
	h.mu.Unlock()
}

func (h *commitHooks) reset() {
	h.mu.Lock()
	h.fns = nil
	h.mu.Unlock()
}

func (h *commitHooks) run(ctx context.Context) {
	h.mu.Lock()
	fns := h.fns
	h.fns = nil
	h.mu.Unlock()

	for _, fn := range fns {
		fn(ctx)
	}
}

// inTransaction runs fn in a transaction. Nested calls join the outer transaction and
// their after-commit hooks are deferred to it.
func inTransaction(ctx context.Context, tx repository.Transactor, fn func(ctx context.Context) error) error {
	if _, nested := ctx.Value(commitHooksKey{}).(*commitHooks); nested {
		return tx.WithTransaction(ctx, fn)
	}

	hooks := &commitHooks{}
	txCtx := context.WithValue(ctx, commitHooksKey{}, hooks)
	err := tx.WithTransaction(txCtx, func(ctx context.Context) error {
		// the driver retries fn on transient errors
		hooks.reset()
		return fn(ctx)
	})
	if err != nil {
		return err
	}
	hooks.run(ctx)
	return nil
}

// afterCommit schedules fn to run after the enclosing transaction commits,
// or runs it immediately outside a transaction.
func afterCommit(ctx context.Context, fn func(context.Context)) {
	if hooks, ok := ctx.Value(commitHooksKey{}).(*commitHooks); ok {
		hooks.add(fn)
		return
	}
	fn(ctx)
}
