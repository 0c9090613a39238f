package memory

import (
	"context"

	"recruit/internal/domain/repository"
)

// Execute runs fn against a copy of the store and publishes the copy only
// when fn succeeds. On error or panic the store is left untouched.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tm.store.mu.Lock()
	defer tm.store.mu.Unlock()

	work := tm.store.st.clone()
	if err := fn(&factory{acc: &txAccessor{st: work, clock: tm.store.clock}}); err != nil {
		return err
	}
	tm.store.st = work

	return nil
}
