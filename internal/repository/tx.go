package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/ghostcity-rp/companion/internal/logger"
)

// Tx is the common shape of transactional repository handles.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// SafeRollback rolls back a transaction and logs any error that isn't
// "already closed". Meant for defer after BeginTx.
func SafeRollback(ctx context.Context, tx Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}
