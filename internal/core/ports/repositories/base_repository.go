package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager defines database transaction control. Repositories that
// move money (transactions, bill payments, goal reserves, balance adjustments)
// implement it so multi-row writes commit or roll back together.
type TransactionManager interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) (pgx.Tx, error)

	// Commit commits a transaction.
	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback rolls back a transaction. Safe to defer; a no-op after Commit.
	Rollback(ctx context.Context, tx pgx.Tx) error
}
