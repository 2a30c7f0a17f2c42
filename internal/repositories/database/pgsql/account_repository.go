package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/granaflow/granaflow/internal/apperrors"
	"github.com/granaflow/granaflow/internal/core/domain"
	portsrepo "github.com/granaflow/granaflow/internal/core/ports/repositories"
	"github.com/granaflow/granaflow/internal/models"
	"github.com/granaflow/granaflow/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryWithTx = (*PgxAccountRepository)(nil)

const accountColumns = `account_id, user_id, name, account_type, balance, color, created_at, created_by, last_updated_at, last_updated_by`

func scanAccount(row pgx.Row) (*models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.UserID,
		&m.Name,
		&m.AccountType,
		&m.Balance,
		&m.Color,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)

	query := `
		INSERT INTO accounts (account_id, user_id, name, account_type, balance, color, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.UserID,
		m.Name,
		m.AccountType,
		m.Balance,
		m.Color,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: account with ID %s already exists", apperrors.ErrDuplicate, m.AccountID)
		}
		return fmt.Errorf("failed to save account %s: %w", m.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves an account owned by the user.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, userID string, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1 AND user_id = $2;`

	m, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}

	acc := mapping.ToDomainAccount(*m)
	return &acc, nil
}

// ListAccounts retrieves every account owned by the user, ordered by name.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE user_id = $1 ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts for user %s: %w", userID, err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, mapping.ToDomainAccount(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", rows.Err())
	}
	return accounts, nil
}

// UpdateAccount updates an existing account's mutable fields.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)

	query := `
		UPDATE accounts
		SET name = $3, account_type = $4, color = $5, last_updated_at = $6, last_updated_by = $7
		WHERE account_id = $1 AND user_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.UserID,
		m.Name,
		m.AccountType,
		m.Color,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update account %s: %w", m.AccountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteAccount removes an account. Its transactions are removed by the
// ON DELETE CASCADE on the transactions table.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, userID string, accountID string) error {
	query := `DELETE FROM accounts WHERE account_id = $1 AND user_id = $2;`

	cmdTag, err := r.Pool.Exec(ctx, query, accountID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete account %s: %w", accountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindAccountByIDForUpdate selects an account and locks the row within a transaction.
func (r *PgxAccountRepository) FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, userID string, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1 AND user_id = $2 FOR UPDATE;`

	m, err := scanAccount(tx.QueryRow(ctx, query, accountID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock account %s: %w", accountID, err)
	}

	acc := mapping.ToDomainAccount(*m)
	return &acc, nil
}

// ApplyBalanceChangeInTx adds delta (signed) to an account's balance within a transaction.
func (r *PgxAccountRepository) ApplyBalanceChangeInTx(ctx context.Context, tx pgx.Tx, userID string, accountID string, delta decimal.Decimal, updatedBy string, now time.Time) error {
	query := `
		UPDATE accounts
		SET balance = balance + $3, last_updated_at = $4, last_updated_by = $5
		WHERE account_id = $1 AND user_id = $2;
	`
	cmdTag, err := tx.Exec(ctx, query, accountID, userID, delta, now, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to apply balance change to account %s: %w", accountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// AdjustBalance sets an account's balance and records the correction, atomically.
func (r *PgxAccountRepository) AdjustBalance(ctx context.Context, userID string, accountID string, newBalance decimal.Decimal, reason string, adjustedBy string, now time.Time) (*domain.BalanceAdjustment, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	acc, err := r.FindAccountByIDForUpdate(ctx, tx, userID, accountID)
	if err != nil {
		return nil, err
	}

	updateQuery := `
		UPDATE accounts
		SET balance = $3, last_updated_at = $4, last_updated_by = $5
		WHERE account_id = $1 AND user_id = $2;
	`
	if _, err := tx.Exec(ctx, updateQuery, accountID, userID, newBalance, now, adjustedBy); err != nil {
		return nil, fmt.Errorf("failed to set balance on account %s: %w", accountID, err)
	}

	adjustment := domain.BalanceAdjustment{
		AdjustmentID: uuid.NewString(),
		UserID:       userID,
		AccountID:    accountID,
		OldBalance:   acc.Balance,
		NewBalance:   newBalance,
		Reason:       reason,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     adjustedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: adjustedBy,
		},
	}

	insertQuery := `
		INSERT INTO account_balance_adjustments (adjustment_id, user_id, account_id, old_balance, new_balance, reason, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	if _, err := tx.Exec(ctx, insertQuery,
		adjustment.AdjustmentID,
		adjustment.UserID,
		adjustment.AccountID,
		adjustment.OldBalance,
		adjustment.NewBalance,
		adjustment.Reason,
		adjustment.CreatedAt,
		adjustment.CreatedBy,
		adjustment.LastUpdatedAt,
		adjustment.LastUpdatedBy,
	); err != nil {
		return nil, fmt.Errorf("failed to record balance adjustment for account %s: %w", accountID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &adjustment, nil
}

// ListAdjustments retrieves the adjustment history for an account, newest first.
func (r *PgxAccountRepository) ListAdjustments(ctx context.Context, userID string, accountID string) ([]domain.BalanceAdjustment, error) {
	query := `
		SELECT adjustment_id, user_id, account_id, old_balance, new_balance, reason, created_at, created_by, last_updated_at, last_updated_by
		FROM account_balance_adjustments
		WHERE user_id = $1 AND account_id = $2
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query adjustments for account %s: %w", accountID, err)
	}
	defer rows.Close()

	adjustments := []domain.BalanceAdjustment{}
	for rows.Next() {
		var m models.BalanceAdjustment
		err := rows.Scan(
			&m.AdjustmentID,
			&m.UserID,
			&m.AccountID,
			&m.OldBalance,
			&m.NewBalance,
			&m.Reason,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan adjustment row: %w", err)
		}
		adjustments = append(adjustments, mapping.ToDomainBalanceAdjustment(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating adjustment rows: %w", rows.Err())
	}
	return adjustments, nil
}
