package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/granaflow/granaflow/internal/apperrors"
	"github.com/granaflow/granaflow/internal/core/domain"
	portsrepo "github.com/granaflow/granaflow/internal/core/ports/repositories"
	"github.com/granaflow/granaflow/internal/models"
	"github.com/granaflow/granaflow/internal/utils/mapping"
	"github.com/granaflow/granaflow/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxTransactionRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountBalanceSupport
}

// newPgxTransactionRepository creates a new repository for transaction data.
// The account repository is needed to apply balance changes in the same
// database transaction as the row writes.
func newPgxTransactionRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountBalanceSupport) *PgxTransactionRepository {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, user_id, type, amount, description, date, account_id, category_id, created_at, created_by, last_updated_at, last_updated_by`

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var m models.Transaction
	var categoryID sql.NullString
	err := row.Scan(
		&m.TransactionID,
		&m.UserID,
		&m.TransactionType,
		&m.Amount,
		&m.Description,
		&m.Date,
		&m.AccountID,
		&categoryID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if categoryID.Valid {
		m.CategoryID = categoryID.String
	}
	return &m, nil
}

func nullableID(id string) sql.NullString {
	if id == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: id, Valid: true}
}

func insertTransactionInTx(ctx context.Context, tx pgx.Tx, m models.Transaction) error {
	query := `
		INSERT INTO transactions (transaction_id, user_id, type, amount, description, date, account_id, category_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := tx.Exec(ctx, query,
		m.TransactionID,
		m.UserID,
		m.TransactionType,
		m.Amount,
		m.Description,
		m.Date,
		m.AccountID,
		nullableID(m.CategoryID),
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: transaction with ID %s already exists", apperrors.ErrDuplicate, m.TransactionID)
		}
		return fmt.Errorf("failed to insert transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

// SaveTransaction inserts the transaction and applies balanceChange to its
// account in one database transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, balanceChange decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	if err := insertTransactionInTx(ctx, tx, mapping.ToModelTransaction(txn)); err != nil {
		return err
	}

	if err := r.accountRepo.ApplyBalanceChangeInTx(ctx, tx, txn.UserID, txn.AccountID, balanceChange, txn.CreatedBy, txn.CreatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// FindTransactionByID retrieves a transaction owned by the user.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1 AND user_id = $2;`

	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	txn := mapping.ToDomainTransaction(*m)
	return &txn, nil
}

// ListTransactions retrieves a date-descending page of the user's transactions.
// Paging is keyset based on (date, created_at) so rows with equal dates keep a
// stable order across pages.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, userID string, limit int, nextToken string) ([]domain.Transaction, string, error) {
	if limit <= 0 {
		limit = 20
	}

	args := []any{userID, limit + 1}
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1`

	if nextToken != "" {
		date, createdAt, err := pagination.DecodeToken(nextToken)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += ` AND (date, created_at) < ($3, $4)`
		args = append(args, date, createdAt)
	}

	query += ` ORDER BY date DESC, created_at DESC LIMIT $2;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("failed to query transactions for user %s: %w", userID, err)
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, "", fmt.Errorf("failed to scan transaction row: %w", err)
		}
		transactions = append(transactions, mapping.ToDomainTransaction(*m))
	}
	if rows.Err() != nil {
		return nil, "", fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}

	// One extra row was fetched to decide whether a next page exists.
	token := ""
	if len(transactions) > limit {
		transactions = transactions[:limit]
		last := transactions[limit-1]
		token = pagination.EncodeToken(last.Date, last.CreatedAt)
	}
	return transactions, token, nil
}

// FindAllTransactions retrieves every transaction owned by the user, date descending.
func (r *PgxTransactionRepository) FindAllTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1 ORDER BY date DESC, created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for user %s: %w", userID, err)
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		transactions = append(transactions, mapping.ToDomainTransaction(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}
	return transactions, nil
}

// balanceEffect is the signed change a transaction applies to its account.
func balanceEffect(txnType models.TransactionType, amount decimal.Decimal) decimal.Decimal {
	if txnType == models.Expense {
		return amount.Neg()
	}
	return amount
}

// UpdateTransaction replaces a stored transaction, reversing the stored row's
// balance effect and applying the new one within a single database transaction.
// The stored row's account may differ from the new one when the transaction is
// being moved between accounts.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	lockQuery := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1 AND user_id = $2 FOR UPDATE;`
	stored, err := scanTransaction(tx.QueryRow(ctx, lockQuery, txn.TransactionID, txn.UserID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to lock transaction %s: %w", txn.TransactionID, err)
	}

	reversal := balanceEffect(stored.TransactionType, stored.Amount).Neg()
	if err := r.accountRepo.ApplyBalanceChangeInTx(ctx, tx, txn.UserID, stored.AccountID, reversal, txn.LastUpdatedBy, txn.LastUpdatedAt); err != nil {
		return err
	}

	m := mapping.ToModelTransaction(txn)
	updateQuery := `
		UPDATE transactions
		SET type = $3, amount = $4, description = $5, date = $6, account_id = $7, category_id = $8, last_updated_at = $9, last_updated_by = $10
		WHERE transaction_id = $1 AND user_id = $2;
	`
	if _, err := tx.Exec(ctx, updateQuery,
		m.TransactionID,
		m.UserID,
		m.TransactionType,
		m.Amount,
		m.Description,
		m.Date,
		m.AccountID,
		nullableID(m.CategoryID),
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	); err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", m.TransactionID, err)
	}

	effect := balanceEffect(m.TransactionType, m.Amount)
	if err := r.accountRepo.ApplyBalanceChangeInTx(ctx, tx, txn.UserID, txn.AccountID, effect, txn.LastUpdatedBy, txn.LastUpdatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// DeleteTransaction removes a transaction and reverses its balance effect, atomically.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, userID string, transactionID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	lockQuery := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1 AND user_id = $2 FOR UPDATE;`
	stored, err := scanTransaction(tx.QueryRow(ctx, lockQuery, transactionID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to lock transaction %s: %w", transactionID, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1 AND user_id = $2;`, transactionID, userID); err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}

	reversal := balanceEffect(stored.TransactionType, stored.Amount).Neg()
	if err := r.accountRepo.ApplyBalanceChangeInTx(ctx, tx, userID, stored.AccountID, reversal, userID, time.Now().UTC()); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}
