package pgsql

import (
	"context"
	"database/sql"
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
)

type PgxBillRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountBalanceSupport
}

// newPgxBillRepository creates a new repository for upcoming bill data.
// The account repository is needed so paying a bill can debit the account in
// the same database transaction as the bill and transaction writes.
func newPgxBillRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountBalanceSupport) *PgxBillRepository {
	return &PgxBillRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

var _ portsrepo.BillRepositoryFacade = (*PgxBillRepository)(nil)

const billColumns = `bill_id, user_id, name, amount, due_date, category_id, is_paid, created_at, created_by, last_updated_at, last_updated_by`

func scanBill(row pgx.Row) (*models.UpcomingBill, error) {
	var m models.UpcomingBill
	var categoryID sql.NullString
	err := row.Scan(
		&m.BillID,
		&m.UserID,
		&m.Name,
		&m.Amount,
		&m.DueDate,
		&categoryID,
		&m.IsPaid,
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

// SaveBill inserts a new bill.
func (r *PgxBillRepository) SaveBill(ctx context.Context, bill domain.UpcomingBill) error {
	m := mapping.ToModelUpcomingBill(bill)

	query := `
		INSERT INTO upcoming_bills (bill_id, user_id, name, amount, due_date, category_id, is_paid, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.BillID,
		m.UserID,
		m.Name,
		m.Amount,
		m.DueDate,
		nullableID(m.CategoryID),
		m.IsPaid,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: bill with ID %s already exists", apperrors.ErrDuplicate, m.BillID)
		}
		return fmt.Errorf("failed to save bill %s: %w", m.BillID, err)
	}
	return nil
}

// FindBillByID retrieves a bill owned by the user.
func (r *PgxBillRepository) FindBillByID(ctx context.Context, userID string, billID string) (*domain.UpcomingBill, error) {
	query := `SELECT ` + billColumns + ` FROM upcoming_bills WHERE bill_id = $1 AND user_id = $2;`

	m, err := scanBill(r.Pool.QueryRow(ctx, query, billID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bill by ID %s: %w", billID, err)
	}

	bill := mapping.ToDomainUpcomingBill(*m)
	return &bill, nil
}

// ListBills retrieves every bill owned by the user, soonest due first.
func (r *PgxBillRepository) ListBills(ctx context.Context, userID string) ([]domain.UpcomingBill, error) {
	query := `SELECT ` + billColumns + ` FROM upcoming_bills WHERE user_id = $1 ORDER BY due_date, name;`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bills for user %s: %w", userID, err)
	}
	defer rows.Close()

	bills := []domain.UpcomingBill{}
	for rows.Next() {
		m, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bill row: %w", err)
		}
		bills = append(bills, mapping.ToDomainUpcomingBill(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating bill rows: %w", rows.Err())
	}
	return bills, nil
}

// UpdateBill updates an existing bill's details.
func (r *PgxBillRepository) UpdateBill(ctx context.Context, bill domain.UpcomingBill) error {
	m := mapping.ToModelUpcomingBill(bill)

	query := `
		UPDATE upcoming_bills
		SET name = $3, amount = $4, due_date = $5, category_id = $6, last_updated_at = $7, last_updated_by = $8
		WHERE bill_id = $1 AND user_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.BillID,
		m.UserID,
		m.Name,
		m.Amount,
		m.DueDate,
		nullableID(m.CategoryID),
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update bill %s: %w", m.BillID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteBill removes a bill owned by the user.
func (r *PgxBillRepository) DeleteBill(ctx context.Context, userID string, billID string) error {
	query := `DELETE FROM upcoming_bills WHERE bill_id = $1 AND user_id = $2;`

	cmdTag, err := r.Pool.Exec(ctx, query, billID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete bill %s: %w", billID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkBillPaid marks the bill paid, debits the account and records the
// matching expense transaction, all in one database transaction.
func (r *PgxBillRepository) MarkBillPaid(ctx context.Context, userID string, billID string, accountID string, paidBy string, now time.Time) (*domain.Transaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	lockQuery := `SELECT ` + billColumns + ` FROM upcoming_bills WHERE bill_id = $1 AND user_id = $2 FOR UPDATE;`
	stored, err := scanBill(tx.QueryRow(ctx, lockQuery, billID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock bill %s: %w", billID, err)
	}
	if stored.IsPaid {
		return nil, fmt.Errorf("%w: bill %s is already paid", apperrors.ErrValidation, billID)
	}

	account, err := r.accountRepo.FindAccountByIDForUpdate(ctx, tx, userID, accountID)
	if err != nil {
		return nil, err
	}
	if account.Balance.LessThan(stored.Amount) {
		return nil, fmt.Errorf("%w: account %s holds %s, needs %s", apperrors.ErrInsufficientBalance, accountID, account.Balance, stored.Amount)
	}

	markQuery := `
		UPDATE upcoming_bills
		SET is_paid = TRUE, last_updated_at = $3, last_updated_by = $4
		WHERE bill_id = $1 AND user_id = $2;
	`
	if _, err := tx.Exec(ctx, markQuery, billID, userID, now, paidBy); err != nil {
		return nil, fmt.Errorf("failed to mark bill %s paid: %w", billID, err)
	}

	if err := r.accountRepo.ApplyBalanceChangeInTx(ctx, tx, userID, accountID, stored.Amount.Neg(), paidBy, now); err != nil {
		return nil, err
	}

	payment := domain.Transaction{
		TransactionID:   uuid.NewString(),
		UserID:          userID,
		TransactionType: domain.Expense,
		Amount:          stored.Amount,
		Description:     "Pagamento: " + stored.Name,
		Date:            now,
		AccountID:       accountID,
		CategoryID:      stored.CategoryID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     paidBy,
			LastUpdatedAt: now,
			LastUpdatedBy: paidBy,
		},
	}
	if err := insertTransactionInTx(ctx, tx, mapping.ToModelTransaction(payment)); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &payment, nil
}
