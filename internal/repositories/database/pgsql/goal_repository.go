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

type PgxGoalRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountBalanceSupport
}

// newPgxGoalRepository creates a new repository for savings goal data.
// The account repository is needed so reserving funds can debit the source
// account in the same database transaction.
func newPgxGoalRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountBalanceSupport) *PgxGoalRepository {
	return &PgxGoalRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

var _ portsrepo.GoalRepositoryFacade = (*PgxGoalRepository)(nil)

const goalColumns = `goal_id, user_id, name, target_amount, current_amount, priority, created_at, created_by, last_updated_at, last_updated_by`

func scanGoal(row pgx.Row) (*models.Goal, error) {
	var m models.Goal
	err := row.Scan(
		&m.GoalID,
		&m.UserID,
		&m.Name,
		&m.TargetAmount,
		&m.CurrentAmount,
		&m.Priority,
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

// SaveGoal inserts a new goal.
func (r *PgxGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) error {
	m := mapping.ToModelGoal(goal)

	query := `
		INSERT INTO financial_goals (goal_id, user_id, name, target_amount, current_amount, priority, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.GoalID,
		m.UserID,
		m.Name,
		m.TargetAmount,
		m.CurrentAmount,
		m.Priority,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: goal with ID %s already exists", apperrors.ErrDuplicate, m.GoalID)
		}
		return fmt.Errorf("failed to save goal %s: %w", m.GoalID, err)
	}
	return nil
}

// FindGoalByID retrieves a goal owned by the user.
func (r *PgxGoalRepository) FindGoalByID(ctx context.Context, userID string, goalID string) (*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM financial_goals WHERE goal_id = $1 AND user_id = $2;`

	m, err := scanGoal(r.Pool.QueryRow(ctx, query, goalID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find goal by ID %s: %w", goalID, err)
	}

	goal := mapping.ToDomainGoal(*m)
	return &goal, nil
}

// ListGoals retrieves every goal owned by the user, highest priority first.
func (r *PgxGoalRepository) ListGoals(ctx context.Context, userID string) ([]domain.Goal, error) {
	query := `
		SELECT ` + goalColumns + `
		FROM financial_goals
		WHERE user_id = $1
		ORDER BY CASE priority WHEN 'high' THEN 0 WHEN 'medium' THEN 1 ELSE 2 END, name;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals for user %s: %w", userID, err)
	}
	defer rows.Close()

	goals := []domain.Goal{}
	for rows.Next() {
		m, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal row: %w", err)
		}
		goals = append(goals, mapping.ToDomainGoal(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating goal rows: %w", rows.Err())
	}
	return goals, nil
}

// UpdateGoal updates an existing goal's details.
func (r *PgxGoalRepository) UpdateGoal(ctx context.Context, goal domain.Goal) error {
	m := mapping.ToModelGoal(goal)

	query := `
		UPDATE financial_goals
		SET name = $3, target_amount = $4, priority = $5, last_updated_at = $6, last_updated_by = $7
		WHERE goal_id = $1 AND user_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.GoalID,
		m.UserID,
		m.Name,
		m.TargetAmount,
		m.Priority,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update goal %s: %w", m.GoalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteGoal removes a goal owned by the user.
func (r *PgxGoalRepository) DeleteGoal(ctx context.Context, userID string, goalID string) error {
	query := `DELETE FROM financial_goals WHERE goal_id = $1 AND user_id = $2;`

	cmdTag, err := r.Pool.Exec(ctx, query, goalID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete goal %s: %w", goalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ReserveFunds debits the account, credits the goal's current amount and records
// the matching expense transaction, all in one database transaction.
func (r *PgxGoalRepository) ReserveFunds(ctx context.Context, userID string, goalID string, accountID string, amount decimal.Decimal, reservedBy string, now time.Time) (*domain.Goal, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	account, err := r.accountRepo.FindAccountByIDForUpdate(ctx, tx, userID, accountID)
	if err != nil {
		return nil, err
	}
	if account.Balance.LessThan(amount) {
		return nil, fmt.Errorf("%w: account %s holds %s, needs %s", apperrors.ErrInsufficientBalance, accountID, account.Balance, amount)
	}

	lockQuery := `SELECT ` + goalColumns + ` FROM financial_goals WHERE goal_id = $1 AND user_id = $2 FOR UPDATE;`
	stored, err := scanGoal(tx.QueryRow(ctx, lockQuery, goalID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock goal %s: %w", goalID, err)
	}

	if err := r.accountRepo.ApplyBalanceChangeInTx(ctx, tx, userID, accountID, amount.Neg(), reservedBy, now); err != nil {
		return nil, err
	}

	creditQuery := `
		UPDATE financial_goals
		SET current_amount = current_amount + $3, last_updated_at = $4, last_updated_by = $5
		WHERE goal_id = $1 AND user_id = $2;
	`
	if _, err := tx.Exec(ctx, creditQuery, goalID, userID, amount, now, reservedBy); err != nil {
		return nil, fmt.Errorf("failed to credit goal %s: %w", goalID, err)
	}

	reservation := domain.Transaction{
		TransactionID:   uuid.NewString(),
		UserID:          userID,
		TransactionType: domain.Expense,
		Amount:          amount,
		Description:     "Reserva para meta: " + stored.Name,
		Date:            now,
		AccountID:       accountID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     reservedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: reservedBy,
		},
	}
	if err := insertTransactionInTx(ctx, tx, mapping.ToModelTransaction(reservation)); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	goal := mapping.ToDomainGoal(*stored)
	goal.CurrentAmount = goal.CurrentAmount.Add(amount)
	goal.LastUpdatedAt = now
	goal.LastUpdatedBy = reservedBy
	return &goal, nil
}
