package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/granaflow/granaflow/internal/apperrors"
	"github.com/granaflow/granaflow/internal/core/domain"
	portsrepo "github.com/granaflow/granaflow/internal/core/ports/repositories"
	"github.com/granaflow/granaflow/internal/models"
	"github.com/granaflow/granaflow/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxInvestmentRepository struct {
	BaseRepository
}

// newPgxInvestmentRepository creates a new repository for investment data.
func newPgxInvestmentRepository(pool *pgxpool.Pool) *PgxInvestmentRepository {
	return &PgxInvestmentRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.InvestmentRepositoryFacade = (*PgxInvestmentRepository)(nil)

const investmentColumns = `investment_id, user_id, asset_name, asset_type_id, quantity, average_price, total_invested, created_at, created_by, last_updated_at, last_updated_by`

func scanInvestment(row pgx.Row) (*models.Investment, error) {
	var m models.Investment
	err := row.Scan(
		&m.InvestmentID,
		&m.UserID,
		&m.AssetName,
		&m.AssetTypeID,
		&m.Quantity,
		&m.AveragePrice,
		&m.TotalInvested,
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

// SaveInvestment inserts a new investment holding.
func (r *PgxInvestmentRepository) SaveInvestment(ctx context.Context, investment domain.Investment) error {
	m := mapping.ToModelInvestment(investment)

	query := `
		INSERT INTO investments (investment_id, user_id, asset_name, asset_type_id, quantity, average_price, total_invested, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.InvestmentID,
		m.UserID,
		m.AssetName,
		m.AssetTypeID,
		m.Quantity,
		m.AveragePrice,
		m.TotalInvested,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" {
				return fmt.Errorf("%w: investment with ID %s already exists", apperrors.ErrDuplicate, m.InvestmentID)
			}
			if pgErr.Code == "23503" {
				return fmt.Errorf("%w: unknown investment type %s", apperrors.ErrValidation, m.AssetTypeID)
			}
		}
		return fmt.Errorf("failed to save investment %s: %w", m.InvestmentID, err)
	}
	return nil
}

// FindInvestmentByID retrieves an investment owned by the user.
func (r *PgxInvestmentRepository) FindInvestmentByID(ctx context.Context, userID string, investmentID string) (*domain.Investment, error) {
	query := `SELECT ` + investmentColumns + ` FROM investments WHERE investment_id = $1 AND user_id = $2;`

	m, err := scanInvestment(r.Pool.QueryRow(ctx, query, investmentID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find investment by ID %s: %w", investmentID, err)
	}

	inv := mapping.ToDomainInvestment(*m)
	return &inv, nil
}

// ListInvestments retrieves every investment owned by the user, ordered by asset name.
func (r *PgxInvestmentRepository) ListInvestments(ctx context.Context, userID string) ([]domain.Investment, error) {
	query := `SELECT ` + investmentColumns + ` FROM investments WHERE user_id = $1 ORDER BY asset_name;`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query investments for user %s: %w", userID, err)
	}
	defer rows.Close()

	investments := []domain.Investment{}
	for rows.Next() {
		m, err := scanInvestment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan investment row: %w", err)
		}
		investments = append(investments, mapping.ToDomainInvestment(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating investment rows: %w", rows.Err())
	}
	return investments, nil
}

// UpdateInvestment updates an existing investment's details, including the
// recomputed total invested.
func (r *PgxInvestmentRepository) UpdateInvestment(ctx context.Context, investment domain.Investment) error {
	m := mapping.ToModelInvestment(investment)

	query := `
		UPDATE investments
		SET asset_name = $3, asset_type_id = $4, quantity = $5, average_price = $6, total_invested = $7, last_updated_at = $8, last_updated_by = $9
		WHERE investment_id = $1 AND user_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.InvestmentID,
		m.UserID,
		m.AssetName,
		m.AssetTypeID,
		m.Quantity,
		m.AveragePrice,
		m.TotalInvested,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update investment %s: %w", m.InvestmentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteInvestment removes an investment owned by the user.
func (r *PgxInvestmentRepository) DeleteInvestment(ctx context.Context, userID string, investmentID string) error {
	query := `DELETE FROM investments WHERE investment_id = $1 AND user_id = $2;`

	cmdTag, err := r.Pool.Exec(ctx, query, investmentID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete investment %s: %w", investmentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
