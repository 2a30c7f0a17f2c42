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

type PgxInvestmentTypeRepository struct {
	BaseRepository
}

// newPgxInvestmentTypeRepository creates a new repository for the investment
// type reference data.
func newPgxInvestmentTypeRepository(pool *pgxpool.Pool) *PgxInvestmentTypeRepository {
	return &PgxInvestmentTypeRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.InvestmentTypeRepositoryFacade = (*PgxInvestmentTypeRepository)(nil)

// SaveInvestmentType inserts a new investment type.
func (r *PgxInvestmentTypeRepository) SaveInvestmentType(ctx context.Context, investmentType domain.InvestmentType) error {
	query := `INSERT INTO investment_types (type_id, name) VALUES ($1, $2);`

	_, err := r.Pool.Exec(ctx, query, investmentType.TypeID, investmentType.Name)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: investment type %q already exists", apperrors.ErrDuplicate, investmentType.Name)
		}
		return fmt.Errorf("failed to save investment type %s: %w", investmentType.TypeID, err)
	}
	return nil
}

// FindInvestmentTypeByID retrieves a specific investment type.
func (r *PgxInvestmentTypeRepository) FindInvestmentTypeByID(ctx context.Context, typeID string) (*domain.InvestmentType, error) {
	query := `SELECT type_id, name FROM investment_types WHERE type_id = $1;`

	var m models.InvestmentType
	err := r.Pool.QueryRow(ctx, query, typeID).Scan(&m.TypeID, &m.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find investment type by ID %s: %w", typeID, err)
	}

	t := mapping.ToDomainInvestmentType(m)
	return &t, nil
}

// ListInvestmentTypes retrieves all investment types, ordered by name.
func (r *PgxInvestmentTypeRepository) ListInvestmentTypes(ctx context.Context) ([]domain.InvestmentType, error) {
	query := `SELECT type_id, name FROM investment_types ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query investment types: %w", err)
	}
	defer rows.Close()

	types := []domain.InvestmentType{}
	for rows.Next() {
		var m models.InvestmentType
		if err := rows.Scan(&m.TypeID, &m.Name); err != nil {
			return nil, fmt.Errorf("failed to scan investment type row: %w", err)
		}
		types = append(types, mapping.ToDomainInvestmentType(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating investment type rows: %w", rows.Err())
	}
	return types, nil
}
