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

type PgxCategoryRepository struct {
	BaseRepository
}

// newPgxCategoryRepository creates a new repository for expense category data.
func newPgxCategoryRepository(pool *pgxpool.Pool) *PgxCategoryRepository {
	return &PgxCategoryRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

const categoryColumns = `category_id, user_id, name, color, is_user_created, created_at, created_by, last_updated_at, last_updated_by`

func scanCategory(row pgx.Row) (*models.ExpenseCategory, error) {
	var m models.ExpenseCategory
	err := row.Scan(
		&m.CategoryID,
		&m.UserID,
		&m.Name,
		&m.Color,
		&m.IsUserCreated,
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

// SaveCategory inserts a new category.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.ExpenseCategory) error {
	m := mapping.ToModelExpenseCategory(category)

	query := `
		INSERT INTO expense_categories (category_id, user_id, name, color, is_user_created, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CategoryID,
		m.UserID,
		m.Name,
		m.Color,
		m.IsUserCreated,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: category %q already exists", apperrors.ErrDuplicate, m.Name)
		}
		return fmt.Errorf("failed to save category %s: %w", m.CategoryID, err)
	}
	return nil
}

// SaveCategories inserts a batch of categories in one transaction.
// Used when seeding the default set for a new user.
func (r *PgxCategoryRepository) SaveCategories(ctx context.Context, categories []domain.ExpenseCategory) error {
	if len(categories) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	query := `
		INSERT INTO expense_categories (category_id, user_id, name, color, is_user_created, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	for _, category := range categories {
		m := mapping.ToModelExpenseCategory(category)
		if _, err := tx.Exec(ctx, query,
			m.CategoryID,
			m.UserID,
			m.Name,
			m.Color,
			m.IsUserCreated,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		); err != nil {
			return fmt.Errorf("failed to save category %s: %w", m.CategoryID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// FindCategoryByID retrieves a category owned by the user.
func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, userID string, categoryID string) (*domain.ExpenseCategory, error) {
	query := `SELECT ` + categoryColumns + ` FROM expense_categories WHERE category_id = $1 AND user_id = $2;`

	m, err := scanCategory(r.Pool.QueryRow(ctx, query, categoryID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category by ID %s: %w", categoryID, err)
	}

	cat := mapping.ToDomainExpenseCategory(*m)
	return &cat, nil
}

// ListCategories retrieves every category owned by the user, ordered by name.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context, userID string) ([]domain.ExpenseCategory, error) {
	query := `SELECT ` + categoryColumns + ` FROM expense_categories WHERE user_id = $1 ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories for user %s: %w", userID, err)
	}
	defer rows.Close()

	categories := []domain.ExpenseCategory{}
	for rows.Next() {
		m, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, mapping.ToDomainExpenseCategory(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", rows.Err())
	}
	return categories, nil
}

// UpdateCategory updates an existing category's details.
func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.ExpenseCategory) error {
	m := mapping.ToModelExpenseCategory(category)

	query := `
		UPDATE expense_categories
		SET name = $3, color = $4, last_updated_at = $5, last_updated_by = $6
		WHERE category_id = $1 AND user_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.CategoryID,
		m.UserID,
		m.Name,
		m.Color,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update category %s: %w", m.CategoryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteCategory removes a category. Transactions referencing it keep their
// category_id and become orphaned; the reports skip them.
func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, userID string, categoryID string) error {
	query := `DELETE FROM expense_categories WHERE category_id = $1 AND user_id = $2;`

	cmdTag, err := r.Pool.Exec(ctx, query, categoryID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete category %s: %w", categoryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
