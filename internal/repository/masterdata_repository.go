package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/genx-realty/console/api/internal/database"
	"github.com/genx-realty/console/api/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicateValue is returned when an append collides with an existing
// (category, value) pair. The unique index enforces vocabulary uniqueness.
var ErrDuplicateValue = errors.New("value already exists in category")

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

// MasterDataRepository defines data access for controlled vocabulary entries.
type MasterDataRepository interface {
	// ListByCategory returns the entries of one category ordered by
	// display_order ascending, ties broken by insertion time. When
	// activeOnly is set, deactivated entries are excluded.
	ListByCategory(ctx context.Context, category string, activeOnly bool) ([]models.MasterDataItem, error)

	// ListActive returns every active entry across all categories, in the
	// same ordering. Used to populate the property form's choice fields in
	// a single fetch.
	ListActive(ctx context.Context) ([]models.MasterDataItem, error)

	// Append inserts a new entry at the end of its category. The display
	// order is computed inside the INSERT so concurrent appends cannot
	// both claim the same slot. Returns ErrDuplicateValue when the
	// (category, value) pair already exists.
	Append(ctx context.Context, category, value string) (*models.MasterDataItem, error)

	// Delete removes exactly the entry with the given identity.
	// Returns false, nil when no such entry exists.
	Delete(ctx context.Context, id string) (bool, error)
}

// masterDataRepository is the concrete implementation of MasterDataRepository.
type masterDataRepository struct {
	db *database.Database
}

// NewMasterDataRepository creates a new instance of MasterDataRepository.
func NewMasterDataRepository(db *database.Database) MasterDataRepository {
	return &masterDataRepository{
		db: db,
	}
}

const masterDataColumns = `id, category, value, display_order, is_active, created_at, updated_at`

func (r *masterDataRepository) ListByCategory(ctx context.Context, category string, activeOnly bool) ([]models.MasterDataItem, error) {
	query := `
		SELECT ` + masterDataColumns + `
		FROM master_data
		WHERE category = $1
	`
	if activeOnly {
		query += ` AND is_active = true`
	}
	query += `
		ORDER BY display_order ASC, created_at ASC
	`

	rows, err := r.db.Pool.Query(ctx, query, category)
	if err != nil {
		return nil, fmt.Errorf("failed to query master data for category %q: %w", category, err)
	}
	defer rows.Close()

	items := []models.MasterDataItem{}
	for rows.Next() {
		var item models.MasterDataItem
		if err := rows.Scan(
			&item.ID,
			&item.Category,
			&item.Value,
			&item.DisplayOrder,
			&item.IsActive,
			&item.CreatedAt,
			&item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan master data row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating master data rows: %w", err)
	}

	return items, nil
}

func (r *masterDataRepository) ListActive(ctx context.Context) ([]models.MasterDataItem, error) {
	query := `
		SELECT ` + masterDataColumns + `
		FROM master_data
		WHERE is_active = true
		ORDER BY category ASC, display_order ASC, created_at ASC
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query active master data: %w", err)
	}
	defer rows.Close()

	items := []models.MasterDataItem{}
	for rows.Next() {
		var item models.MasterDataItem
		if err := rows.Scan(
			&item.ID,
			&item.Category,
			&item.Value,
			&item.DisplayOrder,
			&item.IsActive,
			&item.CreatedAt,
			&item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan master data row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating master data rows: %w", err)
	}

	return items, nil
}

// Append computes the next display_order inside the statement itself.
// Two concurrent appends to the same category serialize on the insert
// rather than racing on a client-side max.
func (r *masterDataRepository) Append(ctx context.Context, category, value string) (*models.MasterDataItem, error) {
	query := `
		INSERT INTO master_data (category, value, display_order, is_active)
		VALUES (
			$1,
			$2,
			(SELECT COALESCE(MAX(display_order), 0) + 1 FROM master_data WHERE category = $1),
			true
		)
		RETURNING ` + masterDataColumns + `
	`

	var item models.MasterDataItem
	err := r.db.Pool.QueryRow(ctx, query, category, value).Scan(
		&item.ID,
		&item.Category,
		&item.Value,
		&item.DisplayOrder,
		&item.IsActive,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrDuplicateValue
		}
		return nil, fmt.Errorf("failed to append master data value %q to category %q: %w", value, category, err)
	}

	return &item, nil
}

func (r *masterDataRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM master_data WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete master data entry %s: %w", id, err)
	}

	return tag.RowsAffected() > 0, nil
}
