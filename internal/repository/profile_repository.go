package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/genx-realty/console/api/internal/database"
	"github.com/genx-realty/console/api/internal/models"
	"github.com/jackc/pgx/v5"
)

// ProfileRepository defines data access for user profiles.
type ProfileRepository interface {
	// FindByEmail returns the profile registered under an email address.
	// Returns nil, nil when no profile matches.
	FindByEmail(ctx context.Context, email string) (*models.Profile, error)

	// FindByUserID returns the profile of an authenticated user.
	// Returns nil, nil when no profile matches.
	FindByUserID(ctx context.Context, userID string) (*models.Profile, error)
}

// profileRepository is the concrete implementation of ProfileRepository.
type profileRepository struct {
	db *database.Database
}

// NewProfileRepository creates a new instance of ProfileRepository.
func NewProfileRepository(db *database.Database) ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

const profileColumns = `id, user_id, email, full_name, phone, password_hash, created_at, updated_at`

func scanProfile(row pgx.Row) (*models.Profile, error) {
	var profile models.Profile
	err := row.Scan(
		&profile.ID,
		&profile.UserID,
		&profile.Email,
		&profile.FullName,
		&profile.Phone,
		&profile.PasswordHash,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindByEmail(ctx context.Context, email string) (*models.Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE email = $1
	`

	profile, err := scanProfile(r.db.Pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query profile by email: %w", err)
	}

	return profile, nil
}

func (r *profileRepository) FindByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE user_id = $1
	`

	profile, err := scanProfile(r.db.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query profile %s: %w", userID, err)
	}

	return profile, nil
}
