package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/genx-realty/console/api/internal/database"
	"github.com/genx-realty/console/api/internal/models"
	"github.com/jackc/pgx/v5"
)

// SessionRepository defines data access for bearer-token sessions.
type SessionRepository interface {
	// Create persists a newly issued session.
	Create(ctx context.Context, session *models.Session) error

	// FindByToken returns the session for a token.
	// Returns nil, nil when the token is unknown.
	FindByToken(ctx context.Context, token string) (*models.Session, error)

	// Delete revokes a session by token. Deleting an unknown token is not
	// an error; sign-out is idempotent.
	Delete(ctx context.Context, token string) error
}

// sessionRepository is the concrete implementation of SessionRepository.
type sessionRepository struct {
	db *database.Database
}

// NewSessionRepository creates a new instance of SessionRepository.
func NewSessionRepository(db *database.Database) SessionRepository {
	return &sessionRepository{
		db: db,
	}
}

func (r *sessionRepository) Create(ctx context.Context, session *models.Session) error {
	query := `
		INSERT INTO sessions (token, user_id, expires_at)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`

	err := r.db.Pool.QueryRow(ctx, query, session.Token, session.UserID, session.ExpiresAt).
		Scan(&session.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create session for user %s: %w", session.UserID, err)
	}

	return nil
}

func (r *sessionRepository) FindByToken(ctx context.Context, token string) (*models.Session, error) {
	query := `
		SELECT token, user_id, expires_at, created_at
		FROM sessions
		WHERE token = $1
	`

	var session models.Session
	err := r.db.Pool.QueryRow(ctx, query, token).Scan(
		&session.Token,
		&session.UserID,
		&session.ExpiresAt,
		&session.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query session: %w", err)
	}

	return &session, nil
}

func (r *sessionRepository) Delete(ctx context.Context, token string) error {
	if _, err := r.db.Pool.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
