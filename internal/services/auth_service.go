package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/genx-realty/console/api/internal/logger"
	"github.com/genx-realty/console/api/internal/models"
	"github.com/genx-realty/console/api/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for an unknown email or a wrong
// password; callers cannot distinguish the two.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService defines session issuance and verification.
type AuthService interface {
	// SignIn verifies credentials and issues a new bearer session.
	SignIn(ctx context.Context, email, password string) (*models.Session, *models.Profile, error)

	// SignOut revokes a session. Unknown tokens are ignored.
	SignOut(ctx context.Context, token string) error

	// CurrentSession resolves a token to its session and profile.
	// Returns nil, nil, nil when the token is unknown or expired.
	CurrentSession(ctx context.Context, token string) (*models.Session, *models.Profile, error)

	// ValidateToken resolves a token to an active session, deleting
	// expired sessions on sight. Implements the session gate's validator.
	ValidateToken(ctx context.Context, token string) (*models.Session, error)
}

// authService is the concrete implementation of AuthService.
type authService struct {
	sessions   repository.SessionRepository
	profiles   repository.ProfileRepository
	sessionTTL time.Duration
	log        *logger.Logger
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(sessions repository.SessionRepository, profiles repository.ProfileRepository, sessionTTL time.Duration, log *logger.Logger) AuthService {
	return &authService{
		sessions:   sessions,
		profiles:   profiles,
		sessionTTL: sessionTTL,
		log:        log,
	}
}

func (s *authService) SignIn(ctx context.Context, email, password string) (*models.Session, *models.Profile, error) {
	profile, err := s.profiles.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to look up profile for sign-in", err, nil)
		return nil, nil, fmt.Errorf("failed to verify credentials: %w", err)
	}
	if profile == nil {
		s.log.Warn("Sign-in attempt for unknown email", nil)
		return nil, nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
		s.log.Warn("Sign-in attempt with wrong password", map[string]interface{}{
			"user_id": profile.UserID,
		})
		return nil, nil, ErrInvalidCredentials
	}

	session := &models.Session{
		Token:     uuid.New().String(),
		UserID:    profile.UserID,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		s.log.Error("Failed to create session", err, map[string]interface{}{
			"user_id": profile.UserID,
		})
		return nil, nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.log.Info("User signed in", map[string]interface{}{
		"user_id": profile.UserID,
	})

	return session, profile, nil
}

func (s *authService) SignOut(ctx context.Context, token string) error {
	if err := s.sessions.Delete(ctx, token); err != nil {
		s.log.Error("Failed to revoke session", err, nil)
		return fmt.Errorf("failed to sign out: %w", err)
	}
	return nil
}

func (s *authService) CurrentSession(ctx context.Context, token string) (*models.Session, *models.Profile, error) {
	session, err := s.ValidateToken(ctx, token)
	if err != nil {
		return nil, nil, err
	}
	if session == nil {
		return nil, nil, nil
	}

	profile, err := s.profiles.FindByUserID(ctx, session.UserID)
	if err != nil {
		s.log.Error("Failed to load profile for session", err, map[string]interface{}{
			"user_id": session.UserID,
		})
		return nil, nil, fmt.Errorf("failed to load profile: %w", err)
	}

	return session, profile, nil
}

func (s *authService) ValidateToken(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, nil
	}

	session, err := s.sessions.FindByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}
	if session == nil {
		return nil, nil
	}

	if session.Expired(time.Now()) {
		// Expired sessions are removed as soon as they are seen.
		if err := s.sessions.Delete(ctx, token); err != nil {
			s.log.Error("Failed to delete expired session", err, map[string]interface{}{
				"user_id": session.UserID,
			})
		}
		return nil, nil
	}

	return session, nil
}
