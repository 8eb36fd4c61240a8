package handlers

import (
	"errors"
	"net/http"
	"strings"

	apierrors "github.com/genx-realty/console/api/internal/errors"
	"github.com/genx-realty/console/api/internal/models"
	"github.com/genx-realty/console/api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// AuthHandler handles sign-in, sign-out and session inspection.
type AuthHandler struct {
	service services.AuthService
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(service services.AuthService) *AuthHandler {
	return &AuthHandler{
		service: service,
	}
}

// SignInRequest represents the credentials posted at sign-in.
type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the profile DTO returned with a session.
type UserResponse struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	Email    string `json:"email,omitempty"`
	FullName string `json:"full_name,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// SessionResponse represents an issued or inspected session.
type SessionResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   string       `json:"expires_at"`
	User        UserResponse `json:"user"`
}

// SignIn handles POST /api/v1/auth/signin.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid request body", nil)
		return
	}

	session, profile, err := h.service.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			apierrors.Unauthorized(c, "Invalid email or password")
			return
		}
		apierrors.InternalServerError(c, "Failed to sign in", err)
		return
	}

	c.JSON(http.StatusOK, sessionResponse(session, profile))
}

// Session handles GET /api/v1/auth/session.
// It resolves the caller's bearer token; 401 when absent or expired.
func (h *AuthHandler) Session(c *gin.Context) {
	session, profile, err := h.service.CurrentSession(c.Request.Context(), headerToken(c))
	if err != nil {
		apierrors.InternalServerError(c, "Failed to verify session", err)
		return
	}
	if session == nil || profile == nil {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	c.JSON(http.StatusOK, sessionResponse(session, profile))
}

// SignOut handles POST /api/v1/auth/signout.
// Revoking an unknown token still succeeds; sign-out is idempotent.
func (h *AuthHandler) SignOut(c *gin.Context) {
	token := headerToken(c)
	if token != "" {
		if err := h.service.SignOut(c.Request.Context(), token); err != nil {
			apierrors.InternalServerError(c, "Failed to sign out", err)
			return
		}
	}

	c.Status(http.StatusNoContent)
}

// headerToken extracts the bearer token, or "" when absent.
func headerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// sessionResponse builds the session DTO from the model pair.
func sessionResponse(session *models.Session, profile *models.Profile) SessionResponse {
	resp := SessionResponse{
		AccessToken: session.Token,
		ExpiresAt:   session.ExpiresAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		User: UserResponse{
			ID:     profile.ID,
			UserID: profile.UserID,
		},
	}
	if profile.Email != nil {
		resp.User.Email = *profile.Email
	}
	if profile.FullName != nil {
		resp.User.FullName = *profile.FullName
	}
	if profile.Phone != nil {
		resp.User.Phone = *profile.Phone
	}
	return resp
}
