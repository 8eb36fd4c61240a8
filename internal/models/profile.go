package models

import (
	"time"
)

// Profile is an authenticated user of the console. PasswordHash is a bcrypt
// hash and is never serialized.
type Profile struct {
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Email        *string   `json:"email,omitempty"`
	FullName     *string   `json:"fullName,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	PasswordHash string    `json:"-"`
}

// Session is a bearer-token session issued at sign-in. Token is the opaque
// credential presented on every authenticated request.
type Session struct {
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
}

// Expired reports whether the session is past its expiry.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
