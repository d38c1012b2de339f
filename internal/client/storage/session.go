package storage

import (
	"context"
	"errors"
	"time"
)

// ErrSessionNotFound indicates that no stored session exists
var ErrSessionNotFound = errors.New("session not found")

// Session represents a logged-in session on the client.
// The access token is stored as issued by the server; the server does not
// support revocation, so logout is purely local.
type Session struct {
	Email       string `json:"email"`
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"` // unix seconds
}

// Expired reports whether the session's token is past its expiry
func (s *Session) Expired() bool {
	return time.Now().Unix() >= s.ExpiresAt
}

// SessionStorage defines interface for persisting the client session
type SessionStorage interface {
	// SaveSession stores the current session, replacing any previous one
	SaveSession(ctx context.Context, session *Session) error

	// GetSession retrieves the stored session
	// Returns ErrSessionNotFound if no session exists
	GetSession(ctx context.Context) (*Session, error)

	// DeleteSession removes the stored session (logout)
	DeleteSession(ctx context.Context) error
}
