package entity

import (
	"time"
)

// Session represents an authenticated browser session. The raw token is
// handed to the client in an HTTP-only cookie; only its SHA-256 hash is
// persisted, so a database leak never exposes usable credentials.
type Session struct {
	ID        int64     // The unique ID for this session record.
	UserID    int64     // Links the session to the User it authenticates.
	TokenHash string    // SHA-256 hex digest of the raw opaque token.
	ExpiresAt time.Time // The exact time this session stops being honored.
	CreatedAt time.Time // Timestamp of when the user logged in.
}

// Expired reports whether the session is past its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	return s.ExpiresAt.Before(now)
}
