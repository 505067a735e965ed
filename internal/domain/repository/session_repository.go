package repository

import (
	"context"
	"errors"

	"marquee/internal/domain/entity"
)

// Sentinel errors for session lookups. Expiry is checked lazily on read;
// expired rows stay in the store until the sweep or an explicit delete.
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

// SessionRepository defines the operations for durable session persistence.
type SessionRepository interface {
	// Create persists a new session with its expiry timestamp already set.
	Create(ctx context.Context, session *entity.Session) error

	// FindByTokenHash retrieves a session by the SHA-256 hash of its raw
	// token. Returns ErrSessionNotFound for unknown hashes and
	// ErrSessionExpired for rows past their expiry.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error)

	// DeleteByTokenHash removes the session record, ending the session.
	// Returns ErrSessionNotFound when no row matched.
	DeleteByTokenHash(ctx context.Context, tokenHash string) error

	// DeleteExpired removes all sessions past their expiry and reports how
	// many rows were swept.
	DeleteExpired(ctx context.Context) (int64, error)
}
