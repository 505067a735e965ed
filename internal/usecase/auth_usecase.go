// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"marquee/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's public information.
type RegisterOutput struct {
	User *entity.PublicUser
}

// LoginOutput returns the established session after a successful login.
// Token is the raw opaque credential destined for the HTTP-only cookie; it
// exists only here and in the cookie, never in storage or logs.
type LoginOutput struct {
	User      *entity.PublicUser
	Token     string
	ExpiresAt time.Time
}

// StatusOutput reports whether a session token currently authenticates a user.
type StatusOutput struct {
	IsLoggedIn bool
	User       *entity.PublicUser
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a new account. Duplicate username or email yields a
	// conflict error; the plaintext password and its hash never leave this
	// layer.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies credentials and establishes a session. Unknown
	// usernames and wrong passwords fail identically so callers cannot
	// probe which usernames exist.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Logout destroys the session server-side. Idempotent: logging out an
	// absent or already-destroyed session succeeds.
	Logout(ctx context.Context, token string) error

	// Status resolves a token to its user. It never fails toward the
	// client; unknown, expired, and missing tokens all report logged out.
	Status(ctx context.Context, token string) (*StatusOutput, error)

	// CleanupExpiredSessions sweeps expired session rows and reports the
	// number removed. Expiry remains lazily enforced regardless.
	CleanupExpiredSessions(ctx context.Context) (int64, error)
}
