// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"marquee/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// Create persists a new user. Uniqueness of username and email is
	// enforced by the store; a violation surfaces as a domain conflict error.
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername retrieves a single user by exact, case-sensitive
	// username match. Returns ErrUserNotFound when absent; the caller
	// decides whether that is an error condition.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)
}
