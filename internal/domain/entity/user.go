// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is the core identity in the system, created once at registration and
// never mutated or deleted within the catalog's scope.
type User struct {
	ID           int64     // Database-generated identifier (bigserial).
	Username     string    // Unique login name, matched case-sensitively.
	Email        string    // Unique contact email.
	PasswordHash string    // bcrypt hash of the password. Never serialized or logged.
	CreatedAt    time.Time // Timestamp of when this account was created.
}

// PublicUser is the client-safe projection of a User. It is the only user
// shape that ever crosses the delivery boundary.
type PublicUser struct {
	ID       int64
	Username string
}

// Public strips the credential fields from a User.
func (u *User) Public() *PublicUser {
	return &PublicUser{ID: u.ID, Username: u.Username}
}
