// Package response holds the wire shapes the browser client expects.
package response

import (
	"github.com/labstack/echo/v4"
)

// MessageBody is the uniform body for acknowledgements and errors.
type MessageBody struct {
	Message string `json:"message"`
}

// PublicUserBody is the user object returned by the register endpoint. The
// snake_case user_id key is part of the established wire format.
type PublicUserBody struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

// SessionUserBody is the user object returned by login and status. These
// endpoints use camelCase userId, unlike register.
type SessionUserBody struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
}

// RegisterBody is the 201 body for a successful registration.
type RegisterBody struct {
	Message string          `json:"message"`
	User    *PublicUserBody `json:"user"`
}

// LoginBody is the 200 body for a successful login.
type LoginBody struct {
	Message string           `json:"message"`
	User    *SessionUserBody `json:"user"`
}

// StatusBody reports the session state. User is omitted when logged out.
type StatusBody struct {
	IsLoggedIn bool             `json:"isLoggedIn"`
	User       *SessionUserBody `json:"user,omitempty"`
}

// FavoriteBody is one element of the favorites listing. The id key carries
// the provider's movie id so the browser can post the item back unchanged.
type FavoriteBody struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	PosterPath *string `json:"poster_path"`
}

// Message writes a bare `{message}` body with the given status.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageBody{Message: message})
}
