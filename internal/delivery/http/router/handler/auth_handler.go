// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"marquee/config"
	"marquee/internal/delivery/http/response"
	domainerrors "marquee/internal/domain/errors"
	"marquee/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication-related handlers.
type AuthHandler struct {
	uc           usecase.AuthUsecase
	logger       *slog.Logger
	cookieName   string
	cookieSecure bool
	sessionTTL   time.Duration
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:           uc,
		logger:       logger,
		cookieName:   cfg.Auth.CookieNameOrDefault(),
		cookieSecure: cfg.Auth != nil && cfg.Auth.CookieSecure,
		sessionTTL:   cfg.Auth.SessionTTLOrDefault(),
	}
}

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil || input == nil {
		return errors.WithStack(domainerrors.ErrRegistrationInput)
	}

	// Validation failures share the endpoint's fixed 400 message.
	if err := c.Validate(input); err != nil {
		return errors.WithStack(domainerrors.ErrRegistrationInput)
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, response.RegisterBody{
		Message: "Registration successful! You can now log in.",
		User: &response.PublicUserBody{
			UserID:   output.User.ID,
			Username: output.User.Username,
		},
	})
}

// Login handles the login request. On success the opaque session token is
// planted in an HTTP-only cookie; it never appears in the response body.
func (h *AuthHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil || input == nil {
		return errors.WithStack(domainerrors.ErrLoginInput)
	}

	if err := c.Validate(input); err != nil {
		return errors.WithStack(domainerrors.ErrLoginInput)
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(h.sessionCookie(output.Token, h.sessionTTL))

	return c.JSON(http.StatusOK, response.LoginBody{
		Message: "Login successful!",
		User: &response.SessionUserBody{
			UserID:   output.User.ID,
			Username: output.User.Username,
		},
	})
}

// Logout destroys the session server-side and clears the cookie. Safe to call
// without a session.
func (h *AuthHandler) Logout(c echo.Context) error {
	token := h.sessionToken(c)

	if err := h.uc.Logout(c.Request().Context(), token); err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(h.sessionCookie("", -time.Hour))

	return response.Message(c, http.StatusOK, "Logout successful.")
}

// Status reports whether the request carries a live session. Always 200.
func (h *AuthHandler) Status(c echo.Context) error {
	status, err := h.uc.Status(c.Request().Context(), h.sessionToken(c))
	if err != nil {
		return errors.WithStack(err)
	}

	body := response.StatusBody{IsLoggedIn: status.IsLoggedIn}
	if status.IsLoggedIn {
		body.User = &response.SessionUserBody{
			UserID:   status.User.ID,
			Username: status.User.Username,
		}
	}

	return c.JSON(http.StatusOK, body)
}

func (h *AuthHandler) sessionToken(c echo.Context) string {
	cookie, err := c.Cookie(h.cookieName)
	if err != nil || cookie == nil {
		return ""
	}

	return cookie.Value
}

// sessionCookie builds the session cookie. A non-positive maxAge clears it.
func (h *AuthHandler) sessionCookie(token string, maxAge time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}
