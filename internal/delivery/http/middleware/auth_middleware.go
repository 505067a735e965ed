package middleware

import (
	"net/http"
	"net/url"

	"marquee/config"
	domainerrors "marquee/internal/domain/errors"
	"marquee/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContextKeyUserID is where the authenticated user's id lands on echo.Context.
const ContextKeyUserID = "userID"

// loginRedirectTarget is where unauthenticated page requests are sent.
const loginRedirectTarget = "/login.html?message=" // + url-encoded reason

// AuthMiddleware resolves the session cookie to a user. API routes get a JSON
// 401 when that fails; page routes get redirected to the login page.
type AuthMiddleware struct {
	authUC     usecase.AuthUsecase
	cookieName string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		authUC:     authUC,
		cookieName: cfg.Auth.CookieNameOrDefault(),
	}
}

// SessionToken extracts the raw session token from the request cookie.
// Returns an empty string when the cookie is absent.
func (m *AuthMiddleware) SessionToken(c echo.Context) string {
	cookie, err := c.Cookie(m.cookieName)
	if err != nil || cookie == nil {
		return ""
	}

	return cookie.Value
}

// Authenticate guards API routes. A live session puts the user id on the
// context; anything else is rejected with the uniform 401 body.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		status, err := m.authUC.Status(c.Request().Context(), m.SessionToken(c))
		if err != nil {
			return errors.WithStack(err)
		}

		if !status.IsLoggedIn {
			return errors.WithStack(domainerrors.ErrAuthRequired)
		}

		c.Set(ContextKeyUserID, status.User.ID)

		return next(c)
	}
}

// AuthenticatePage guards browser page routes. Instead of a JSON error the
// visitor lands on the login page with a human-readable reason.
func (m *AuthMiddleware) AuthenticatePage(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		status, err := m.authUC.Status(c.Request().Context(), m.SessionToken(c))
		if err != nil {
			return errors.WithStack(err)
		}

		if !status.IsLoggedIn {
			target := loginRedirectTarget + url.QueryEscape("Please log in to continue")

			return c.Redirect(http.StatusFound, target)
		}

		c.Set(ContextKeyUserID, status.User.ID)

		return next(c)
	}
}

// UserID reads the authenticated user's id set by Authenticate. The boolean
// is false when the route was not guarded.
func UserID(c echo.Context) (int64, bool) {
	id, ok := c.Get(ContextKeyUserID).(int64)

	return id, ok
}
