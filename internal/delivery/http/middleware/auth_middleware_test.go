package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"marquee/config"
	"marquee/internal/domain/entity"
	domainerrors "marquee/internal/domain/errors"
	mockUsecase "marquee/internal/mocks/usecase"
	"marquee/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAuthMiddleware(t *testing.T) (*AuthMiddleware, *mockUsecase.MockAuthUsecase) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	cfg := &config.Config{Auth: &config.AuthConfig{CookieName: "marquee_session"}}

	return NewAuthMiddleware(uc, cfg), uc
}

func newRequestContext(withCookie bool) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/favorites", nil)
	if withCookie {
		req.AddCookie(&http.Cookie{Name: "marquee_session", Value: "raw-opaque-token"})
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate_LiveSession(t *testing.T) {
	m, uc := createTestAuthMiddleware(t)

	c, _ := newRequestContext(true)

	uc.EXPECT().
		Status(mock.Anything, "raw-opaque-token").
		Return(&usecase.StatusOutput{IsLoggedIn: true, User: &entity.PublicUser{ID: 42, Username: "alice"}}, nil)

	nextCalled := false
	err := m.Authenticate(func(c echo.Context) error {
		nextCalled = true

		userID, ok := UserID(c)
		assert.True(t, ok)
		assert.Equal(t, int64(42), userID)

		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, nextCalled)
}

func TestAuthMiddleware_Authenticate_NoSession(t *testing.T) {
	m, uc := createTestAuthMiddleware(t)

	c, _ := newRequestContext(false)

	uc.EXPECT().
		Status(mock.Anything, "").
		Return(&usecase.StatusOutput{IsLoggedIn: false}, nil)

	err := m.Authenticate(func(echo.Context) error {
		t.Fatal("next handler must not run")

		return nil
	})(c)

	assert.ErrorIs(t, err, domainerrors.ErrAuthRequired)
}

func TestAuthMiddleware_Authenticate_StaleCookie(t *testing.T) {
	m, uc := createTestAuthMiddleware(t)

	c, _ := newRequestContext(true)

	// An expired or unknown token degrades to logged-out, never to an error.
	uc.EXPECT().
		Status(mock.Anything, "raw-opaque-token").
		Return(&usecase.StatusOutput{IsLoggedIn: false}, nil)

	err := m.Authenticate(func(echo.Context) error { return nil })(c)

	assert.ErrorIs(t, err, domainerrors.ErrAuthRequired)
}

func TestAuthMiddleware_AuthenticatePage_RedirectsToLogin(t *testing.T) {
	m, uc := createTestAuthMiddleware(t)

	c, rec := newRequestContext(false)

	uc.EXPECT().
		Status(mock.Anything, "").
		Return(&usecase.StatusOutput{IsLoggedIn: false}, nil)

	err := m.AuthenticatePage(func(echo.Context) error {
		t.Fatal("next handler must not run")

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login.html?message=Please+log+in+to+continue", rec.Header().Get(echo.HeaderLocation))
}

func TestAuthMiddleware_AuthenticatePage_LiveSession(t *testing.T) {
	m, uc := createTestAuthMiddleware(t)

	c, rec := newRequestContext(true)

	uc.EXPECT().
		Status(mock.Anything, "raw-opaque-token").
		Return(&usecase.StatusOutput{IsLoggedIn: true, User: &entity.PublicUser{ID: 42, Username: "alice"}}, nil)

	err := m.AuthenticatePage(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserID_UnguardedRoute(t *testing.T) {
	c, _ := newRequestContext(false)

	_, ok := UserID(c)

	assert.False(t, ok)
}
