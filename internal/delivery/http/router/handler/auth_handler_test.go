package handler

import (
	"net/http"
	"testing"
	"time"

	"marquee/config"
	"marquee/internal/domain/entity"
	domainerrors "marquee/internal/domain/errors"
	mockUsecase "marquee/internal/mocks/usecase"
	"marquee/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAuthHandler(t *testing.T) (*AuthHandler, *mockUsecase.MockAuthUsecase) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	cfg := &config.Config{Auth: &config.AuthConfig{
		CookieName: "marquee_session",
		SessionTTL: 7 * 24 * time.Hour,
	}}

	return NewAuthHandler(uc, cfg, newDiscardLogger()), uc
}

func TestAuthHandler_Register_Success(t *testing.T) {
	handler, uc := createTestAuthHandler(t)

	c, rec := newEchoContext(http.MethodPost, "/api/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"hunter22"}`)

	uc.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{Username: "alice", Email: "alice@example.com", Password: "hunter22"}).
		Return(&usecase.RegisterOutput{User: &entity.PublicUser{ID: 42, Username: "alice"}}, nil)

	require.NoError(t, handler.Register(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t,
		`{"message":"Registration successful! You can now log in.","user":{"user_id":42,"username":"alice"}}`,
		rec.Body.String())
}

func TestAuthHandler_Register_DuplicateUser(t *testing.T) {
	handler, uc := createTestAuthHandler(t)

	c, _ := newEchoContext(http.MethodPost, "/api/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"hunter22"}`)

	uc.EXPECT().
		Register(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrUserAlreadyExists.WrapMessage("duplicate username"))

	err := handler.Register(c)

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	handler, _ := createTestAuthHandler(t)

	// Validation rejects the request before the usecase is reached; the mock
	// records no Register call.
	c, _ := newEchoContext(http.MethodPost, "/api/auth/register",
		`{"username":"alice","password":"hunter22"}`)

	err := handler.Register(c)

	assert.ErrorIs(t, err, domainerrors.ErrRegistrationInput)
}

func TestAuthHandler_Login_MissingPassword(t *testing.T) {
	handler, _ := createTestAuthHandler(t)

	c, _ := newEchoContext(http.MethodPost, "/api/auth/login", `{"username":"alice"}`)

	err := handler.Login(c)

	assert.ErrorIs(t, err, domainerrors.ErrLoginInput)
}

func TestAuthHandler_Register_MalformedBody(t *testing.T) {
	handler, _ := createTestAuthHandler(t)

	c, _ := newEchoContext(http.MethodPost, "/api/auth/register", `{"username":`)

	err := handler.Register(c)

	assert.ErrorIs(t, err, domainerrors.ErrRegistrationInput)
}

func TestAuthHandler_Login_SetsSessionCookie(t *testing.T) {
	handler, uc := createTestAuthHandler(t)

	c, rec := newEchoContext(http.MethodPost, "/api/auth/login",
		`{"username":"alice","password":"hunter22"}`)

	uc.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Username: "alice", Password: "hunter22"}).
		Return(&usecase.LoginOutput{
			User:      &entity.PublicUser{ID: 42, Username: "alice"},
			Token:     "raw-opaque-token",
			ExpiresAt: time.Now().Add(7 * 24 * time.Hour),
		}, nil)

	require.NoError(t, handler.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	// Session user keys are camelCase, unlike the registration response.
	assert.JSONEq(t,
		`{"message":"Login successful!","user":{"userId":42,"username":"alice"}}`,
		rec.Body.String())

	cookie := findCookie(rec, "marquee_session")
	require.NotNil(t, cookie)
	assert.Equal(t, "raw-opaque-token", cookie.Value)
	assert.Equal(t, int((7 * 24 * time.Hour).Seconds()), cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	handler, uc := createTestAuthHandler(t)

	c, rec := newEchoContext(http.MethodPost, "/api/auth/login",
		`{"username":"alice","password":"wrong"}`)

	uc.EXPECT().
		Login(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch"))

	err := handler.Login(c)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, findCookie(rec, "marquee_session"))
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	handler, uc := createTestAuthHandler(t)

	c, rec := newEchoContext(http.MethodPost, "/api/auth/logout", "")
	c.Request().AddCookie(&http.Cookie{Name: "marquee_session", Value: "raw-opaque-token"})

	uc.EXPECT().Logout(mock.Anything, "raw-opaque-token").Return(nil)

	require.NoError(t, handler.Logout(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Logout successful."}`, rec.Body.String())

	cookie := findCookie(rec, "marquee_session")
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestAuthHandler_Logout_WithoutCookie(t *testing.T) {
	handler, uc := createTestAuthHandler(t)

	c, rec := newEchoContext(http.MethodPost, "/api/auth/logout", "")

	uc.EXPECT().Logout(mock.Anything, "").Return(nil)

	require.NoError(t, handler.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_Status_LoggedIn(t *testing.T) {
	handler, uc := createTestAuthHandler(t)

	c, rec := newEchoContext(http.MethodGet, "/api/auth/status", "")
	c.Request().AddCookie(&http.Cookie{Name: "marquee_session", Value: "raw-opaque-token"})

	uc.EXPECT().
		Status(mock.Anything, "raw-opaque-token").
		Return(&usecase.StatusOutput{IsLoggedIn: true, User: &entity.PublicUser{ID: 42, Username: "alice"}}, nil)

	require.NoError(t, handler.Status(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"isLoggedIn":true,"user":{"userId":42,"username":"alice"}}`,
		rec.Body.String())
}

func TestAuthHandler_Status_LoggedOut(t *testing.T) {
	handler, uc := createTestAuthHandler(t)

	c, rec := newEchoContext(http.MethodGet, "/api/auth/status", "")

	uc.EXPECT().
		Status(mock.Anything, "").
		Return(&usecase.StatusOutput{IsLoggedIn: false}, nil)

	require.NoError(t, handler.Status(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"isLoggedIn":false}`, rec.Body.String())
}
