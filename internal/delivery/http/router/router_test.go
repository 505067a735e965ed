package router

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"marquee/config"
	"marquee/internal/delivery/http/middleware"
	"marquee/internal/delivery/http/router/handler"
	"marquee/internal/delivery/http/validator"
	"marquee/internal/domain/entity"
	domainerrors "marquee/internal/domain/errors"
	"marquee/internal/domain/repository"
	"marquee/internal/infra/auth"
	mockService "marquee/internal/mocks/service"
	"marquee/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory stand-in for the database, preserving the
// repository error semantics the real Postgres layer produces. The services,
// handlers, middleware, and routing under test are all real.
type memStore struct {
	nextUserID int64
	users      map[int64]*entity.User
	sessions   map[string]*entity.Session
	favorites  map[int64][]*entity.Favorite
}

func newMemStore() *memStore {
	return &memStore{
		users:     make(map[int64]*entity.User),
		sessions:  make(map[string]*entity.Session),
		favorites: make(map[int64][]*entity.Favorite),
	}
}

type memUserRepo struct{ store *memStore }

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, existing := range r.store.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("username or email already taken")
		}
	}

	r.store.nextUserID++
	user.ID = r.store.nextUserID
	user.CreatedAt = time.Now()
	r.store.users[user.ID] = user

	return nil
}

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, user := range r.store.users {
		if user.Username == username {
			return user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memUserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	user, ok := r.store.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return user, nil
}

type memSessionRepo struct{ store *memStore }

func (r *memSessionRepo) Create(_ context.Context, session *entity.Session) error {
	session.CreatedAt = time.Now()
	r.store.sessions[session.TokenHash] = session

	return nil
}

func (r *memSessionRepo) FindByTokenHash(_ context.Context, tokenHash string) (*entity.Session, error) {
	session, ok := r.store.sessions[tokenHash]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}
	if session.Expired(time.Now()) {
		return nil, repository.ErrSessionExpired
	}

	return session, nil
}

func (r *memSessionRepo) DeleteByTokenHash(_ context.Context, tokenHash string) error {
	if _, ok := r.store.sessions[tokenHash]; !ok {
		return repository.ErrSessionNotFound
	}
	delete(r.store.sessions, tokenHash)

	return nil
}

func (r *memSessionRepo) DeleteExpired(_ context.Context) (int64, error) {
	var removed int64
	now := time.Now()
	for hash, session := range r.store.sessions {
		if session.Expired(now) {
			delete(r.store.sessions, hash)
			removed++
		}
	}

	return removed, nil
}

type memFavoriteRepo struct{ store *memStore }

func (r *memFavoriteRepo) ListByUser(_ context.Context, userID int64) ([]*entity.Favorite, error) {
	return append([]*entity.Favorite{}, r.store.favorites[userID]...), nil
}

func (r *memFavoriteRepo) Create(_ context.Context, favorite *entity.Favorite) error {
	for _, existing := range r.store.favorites[favorite.UserID] {
		if existing.MovieID == favorite.MovieID {
			return domainerrors.ErrFavoriteAlreadyExists.WrapMessage("movie already favorited")
		}
	}

	favorite.AddedAt = time.Now()
	// Newest first, matching the added_at DESC listing order.
	r.store.favorites[favorite.UserID] = append([]*entity.Favorite{favorite}, r.store.favorites[favorite.UserID]...)

	return nil
}

func (r *memFavoriteRepo) Delete(_ context.Context, userID, movieID int64) error {
	rows := r.store.favorites[userID]
	for i, favorite := range rows {
		if favorite.MovieID == movieID {
			r.store.favorites[userID] = append(rows[:i], rows[i+1:]...)

			return nil
		}
	}

	return repository.ErrFavoriteNotFound
}

type memFactory struct{ store *memStore }

func (f *memFactory) UserRepo() repository.UserRepository         { return &memUserRepo{store: f.store} }
func (f *memFactory) SessionRepo() repository.SessionRepository   { return &memSessionRepo{store: f.store} }
func (f *memFactory) FavoriteRepo() repository.FavoriteRepository { return &memFavoriteRepo{store: f.store} }

type memTxManager struct{ store *memStore }

func (m *memTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(&memFactory{store: m.store})
}

// newCatalogServer assembles the full HTTP stack over the in-memory store:
// real services, handlers, middleware, validator, error handler, and routes.
func newCatalogServer(t *testing.T) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Auth: &config.AuthConfig{
		BcryptCost: 4,
		SessionTTL: 24 * time.Hour,
		CookieName: "marquee_session",
	}}

	txManager := &memTxManager{store: newMemStore()}

	authUC := impl.NewAuthService(impl.AuthServiceParams{
		TxManager: txManager,
		Hasher:    auth.NewBcryptHasher(cfg),
		Tokens:    auth.NewTokenGenerator(),
		Config:    cfg,
		Logger:    logger,
	})
	favoriteUC := impl.NewFavoriteService(impl.FavoriteServiceParams{
		TxManager: txManager,
		Logger:    logger,
	})
	movieUC := impl.NewMovieService(impl.MovieServiceParams{
		Catalog: mockService.NewMockMovieCatalog(t),
		Logger:  logger,
	})

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		Config:          cfg,
		AuthHandler:     handler.NewAuthHandler(authUC, cfg, logger),
		FavoriteHandler: handler.NewFavoriteHandler(favoriteUC, logger),
		MovieHandler:    handler.NewMovieHandler(movieUC, logger),
		AuthMiddleware:  middleware.NewAuthMiddleware(authUC, cfg),
	}).RegisterRoutes(e)

	return e
}

func doRequest(e *echo.Echo, method, target, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	return rec
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "marquee_session" {
			return cookie
		}
	}

	return nil
}

func TestRouter_FullSessionLifecycle(t *testing.T) {
	e := newCatalogServer(t)

	// Register.
	rec := doRequest(e, http.MethodPost, "/api/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"hunter22"}`, nil)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t,
		`{"message":"Registration successful! You can now log in.","user":{"user_id":1,"username":"alice"}}`,
		rec.Body.String())

	// A second registration with the same username conflicts.
	rec = doRequest(e, http.MethodPost, "/api/auth/register",
		`{"username":"alice","email":"other@example.com","password":"hunter22"}`, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"message":"Username or email already exists."}`, rec.Body.String())

	// Missing fields never reach the store.
	rec = doRequest(e, http.MethodPost, "/api/auth/register",
		`{"username":"bob","password":"hunter22"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Username, email, and password required."}`, rec.Body.String())

	// Wrong password is indistinguishable from an unknown user.
	rec = doRequest(e, http.MethodPost, "/api/auth/login",
		`{"username":"alice","password":"wrong"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid username or password."}`, rec.Body.String())
	wrongUserBody := rec.Body.String()

	rec = doRequest(e, http.MethodPost, "/api/auth/login",
		`{"username":"nobody","password":"hunter22"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, wrongUserBody, rec.Body.String())

	// Login plants the session cookie.
	rec = doRequest(e, http.MethodPost, "/api/auth/login",
		`{"username":"alice","password":"hunter22"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"message":"Login successful!","user":{"userId":1,"username":"alice"}}`,
		rec.Body.String())

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	require.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)

	// Favorites are closed to anonymous callers.
	rec = doRequest(e, http.MethodGet, "/api/favorites", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Authentication required. Please log in."}`, rec.Body.String())

	// Add, duplicate add, list.
	rec = doRequest(e, http.MethodPost, "/api/favorites",
		`{"id":550,"title":"Fight Club","poster_path":"/fc.jpg"}`, cookie)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"Favorite added successfully."}`, rec.Body.String())

	rec = doRequest(e, http.MethodPost, "/api/favorites",
		`{"id":550,"title":"Fight Club","poster_path":"/fc.jpg"}`, cookie)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"message":"Movie already in favorites."}`, rec.Body.String())

	rec = doRequest(e, http.MethodGet, "/api/favorites", "", cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":550,"title":"Fight Club","poster_path":"/fc.jpg"}]`, rec.Body.String())

	// Remove, list again, remove again.
	rec = doRequest(e, http.MethodDelete, "/api/favorites/550", "", cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Favorite removed successfully."}`, rec.Body.String())

	rec = doRequest(e, http.MethodGet, "/api/favorites", "", cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = doRequest(e, http.MethodDelete, "/api/favorites/550", "", cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Favorite not found or not owned by user."}`, rec.Body.String())

	// Status answers for the live session, then logout revokes it.
	rec = doRequest(e, http.MethodGet, "/api/auth/status", "", cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"isLoggedIn":true,"user":{"userId":1,"username":"alice"}}`, rec.Body.String())

	rec = doRequest(e, http.MethodPost, "/api/auth/logout", "", cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Logout successful."}`, rec.Body.String())

	cleared := sessionCookie(rec)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)

	// The old cookie no longer authenticates anything.
	rec = doRequest(e, http.MethodGet, "/api/auth/status", "", cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"isLoggedIn":false}`, rec.Body.String())

	rec = doRequest(e, http.MethodGet, "/api/favorites", "", cookie)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_FavoritesAreUserScoped(t *testing.T) {
	e := newCatalogServer(t)

	login := func(username string) *http.Cookie {
		rec := doRequest(e, http.MethodPost, "/api/auth/register",
			`{"username":"`+username+`","email":"`+username+`@example.com","password":"hunter22"}`, nil)
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = doRequest(e, http.MethodPost, "/api/auth/login",
			`{"username":"`+username+`","password":"hunter22"}`, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		cookie := sessionCookie(rec)
		require.NotNil(t, cookie)

		return cookie
	}

	alice := login("alice")
	bob := login("bob")

	rec := doRequest(e, http.MethodPost, "/api/favorites",
		`{"id":550,"title":"Fight Club"}`, alice)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Bob sees none of Alice's favorites.
	rec = doRequest(e, http.MethodGet, "/api/favorites", "", bob)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	// Bob deleting Alice's favorite reads exactly like deleting nothing.
	rec = doRequest(e, http.MethodDelete, "/api/favorites/550", "", bob)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Favorite not found or not owned by user."}`, rec.Body.String())

	// Alice's row is untouched.
	rec = doRequest(e, http.MethodGet, "/api/favorites", "", alice)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":550,"title":"Fight Club","poster_path":null}]`, rec.Body.String())
}

func TestRouter_FavoritesPageRedirect(t *testing.T) {
	e := newCatalogServer(t)

	rec := doRequest(e, http.MethodGet, "/favorites.html", "", nil)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login.html?message=Please+log+in+to+continue", rec.Header().Get(echo.HeaderLocation))
}
