package handler

import (
	"net/http"
	"testing"
	"time"

	"marquee/internal/delivery/http/middleware"
	"marquee/internal/domain/entity"
	domainerrors "marquee/internal/domain/errors"
	mockUsecase "marquee/internal/mocks/usecase"
	"marquee/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestFavoriteHandler(t *testing.T) (*FavoriteHandler, *mockUsecase.MockFavoriteUsecase) {
	uc := mockUsecase.NewMockFavoriteUsecase(t)

	return NewFavoriteHandler(uc, newDiscardLogger()), uc
}

func asAuthenticated(c echo.Context, userID int64) {
	c.Set(middleware.ContextKeyUserID, userID)
}

func TestFavoriteHandler_List(t *testing.T) {
	handler, uc := createTestFavoriteHandler(t)

	c, rec := newEchoContext(http.MethodGet, "/api/favorites", "")
	asAuthenticated(c, 7)

	poster := "/fc.jpg"
	uc.EXPECT().List(mock.Anything, int64(7)).Return([]*entity.Favorite{
		{UserID: 7, MovieID: 550, Title: "Fight Club", PosterPath: &poster, AddedAt: time.Now()},
		{UserID: 7, MovieID: 603, Title: "The Matrix", AddedAt: time.Now().Add(-time.Hour)},
	}, nil)

	require.NoError(t, handler.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	// The browser client renders this array directly; movie_id surfaces as id.
	assert.JSONEq(t, `[
		{"id":550,"title":"Fight Club","poster_path":"/fc.jpg"},
		{"id":603,"title":"The Matrix","poster_path":null}
	]`, rec.Body.String())
}

func TestFavoriteHandler_List_Empty(t *testing.T) {
	handler, uc := createTestFavoriteHandler(t)

	c, rec := newEchoContext(http.MethodGet, "/api/favorites", "")
	asAuthenticated(c, 7)

	uc.EXPECT().List(mock.Anything, int64(7)).Return([]*entity.Favorite{}, nil)

	require.NoError(t, handler.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestFavoriteHandler_List_Unauthenticated(t *testing.T) {
	handler, _ := createTestFavoriteHandler(t)

	c, _ := newEchoContext(http.MethodGet, "/api/favorites", "")

	err := handler.List(c)

	assert.ErrorIs(t, err, domainerrors.ErrAuthRequired)
}

func TestFavoriteHandler_Add(t *testing.T) {
	handler, uc := createTestFavoriteHandler(t)

	// The body is the provider movie document posted back unchanged; extra
	// fields are ignored by binding.
	c, rec := newEchoContext(http.MethodPost, "/api/favorites",
		`{"id":550,"title":"Fight Club","poster_path":"/fc.jpg","vote_average":8.4}`)
	asAuthenticated(c, 7)

	poster := "/fc.jpg"
	uc.EXPECT().
		Add(mock.Anything, &usecase.AddFavoriteInput{UserID: 7, MovieID: 550, Title: "Fight Club", PosterPath: &poster}).
		Return(nil)

	require.NoError(t, handler.Add(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"Favorite added successfully."}`, rec.Body.String())
}

func TestFavoriteHandler_Add_MissingTitle(t *testing.T) {
	handler, _ := createTestFavoriteHandler(t)

	// Validation stops the request before the usecase; no Add call recorded.
	c, _ := newEchoContext(http.MethodPost, "/api/favorites", `{"id":550}`)
	asAuthenticated(c, 7)

	err := handler.Add(c)

	assert.ErrorIs(t, err, domainerrors.ErrFavoriteInput)
}

func TestFavoriteHandler_Add_EmptyBody(t *testing.T) {
	handler, _ := createTestFavoriteHandler(t)

	c, _ := newEchoContext(http.MethodPost, "/api/favorites", "")
	asAuthenticated(c, 7)

	err := handler.Add(c)

	assert.ErrorIs(t, err, domainerrors.ErrFavoriteInput)
}

func TestFavoriteHandler_Remove(t *testing.T) {
	handler, uc := createTestFavoriteHandler(t)

	c, rec := newEchoContext(http.MethodDelete, "/api/favorites/550", "")
	c.SetParamNames("movieId")
	c.SetParamValues("550")
	asAuthenticated(c, 7)

	uc.EXPECT().Remove(mock.Anything, int64(7), int64(550)).Return(nil)

	require.NoError(t, handler.Remove(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Favorite removed successfully."}`, rec.Body.String())
}

func TestFavoriteHandler_Remove_BadMovieID(t *testing.T) {
	handler, _ := createTestFavoriteHandler(t)

	c, _ := newEchoContext(http.MethodDelete, "/api/favorites/abc", "")
	c.SetParamNames("movieId")
	c.SetParamValues("abc")
	asAuthenticated(c, 7)

	err := handler.Remove(c)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidMovieID)
}

func TestFavoriteHandler_Remove_NotFound(t *testing.T) {
	handler, uc := createTestFavoriteHandler(t)

	c, _ := newEchoContext(http.MethodDelete, "/api/favorites/550", "")
	c.SetParamNames("movieId")
	c.SetParamValues("550")
	asAuthenticated(c, 7)

	uc.EXPECT().
		Remove(mock.Anything, int64(7), int64(550)).
		Return(domainerrors.ErrFavoriteNotFound.WrapMessage("favorite not found for user"))

	err := handler.Remove(c)

	assert.ErrorIs(t, err, domainerrors.ErrFavoriteNotFound)
}
