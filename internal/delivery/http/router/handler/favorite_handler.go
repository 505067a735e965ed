package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"marquee/internal/delivery/http/middleware"
	"marquee/internal/delivery/http/response"
	domainerrors "marquee/internal/domain/errors"
	"marquee/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FavoriteHandler holds dependencies for the favorites endpoints. All routes
// here sit behind the authentication middleware.
type FavoriteHandler struct {
	uc     usecase.FavoriteUsecase
	logger *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler, injected by Fx.
func NewFavoriteHandler(uc usecase.FavoriteUsecase, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns the user's favorites, most recently added first, as the bare
// array the browser client renders directly.
func (h *FavoriteHandler) List(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrAuthRequired)
	}

	favorites, err := h.uc.List(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	body := make([]response.FavoriteBody, 0, len(favorites))
	for _, favorite := range favorites {
		body = append(body, response.FavoriteBody{
			ID:         favorite.MovieID,
			Title:      favorite.Title,
			PosterPath: favorite.PosterPath,
		})
	}

	return c.JSON(http.StatusOK, body)
}

// Add favorites a movie for the user. The body is a provider movie document
// posted back unchanged, so the id and poster_path keys bind directly.
func (h *FavoriteHandler) Add(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrAuthRequired)
	}

	var input *usecase.AddFavoriteInput
	if err := c.Bind(&input); err != nil || input == nil {
		return errors.WithStack(domainerrors.ErrFavoriteInput)
	}

	if err := c.Validate(input); err != nil {
		return errors.WithStack(domainerrors.ErrFavoriteInput)
	}
	input.UserID = userID

	if err := h.uc.Add(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusCreated, "Favorite added successfully.")
}

// Remove deletes the user's favorite for the movie named in the path.
func (h *FavoriteHandler) Remove(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrAuthRequired)
	}

	movieID, err := strconv.ParseInt(c.Param("movieId"), 10, 64)
	if err != nil {
		return errors.WithStack(domainerrors.ErrInvalidMovieID)
	}

	if err := h.uc.Remove(c.Request().Context(), userID, movieID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Favorite removed successfully.")
}
