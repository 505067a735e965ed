package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	domainerrors "marquee/internal/domain/errors"
	"marquee/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MovieHandler relays movie metadata from the external provider. All routes
// are unprotected; the provider's API key never reaches the browser.
type MovieHandler struct {
	uc     usecase.MovieUsecase
	logger *slog.Logger
}

// NewMovieHandler is the constructor for MovieHandler, injected by Fx.
func NewMovieHandler(uc usecase.MovieUsecase, logger *slog.Logger) *MovieHandler {
	return &MovieHandler{
		uc:     uc,
		logger: logger,
	}
}

// NowPlaying returns movies currently in theaters as a bare array.
func (h *MovieHandler) NowPlaying(c echo.Context) error {
	movies, err := h.uc.NowPlaying(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, movies)
}

// Popular returns the provider's popularity ranking as a bare array.
func (h *MovieHandler) Popular(c echo.Context) error {
	movies, err := h.uc.Popular(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, movies)
}

// Search runs a title search from the query parameter.
func (h *MovieHandler) Search(c echo.Context) error {
	movies, err := h.uc.Search(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, movies)
}

// Details relays the provider's full detail document for one movie.
func (h *MovieHandler) Details(c echo.Context) error {
	movieID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return errors.WithStack(domainerrors.ErrInvalidMovieID)
	}

	document, err := h.uc.Details(c.Request().Context(), movieID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSONBlob(http.StatusOK, document)
}
