package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	deliverycontext "marquee/internal/delivery/context"
	"marquee/internal/domain/entity"
	domainerrors "marquee/internal/domain/errors"
	"marquee/internal/domain/service"
	"marquee/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// movieService implements the MovieUsecase interface by relaying to the
// external metadata catalog. Provider failures surface as a single generic
// error so upstream details never reach clients.
type movieService struct {
	catalog service.MovieCatalog
	logger  *slog.Logger
}

// MovieServiceParams holds dependencies for movieService, injected by Fx.
type MovieServiceParams struct {
	fx.In

	Catalog service.MovieCatalog
	Logger  *slog.Logger
}

// NewMovieService is the constructor for movieService.
func NewMovieService(params MovieServiceParams) usecase.MovieUsecase {
	return &movieService{
		catalog: params.Catalog,
		logger:  params.Logger,
	}
}

func (srv *movieService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// NowPlaying returns movies currently in theaters.
func (srv *movieService) NowPlaying(ctx context.Context) ([]*entity.Movie, error) {
	movies, err := srv.catalog.NowPlaying(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to fetch now-playing movies", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrMetadataUnavailable, "failed to fetch now-playing movies")
	}

	return movies, nil
}

// Popular returns the provider's current popularity ranking.
func (srv *movieService) Popular(ctx context.Context) ([]*entity.Movie, error) {
	movies, err := srv.catalog.Popular(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to fetch popular movies", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrMetadataUnavailable, "failed to fetch popular movies")
	}

	return movies, nil
}

// Search runs a title search against the provider. An empty or
// whitespace-only query is rejected before any upstream call.
func (srv *movieService) Search(ctx context.Context, query string) ([]*entity.Movie, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.Wrap(domainerrors.ErrSearchQueryRequired, "empty search query")
	}

	movies, err := srv.catalog.Search(ctx, query)
	if err != nil {
		srv.log(ctx).Error("Failed to search movies", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrMetadataUnavailable, "failed to search movies")
	}

	return movies, nil
}

// Details relays the provider's full detail document for one movie.
func (srv *movieService) Details(ctx context.Context, movieID int64) (json.RawMessage, error) {
	if movieID <= 0 {
		return nil, errors.Wrap(domainerrors.ErrInvalidMovieID, "non-positive movie id")
	}

	document, err := srv.catalog.Details(ctx, movieID)
	if err != nil {
		srv.log(ctx).Error("Failed to fetch movie details", slog.Int64("movie_id", movieID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrMetadataUnavailable, "failed to fetch movie details")
	}

	return document, nil
}
