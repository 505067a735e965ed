package impl

import (
	"context"
	"log/slog"

	deliverycontext "marquee/internal/delivery/context"
	"marquee/internal/domain/entity"
	domainerrors "marquee/internal/domain/errors"
	"marquee/internal/domain/repository"
	"marquee/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// FavoriteServiceParams holds dependencies for favoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns the user's favorites, most recently added first.
func (srv *favoriteService) List(ctx context.Context, userID int64) ([]*entity.Favorite, error) {
	var favorites []*entity.Favorite

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.FavoriteRepo().ListByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list favorites")
		}
		favorites = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute favorite list transaction", slog.Int64("user_id", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute favorite list transaction")
	}

	return favorites, nil
}

// Add records a new favorite for the acting user. The composite primary key
// on (user_id, movie_id) decides conflicts, also between concurrent adds.
func (srv *favoriteService) Add(ctx context.Context, input *usecase.AddFavoriteInput) error {
	if input == nil || input.MovieID == 0 || input.Title == "" {
		return errors.Wrap(domainerrors.ErrFavoriteInput, "missing favorite fields")
	}

	favorite := &entity.Favorite{
		UserID:     input.UserID,
		MovieID:    input.MovieID,
		Title:      input.Title,
		PosterPath: input.PosterPath,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.FavoriteRepo().Create(ctx, favorite)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to add favorite",
			slog.Int64("user_id", input.UserID),
			slog.Int64("movie_id", input.MovieID),
			slog.Any("error", err))

		return errors.Wrap(err, "failed to execute favorite add transaction")
	}

	srv.log(ctx).Info("Favorite added", slog.Int64("user_id", input.UserID), slog.Int64("movie_id", input.MovieID))

	return nil
}

// Remove deletes the user's favorite for the movie. A row owned by another
// user and a row that never existed report the same not-found outcome.
func (srv *favoriteService) Remove(ctx context.Context, userID, movieID int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.FavoriteRepo().Delete(ctx, userID, movieID); err != nil {
			if errors.Is(err, repository.ErrFavoriteNotFound) {
				return errors.Wrap(domainerrors.ErrFavoriteNotFound, "favorite not found for user")
			}

			return errors.Wrap(err, "failed to delete favorite")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to remove favorite",
			slog.Int64("user_id", userID),
			slog.Int64("movie_id", movieID),
			slog.Any("error", err))

		return errors.Wrap(err, "failed to execute favorite remove transaction")
	}

	srv.log(ctx).Info("Favorite removed", slog.Int64("user_id", userID), slog.Int64("movie_id", movieID))

	return nil
}
