package postgres

import (
	"context"

	"marquee/internal/domain/entity"
	domainerrors "marquee/internal/domain/errors"
	"marquee/internal/domain/repository"
	"marquee/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// favoriteRepository implements the repository.FavoriteRepository interface.
// Every query is scoped by user_id; there is no unscoped access path.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

// ListByUser returns the user's favorites, most recently added first.
func (repo *favoriteRepository) ListByUser(ctx context.Context, userID int64) ([]*entity.Favorite, error) {
	var favoriteModels []*model.FavoriteModel

	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("added_at DESC").
		Find(&favoriteModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	favorites := make([]*entity.Favorite, 0, len(favoriteModels))
	for _, favoriteM := range favoriteModels {
		favorites = append(favorites, toFavoriteDomain(favoriteM))
	}

	return favorites, nil
}

// Create persists a new favorite row. The composite primary key on
// (user_id, movie_id) decides concurrent duplicate adds; the losing writer
// gets the conflict error, never a silent duplicate.
func (repo *favoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	favoriteM := fromFavoriteDomain(favorite)

	if err := repo.db.WithContext(ctx).Create(favoriteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrFavoriteAlreadyExists.WrapMessage("movie already favorited")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "favorite references unknown user")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required favorite information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create favorite")
	}

	favorite.AddedAt = favoriteM.AddedAt

	return nil
}

// Delete removes the favorite matching (userID, movieID). A row owned by a
// different user and a missing row are both reported as not found.
func (repo *favoriteRepository) Delete(ctx context.Context, userID, movieID int64) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Delete(&model.FavoriteModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete favorite")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toFavoriteDomain converts a GORM FavoriteModel to a domain Favorite entity.
func toFavoriteDomain(data *model.FavoriteModel) *entity.Favorite {
	if data == nil {
		return nil
	}

	return &entity.Favorite{
		UserID:     data.UserID,
		MovieID:    data.MovieID,
		Title:      data.MovieTitle,
		PosterPath: data.PosterPath,
		AddedAt:    data.AddedAt,
	}
}

// fromFavoriteDomain converts a domain Favorite entity to a GORM FavoriteModel.
func fromFavoriteDomain(data *entity.Favorite) *model.FavoriteModel {
	if data == nil {
		return nil
	}

	return &model.FavoriteModel{
		UserID:     data.UserID,
		MovieID:    data.MovieID,
		MovieTitle: data.Title,
		PosterPath: data.PosterPath,
		AddedAt:    data.AddedAt,
	}
}
