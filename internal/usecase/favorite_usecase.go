package usecase

import (
	"context"

	"marquee/internal/domain/entity"
)

// AddFavoriteInput defines the data required to favorite a movie. The JSON
// field names mirror the metadata provider's movie document so the browser
// can post a search result back unchanged.
type AddFavoriteInput struct {
	UserID     int64   `json:"-"`
	MovieID    int64   `json:"id" validate:"required"`
	Title      string  `json:"title" validate:"required"`
	PosterPath *string `json:"poster_path"`
}

// FavoriteUsecase defines the interface for favorite-list business operations.
// Every operation is bound to the acting user; there is no way to reach
// another user's list through this interface.
type FavoriteUsecase interface {
	// List returns the user's favorites, most recently added first.
	List(ctx context.Context, userID int64) ([]*entity.Favorite, error)

	// Add records a new favorite. Favoriting the same movie twice yields a
	// conflict error, also under concurrent adds.
	Add(ctx context.Context, input *AddFavoriteInput) error

	// Remove deletes the user's favorite for the movie. A movie the user
	// never favorited reports not found, whether or not someone else has it.
	Remove(ctx context.Context, userID, movieID int64) error
}
