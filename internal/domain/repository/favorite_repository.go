package repository

import (
	"context"
	"errors"

	"marquee/internal/domain/entity"
)

// ErrFavoriteNotFound covers both a truly absent favorite and one owned by a
// different user. The two cases are deliberately indistinguishable so that
// error responses cannot be used to probe other users' favorites.
var ErrFavoriteNotFound = errors.New("favorite not found")

// FavoriteRepository defines the per-user favorite persistence operations.
// Every operation is scoped by user ID; there is no cross-user access path.
type FavoriteRepository interface {
	// ListByUser returns the user's favorites ordered by AddedAt descending
	// (most recently added first). An empty slice when the user has none.
	ListByUser(ctx context.Context, userID int64) ([]*entity.Favorite, error)

	// Create persists a new favorite row. The (user_id, movie_id) unique
	// constraint is the sole guard against concurrent duplicate adds; the
	// losing writer observes a domain conflict error.
	Create(ctx context.Context, favorite *entity.Favorite) error

	// Delete removes the favorite matching (userID, movieID). Returns
	// ErrFavoriteNotFound when no row matched, including rows owned by
	// other users.
	Delete(ctx context.Context, userID, movieID int64) error
}
