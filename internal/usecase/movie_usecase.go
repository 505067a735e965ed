package usecase

import (
	"context"
	"encoding/json"

	"marquee/internal/domain/entity"
)

// MovieUsecase defines the read-through movie metadata operations. Results
// come straight from the external provider; the catalog holds no movie state.
type MovieUsecase interface {
	// NowPlaying returns movies currently in theaters.
	NowPlaying(ctx context.Context) ([]*entity.Movie, error)

	// Popular returns the provider's current popularity ranking.
	Popular(ctx context.Context) ([]*entity.Movie, error)

	// Search runs a title search. An empty query is rejected.
	Search(ctx context.Context, query string) ([]*entity.Movie, error)

	// Details relays the provider's full document for one movie.
	Details(ctx context.Context, movieID int64) (json.RawMessage, error)
}
