package service

import (
	"context"
	"encoding/json"

	"marquee/internal/domain/entity"
)

// MovieCatalog is the read-through view of the external metadata provider.
// The catalog owns no movie data; every call is a live provider request.
type MovieCatalog interface {
	// NowPlaying returns the first page of movies currently in theaters.
	NowPlaying(ctx context.Context) ([]*entity.Movie, error)

	// Popular returns the first page of the provider's popularity ranking.
	Popular(ctx context.Context) ([]*entity.Movie, error)

	// Search runs a title search against the provider.
	Search(ctx context.Context, query string) ([]*entity.Movie, error)

	// Details fetches the full provider document for one movie, including
	// credits and videos, relayed verbatim.
	Details(ctx context.Context, movieID int64) (json.RawMessage, error)
}
