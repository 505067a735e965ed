package tmdb

import (
	"marquee/internal/domain/entity"
)

// movieResult is one entry of a TMDB list response.
type movieResult struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterPath  *string `json:"poster_path"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
}

// listResponse is the envelope TMDB wraps around every paged listing.
type listResponse struct {
	Page         int           `json:"page"`
	Results      []movieResult `json:"results"`
	TotalPages   int           `json:"total_pages"`
	TotalResults int           `json:"total_results"`
}

// toDomain maps provider results into domain movie summaries.
func (r *listResponse) toDomain() []*entity.Movie {
	movies := make([]*entity.Movie, 0, len(r.Results))
	for _, result := range r.Results {
		movies = append(movies, &entity.Movie{
			ID:          result.ID,
			Title:       result.Title,
			Overview:    result.Overview,
			PosterPath:  result.PosterPath,
			ReleaseDate: result.ReleaseDate,
			VoteAverage: result.VoteAverage,
		})
	}

	return movies
}
