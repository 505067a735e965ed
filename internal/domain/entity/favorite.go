package entity

import (
	"time"
)

// Favorite is a user's bookmark of one externally sourced movie record.
// The (UserID, MovieID) pair is the primary key; a user can favorite a given
// movie at most once, and favorites never cross user boundaries.
type Favorite struct {
	UserID     int64     // Owning user. Every repository query is scoped by this.
	MovieID    int64     // The metadata provider's movie identifier.
	Title      string    // Denormalized title captured at add time.
	PosterPath *string   // Provider poster path; nil when the movie has none.
	AddedAt    time.Time // Insertion timestamp, drives most-recent-first listing.
}
