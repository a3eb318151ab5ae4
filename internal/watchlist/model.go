package watchlist

import (
	"time"

	"watchlist-api/internal/movie"
)

// WatchlistDocument references movies by imdbID; the movies slice is ordered
// and never contains the same reference twice.
type WatchlistDocument struct {
	Id          string     `bson:"_id" json:"_id"`
	Name        string     `bson:"name" json:"name"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt   *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
	Movies      []string   `bson:"movies" json:"movies"`
}

// WatchlistWithMovies is the populated form: references expanded into full
// movie documents.
type WatchlistWithMovies struct {
	Id          string                `json:"_id"`
	Name        string                `json:"name"`
	Description string                `json:"description,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   *time.Time            `json:"updated_at,omitempty"`
	Movies      []movie.MovieDocument `json:"movies"`
}

type CreateWatchlistPayload struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type UpdateWatchlistPayload struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type AddMoviesPayload struct {
	MovieIds []string `json:"movieIds" validate:"required,min=1"`
}

type RemoveMoviePayload struct {
	MovieId string `json:"movieId" validate:"required"`
}
