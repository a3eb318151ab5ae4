package watchlist

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap/zapcore"

	"watchlist-api/internal/movie"
	"watchlist-api/pkg/cerror"
)

type Service interface {
	GetWatchlists(ctx context.Context) ([]WatchlistDocument, error)
	GetWatchlistById(ctx context.Context, watchlistId string) (*WatchlistDocument, error)
	AddWatchlist(ctx context.Context, payload *CreateWatchlistPayload) (*WatchlistDocument, error)
	UpdateWatchlist(ctx context.Context, watchlistId string, payload *UpdateWatchlistPayload) (*WatchlistDocument, error)
	DeleteWatchlist(ctx context.Context, watchlistId string) error
	GetWatchlistWithMovies(ctx context.Context, watchlistId string) (*WatchlistWithMovies, error)
	AddMovies(ctx context.Context, watchlistId string, movieIds []string) (*WatchlistDocument, error)
	RemoveMovie(ctx context.Context, watchlistId, movieId string) (*WatchlistDocument, error)
}

type service struct {
	watchlistRepository Repository
}

func NewService(watchlistRepository Repository) Service {
	return &service{
		watchlistRepository: watchlistRepository,
	}
}

func (s *service) GetWatchlists(ctx context.Context) ([]WatchlistDocument, error) {
	return s.watchlistRepository.FindAll(ctx)
}

func (s *service) GetWatchlistById(
	ctx context.Context,
	watchlistId string,
) (*WatchlistDocument, error) {
	return s.watchlistRepository.FindById(ctx, watchlistId)
}

func (s *service) AddWatchlist(
	ctx context.Context,
	payload *CreateWatchlistPayload,
) (*WatchlistDocument, error) {
	return s.watchlistRepository.Insert(ctx, &WatchlistDocument{
		Id:          uuid.New().String(),
		Name:        payload.Name,
		Description: payload.Description,
		CreatedAt:   time.Now().UTC(),
		Movies:      make([]string, 0),
	})
}

func (s *service) UpdateWatchlist(
	ctx context.Context,
	watchlistId string,
	payload *UpdateWatchlistPayload,
) (*WatchlistDocument, error) {
	return s.watchlistRepository.UpdateById(ctx, watchlistId, payload, time.Now().UTC())
}

func (s *service) DeleteWatchlist(ctx context.Context, watchlistId string) error {
	return s.watchlistRepository.DeleteById(ctx, watchlistId)
}

// GetWatchlistWithMovies expands the stored references into full movie
// documents, keeping the stored reference order. References that no longer
// resolve to a movie are skipped.
func (s *service) GetWatchlistWithMovies(
	ctx context.Context,
	watchlistId string,
) (*WatchlistWithMovies, error) {
	watchlist, err := s.watchlistRepository.FindById(ctx, watchlistId)
	if err != nil {
		return nil, err
	}

	movies := make([]movie.MovieDocument, 0, len(watchlist.Movies))
	if len(watchlist.Movies) > 0 {
		foundMovies, err := s.watchlistRepository.FindMoviesByImdbIds(ctx, watchlist.Movies)
		if err != nil {
			return nil, err
		}

		moviesByImdbId := make(map[string]movie.MovieDocument, len(foundMovies))
		for _, foundMovie := range foundMovies {
			moviesByImdbId[foundMovie.ImdbID] = foundMovie
		}

		for _, imdbId := range watchlist.Movies {
			if foundMovie, isFound := moviesByImdbId[imdbId]; isFound {
				movies = append(movies, foundMovie)
			}
		}
	}

	return &WatchlistWithMovies{
		Id:          watchlist.Id,
		Name:        watchlist.Name,
		Description: watchlist.Description,
		CreatedAt:   watchlist.CreatedAt,
		UpdatedAt:   watchlist.UpdatedAt,
		Movies:      movies,
	}, nil
}

// AddMovies appends the subset of movieIds not already referenced, in order
// of first appearance. When nothing in the request is new the watchlist is
// left untouched and the call fails with the duplicate-movies condition.
func (s *service) AddMovies(
	ctx context.Context,
	watchlistId string,
	movieIds []string,
) (*WatchlistDocument, error) {
	watchlist, err := s.watchlistRepository.FindById(ctx, watchlistId)
	if err != nil {
		return nil, err
	}

	referenced := make(map[string]struct{}, len(watchlist.Movies))
	for _, imdbId := range watchlist.Movies {
		referenced[imdbId] = struct{}{}
	}

	newMovieIds := make([]string, 0, len(movieIds))
	for _, movieId := range movieIds {
		if _, isReferenced := referenced[movieId]; isReferenced {
			continue
		}

		referenced[movieId] = struct{}{}
		newMovieIds = append(newMovieIds, movieId)
	}

	if len(newMovieIds) == 0 {
		return nil, cerror.NewError(
			fiber.StatusBadRequest,
			"Movie Already in Watchlist",
		).SetCode(cerror.CodeDuplicateMovies).SetSeverity(zapcore.WarnLevel)
	}

	return s.watchlistRepository.ReplaceMovies(
		ctx,
		watchlistId,
		append(watchlist.Movies, newMovieIds...),
	)
}

// RemoveMovie removes the first matching reference, preserving the relative
// order of the remaining entries.
func (s *service) RemoveMovie(
	ctx context.Context,
	watchlistId, movieId string,
) (*WatchlistDocument, error) {
	watchlist, err := s.watchlistRepository.FindById(ctx, watchlistId)
	if err != nil {
		return nil, err
	}

	movieIndex := -1
	for i, imdbId := range watchlist.Movies {
		if imdbId == movieId {
			movieIndex = i
			break
		}
	}

	if movieIndex == -1 {
		return nil, cerror.NewError(
			fiber.StatusNotFound,
			"Movie not found in watchlist",
		).SetSeverity(zapcore.WarnLevel)
	}

	remainingMovieIds := make([]string, 0, len(watchlist.Movies)-1)
	remainingMovieIds = append(remainingMovieIds, watchlist.Movies[:movieIndex]...)
	remainingMovieIds = append(remainingMovieIds, watchlist.Movies[movieIndex+1:]...)

	return s.watchlistRepository.ReplaceMovies(ctx, watchlistId, remainingMovieIds)
}
