package movie

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap/zapcore"

	"watchlist-api/pkg/cerror"
)

type Service interface {
	GetMovies(ctx context.Context) ([]MovieDocument, error)
	GetMovieById(ctx context.Context, movieId string) (*MovieDocument, error)
	GetMovieByField(ctx context.Context, fieldName, fieldValue string) (*MovieDocument, error)
	AddMovie(ctx context.Context, movie *MovieDocument) (*MovieDocument, error)
	UpdateMovie(ctx context.Context, movieId string, update *UpdateMoviePayload) (*MovieDocument, error)
	DeleteMovie(ctx context.Context, movieId string) error
}

type service struct {
	movieRepository Repository
}

func NewService(movieRepository Repository) Service {
	return &service{
		movieRepository: movieRepository,
	}
}

func (s *service) GetMovies(ctx context.Context) ([]MovieDocument, error) {
	return s.movieRepository.FindAll(ctx)
}

func (s *service) GetMovieById(ctx context.Context, movieId string) (*MovieDocument, error) {
	return s.movieRepository.FindById(ctx, movieId)
}

func (s *service) GetMovieByField(
	ctx context.Context,
	fieldName, fieldValue string,
) (*MovieDocument, error) {
	if !IsSearchableField(fieldName) {
		return nil, cerror.NewError(
			fiber.StatusBadRequest,
			"field is not searchable",
		).SetSeverity(zapcore.WarnLevel)
	}

	return s.movieRepository.FindOneByField(ctx, fieldName, fieldValue)
}

func (s *service) AddMovie(ctx context.Context, movie *MovieDocument) (*MovieDocument, error) {
	movie.Id = uuid.New().String()
	return s.movieRepository.Insert(ctx, movie)
}

func (s *service) UpdateMovie(
	ctx context.Context,
	movieId string,
	update *UpdateMoviePayload,
) (*MovieDocument, error) {
	return s.movieRepository.UpdateById(ctx, movieId, update)
}

func (s *service) DeleteMovie(ctx context.Context, movieId string) error {
	return s.movieRepository.DeleteById(ctx, movieId)
}
