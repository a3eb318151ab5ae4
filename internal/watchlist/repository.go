package watchlist

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"watchlist-api/internal/movie"
	"watchlist-api/pkg/cerror"
	"watchlist-api/pkg/config"
)

type Repository interface {
	FindAll(ctx context.Context) ([]WatchlistDocument, error)
	FindById(ctx context.Context, watchlistId string) (*WatchlistDocument, error)
	Insert(ctx context.Context, watchlist *WatchlistDocument) (*WatchlistDocument, error)
	UpdateById(
		ctx context.Context,
		watchlistId string,
		update *UpdateWatchlistPayload,
		updatedAt time.Time,
	) (*WatchlistDocument, error)
	DeleteById(ctx context.Context, watchlistId string) error
	ReplaceMovies(ctx context.Context, watchlistId string, movieIds []string) (*WatchlistDocument, error)
	FindMoviesByImdbIds(ctx context.Context, imdbIds []string) ([]movie.MovieDocument, error)
}

type repository struct {
	mongodbClient *mongo.Client
	mongodbConfig config.MongodbConfig
}

func NewRepository(mongodbClient *mongo.Client, mongodbConfig config.MongodbConfig) Repository {
	return &repository{
		mongodbClient: mongodbClient,
		mongodbConfig: mongodbConfig,
	}
}

func (r *repository) collection() *mongo.Collection {
	return r.mongodbClient.
		Database(r.mongodbConfig.Database).
		Collection(r.mongodbConfig.Collections[config.MongodbWatchlistCollection])
}

func (r *repository) movieCollection() *mongo.Collection {
	return r.mongodbClient.
		Database(r.mongodbConfig.Database).
		Collection(r.mongodbConfig.Collections[config.MongodbMovieCollection])
}

func (r *repository) FindAll(ctx context.Context) ([]WatchlistDocument, error) {
	cursor, err := r.collection().Find(ctx, bson.D{})
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"Failed to fetch watchlists",
			zap.Error(err),
		)
	}

	watchlists := make([]WatchlistDocument, 0)
	err = cursor.All(ctx, &watchlists)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"Failed to fetch watchlists",
			zap.Error(err),
		)
	}

	return watchlists, nil
}

func (r *repository) FindById(ctx context.Context, watchlistId string) (*WatchlistDocument, error) {
	var watchlist WatchlistDocument

	filter := bson.D{{Key: "_id", Value: watchlistId}}
	err := r.collection().FindOne(ctx, filter).Decode(&watchlist)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cerror.NewError(
				fiber.StatusNotFound,
				"Watchlist not found",
			).SetSeverity(zapcore.WarnLevel)
		}

		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"Failed to fetch watchlist",
			zap.Error(err),
		)
	}

	return &watchlist, nil
}

func (r *repository) Insert(
	ctx context.Context,
	watchlist *WatchlistDocument,
) (*WatchlistDocument, error) {
	_, err := r.collection().InsertOne(ctx, watchlist)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusBadRequest,
			"Failed to create watchlist",
			zap.Error(err),
		).SetSeverity(zapcore.WarnLevel)
	}

	return watchlist, nil
}

func (r *repository) UpdateById(
	ctx context.Context,
	watchlistId string,
	update *UpdateWatchlistPayload,
	updatedAt time.Time,
) (*WatchlistDocument, error) {
	filter := bson.D{{Key: "_id", Value: watchlistId}}
	updateDocument := bson.M{
		"$set": bson.M{
			"name":        update.Name,
			"description": update.Description,
			"updated_at":  updatedAt,
		},
	}
	findOneAndUpdateOptions := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updatedWatchlist WatchlistDocument
	err := r.collection().
		FindOneAndUpdate(ctx, filter, updateDocument, findOneAndUpdateOptions).
		Decode(&updatedWatchlist)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cerror.NewError(
				fiber.StatusNotFound,
				"Watchlist not found",
			).SetSeverity(zapcore.WarnLevel)
		}

		return nil, cerror.NewError(
			fiber.StatusBadRequest,
			"Failed to update watchlist",
			zap.Error(err),
		).SetSeverity(zapcore.WarnLevel)
	}

	return &updatedWatchlist, nil
}

func (r *repository) DeleteById(ctx context.Context, watchlistId string) error {
	filter := bson.D{{Key: "_id", Value: watchlistId}}
	result, err := r.collection().DeleteOne(ctx, filter)
	if err != nil {
		return cerror.NewError(
			fiber.StatusInternalServerError,
			"Failed to delete watchlist",
			zap.Error(err),
		)
	}

	if result.DeletedCount == 0 {
		return cerror.NewError(
			fiber.StatusNotFound,
			"Watchlist not found",
		).SetSeverity(zapcore.WarnLevel)
	}

	return nil
}

// ReplaceMovies writes the movies reference list only; membership operations
// do not touch updated_at.
func (r *repository) ReplaceMovies(
	ctx context.Context,
	watchlistId string,
	movieIds []string,
) (*WatchlistDocument, error) {
	filter := bson.D{{Key: "_id", Value: watchlistId}}
	updateDocument := bson.M{
		"$set": bson.M{
			"movies": movieIds,
		},
	}
	findOneAndUpdateOptions := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updatedWatchlist WatchlistDocument
	err := r.collection().
		FindOneAndUpdate(ctx, filter, updateDocument, findOneAndUpdateOptions).
		Decode(&updatedWatchlist)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cerror.NewError(
				fiber.StatusNotFound,
				"Watchlist not found",
			).SetSeverity(zapcore.WarnLevel)
		}

		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"Failed to update watchlist movies",
			zap.Error(err),
		)
	}

	return &updatedWatchlist, nil
}

func (r *repository) FindMoviesByImdbIds(
	ctx context.Context,
	imdbIds []string,
) ([]movie.MovieDocument, error) {
	filter := bson.M{"imdbID": bson.M{"$in": imdbIds}}
	cursor, err := r.movieCollection().Find(ctx, filter)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"Failed to fetch watchlist movies",
			zap.Error(err),
		)
	}

	movies := make([]movie.MovieDocument, 0)
	err = cursor.All(ctx, &movies)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"Failed to fetch watchlist movies",
			zap.Error(err),
		)
	}

	return movies, nil
}
