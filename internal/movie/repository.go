package movie

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"watchlist-api/pkg/cerror"
	"watchlist-api/pkg/config"
)

type Repository interface {
	FindAll(ctx context.Context) ([]MovieDocument, error)
	FindById(ctx context.Context, movieId string) (*MovieDocument, error)
	FindOneByField(ctx context.Context, fieldName, fieldValue string) (*MovieDocument, error)
	Insert(ctx context.Context, movie *MovieDocument) (*MovieDocument, error)
	UpdateById(ctx context.Context, movieId string, update *UpdateMoviePayload) (*MovieDocument, error)
	DeleteById(ctx context.Context, movieId string) error
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
		Collection(r.mongodbConfig.Collections[config.MongodbMovieCollection])
}

func (r *repository) FindAll(ctx context.Context) ([]MovieDocument, error) {
	cursor, err := r.collection().Find(ctx, bson.D{})
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"Failed to fetch movies",
			zap.Error(err),
		)
	}

	movies := make([]MovieDocument, 0)
	err = cursor.All(ctx, &movies)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"Failed to fetch movies",
			zap.Error(err),
		)
	}

	return movies, nil
}

func (r *repository) FindById(ctx context.Context, movieId string) (*MovieDocument, error) {
	var movie MovieDocument

	filter := bson.D{{Key: "_id", Value: movieId}}
	err := r.collection().FindOne(ctx, filter).Decode(&movie)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cerror.NewError(
				fiber.StatusNotFound,
				"Movie not found",
			).SetSeverity(zapcore.WarnLevel)
		}

		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"Failed to fetch movie",
			zap.Error(err),
		)
	}

	return &movie, nil
}

func (r *repository) FindOneByField(
	ctx context.Context,
	fieldName, fieldValue string,
) (*MovieDocument, error) {
	var movie MovieDocument

	filter := bson.D{{Key: fieldName, Value: fieldValue}}
	err := r.collection().FindOne(ctx, filter).Decode(&movie)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cerror.NewError(
				fiber.StatusNotFound,
				"Movie not found",
			).SetSeverity(zapcore.WarnLevel)
		}

		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"Failed to fetch movie",
			zap.Error(err),
		)
	}

	return &movie, nil
}

func (r *repository) Insert(ctx context.Context, movie *MovieDocument) (*MovieDocument, error) {
	var foundMovie bson.D
	filter := bson.D{{Key: "imdbID", Value: movie.ImdbID}}
	err := r.collection().FindOne(ctx, filter).Decode(&foundMovie)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while movie existing check",
			zap.Error(err),
		)
	}

	if len(foundMovie) > 0 {
		return nil, cerror.NewError(
			fiber.StatusBadRequest,
			"movie with this imdbID already exists",
		).SetSeverity(zapcore.WarnLevel)
	}

	_, err = r.collection().InsertOne(ctx, movie)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusBadRequest,
			"Failed to add movie",
			zap.Error(err),
		).SetSeverity(zapcore.WarnLevel)
	}

	return movie, nil
}

func (r *repository) UpdateById(
	ctx context.Context,
	movieId string,
	update *UpdateMoviePayload,
) (*MovieDocument, error) {
	filter := bson.D{{Key: "_id", Value: movieId}}
	updateDocument := bson.M{
		"$set": bson.M{
			"imdbID": update.ImdbID,
			"Title":  update.Title,
			"Year":   update.Year,
			"Type":   update.Type,
			"Poster": update.Poster,
		},
	}
	findOneAndUpdateOptions := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updatedMovie MovieDocument
	err := r.collection().
		FindOneAndUpdate(ctx, filter, updateDocument, findOneAndUpdateOptions).
		Decode(&updatedMovie)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cerror.NewError(
				fiber.StatusNotFound,
				"Movie not found",
			).SetSeverity(zapcore.WarnLevel)
		}

		return nil, cerror.NewError(
			fiber.StatusBadRequest,
			"Failed to update movie",
			zap.Error(err),
		).SetSeverity(zapcore.WarnLevel)
	}

	return &updatedMovie, nil
}

func (r *repository) DeleteById(ctx context.Context, movieId string) error {
	filter := bson.D{{Key: "_id", Value: movieId}}
	result, err := r.collection().DeleteOne(ctx, filter)
	if err != nil {
		return cerror.NewError(
			fiber.StatusInternalServerError,
			"Failed to delete movie",
			zap.Error(err),
		)
	}

	if result.DeletedCount == 0 {
		return cerror.NewError(
			fiber.StatusNotFound,
			"Movie not found",
		).SetSeverity(zapcore.WarnLevel)
	}

	return nil
}
