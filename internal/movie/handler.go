package movie

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"watchlist-api/pkg/cerror"
	"watchlist-api/pkg/logger"
	"watchlist-api/pkg/server"
)

type handler struct {
	movieService Service
}

func NewHandler(movieService Service) server.Handler {
	return &handler{
		movieService: movieService,
	}
}

func (h *handler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/movies", h.GetMovies)
	app.Get("/api/movies/:id", h.GetMovieById)
	app.Get("/api/movies/:field/:value", h.GetMovieByField)
	app.Post("/api/movies", h.AddMovie)
	app.Put("/api/movies/:id", h.UpdateMovie)
	app.Delete("/api/movies/:id", h.DeleteMovie)
}

func (h *handler) GetMovies(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "getMovies"))
	ctx.Locals(logger.ContextKey, log)

	movies, err := h.movieService.GetMovies(ctx.Context())
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(movies)
}

func (h *handler) GetMovieById(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "getMovieById"))
	ctx.Locals(logger.ContextKey, log)

	movie, err := h.movieService.GetMovieById(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(movie)
}

func (h *handler) GetMovieByField(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "getMovieByField"))
	ctx.Locals(logger.ContextKey, log)

	movie, err := h.movieService.GetMovieByField(
		ctx.Context(),
		ctx.Params("field"),
		ctx.Params("value"),
	)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(movie)
}

func (h *handler) AddMovie(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "addMovie"))
	ctx.Locals(logger.ContextKey, log)

	var movie MovieDocument
	err := ctx.BodyParser(&movie)
	if err != nil {
		return cerror.NewError(
			fiber.StatusBadRequest,
			"malformed request body",
		).SetSeverity(zap.WarnLevel)
	}

	validate := validator.New()
	err = validate.Struct(&movie)
	if err != nil {
		return cerror.NewError(
			fiber.StatusBadRequest,
			"malformed request body",
		).SetSeverity(zap.WarnLevel)
	}

	createdMovie, err := h.movieService.AddMovie(ctx.Context(), &movie)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusCreated).
		JSON(createdMovie)
}

func (h *handler) UpdateMovie(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "updateMovie"))
	ctx.Locals(logger.ContextKey, log)

	var update UpdateMoviePayload
	err := ctx.BodyParser(&update)
	if err != nil {
		return cerror.NewError(
			fiber.StatusBadRequest,
			"malformed request body",
		).SetSeverity(zap.WarnLevel)
	}

	updatedMovie, err := h.movieService.UpdateMovie(ctx.Context(), ctx.Params("id"), &update)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(updatedMovie)
}

func (h *handler) DeleteMovie(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "deleteMovie"))
	ctx.Locals(logger.ContextKey, log)

	err := h.movieService.DeleteMovie(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(fiber.Map{
			"message": "Movie deleted successfully",
		})
}
