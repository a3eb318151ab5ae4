package watchlist

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"watchlist-api/pkg/cerror"
	"watchlist-api/pkg/logger"
	"watchlist-api/pkg/server"
)

type handler struct {
	watchlistService Service
}

func NewHandler(watchlistService Service) server.Handler {
	return &handler{
		watchlistService: watchlistService,
	}
}

func (h *handler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/watchlists", h.GetWatchlists)
	app.Get("/api/watchlists/:id", h.GetWatchlistById)
	app.Get("/api/watchlists/:id/movies", h.GetWatchlistWithMovies)
	app.Put("/api/watchlists/:id/movies", h.AddMovies)
	app.Put("/api/watchlists/:id/moviesId", h.RemoveMovie)
	app.Post("/api/watchlists", h.AddWatchlist)
	app.Put("/api/watchlists/:id", h.UpdateWatchlist)
	app.Delete("/api/watchlists/:id", h.DeleteWatchlist)
}

func (h *handler) GetWatchlists(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "getWatchlists"))
	ctx.Locals(logger.ContextKey, log)

	watchlists, err := h.watchlistService.GetWatchlists(ctx.Context())
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(watchlists)
}

func (h *handler) GetWatchlistById(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "getWatchlistById"))
	ctx.Locals(logger.ContextKey, log)

	watchlist, err := h.watchlistService.GetWatchlistById(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(watchlist)
}

func (h *handler) AddWatchlist(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "addWatchlist"))
	ctx.Locals(logger.ContextKey, log)

	var payload CreateWatchlistPayload
	err := ctx.BodyParser(&payload)
	if err != nil {
		return cerror.NewError(
			fiber.StatusBadRequest,
			"malformed request body",
		).SetSeverity(zap.WarnLevel)
	}

	validate := validator.New()
	err = validate.Struct(&payload)
	if err != nil {
		return cerror.NewError(
			fiber.StatusBadRequest,
			"malformed request body",
		).SetSeverity(zap.WarnLevel)
	}

	createdWatchlist, err := h.watchlistService.AddWatchlist(ctx.Context(), &payload)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusCreated).
		JSON(createdWatchlist)
}

func (h *handler) UpdateWatchlist(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "updateWatchlist"))
	ctx.Locals(logger.ContextKey, log)

	var payload UpdateWatchlistPayload
	err := ctx.BodyParser(&payload)
	if err != nil {
		return cerror.NewError(
			fiber.StatusBadRequest,
			"malformed request body",
		).SetSeverity(zap.WarnLevel)
	}

	validate := validator.New()
	err = validate.Struct(&payload)
	if err != nil {
		return cerror.NewError(
			fiber.StatusBadRequest,
			"malformed request body",
		).SetSeverity(zap.WarnLevel)
	}

	updatedWatchlist, err := h.watchlistService.UpdateWatchlist(ctx.Context(), ctx.Params("id"), &payload)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(updatedWatchlist)
}

func (h *handler) DeleteWatchlist(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "deleteWatchlist"))
	ctx.Locals(logger.ContextKey, log)

	err := h.watchlistService.DeleteWatchlist(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(fiber.Map{
			"message": "Watchlist deleted successfully",
		})
}

func (h *handler) GetWatchlistWithMovies(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "getWatchlistWithMovies"))
	ctx.Locals(logger.ContextKey, log)

	watchlist, err := h.watchlistService.GetWatchlistWithMovies(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(watchlist)
}

func (h *handler) AddMovies(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "addMoviesToWatchlist"))
	ctx.Locals(logger.ContextKey, log)

	var payload AddMoviesPayload
	err := ctx.BodyParser(&payload)
	if err != nil {
		return cerror.NewError(
			fiber.StatusBadRequest,
			"malformed request body",
		).SetSeverity(zap.WarnLevel)
	}

	validate := validator.New()
	err = validate.Struct(&payload)
	if err != nil {
		return cerror.NewError(
			fiber.StatusBadRequest,
			"malformed request body",
		).SetSeverity(zap.WarnLevel)
	}

	updatedWatchlist, err := h.watchlistService.AddMovies(ctx.Context(), ctx.Params("id"), payload.MovieIds)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(updatedWatchlist)
}

func (h *handler) RemoveMovie(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "removeMovieFromWatchlist"))
	ctx.Locals(logger.ContextKey, log)

	var payload RemoveMoviePayload
	err := ctx.BodyParser(&payload)
	if err != nil {
		return cerror.NewError(
			fiber.StatusBadRequest,
			"malformed request body",
		).SetSeverity(zap.WarnLevel)
	}

	validate := validator.New()
	err = validate.Struct(&payload)
	if err != nil {
		return cerror.NewError(
			fiber.StatusBadRequest,
			"malformed request body",
		).SetSeverity(zap.WarnLevel)
	}

	updatedWatchlist, err := h.watchlistService.RemoveMovie(ctx.Context(), ctx.Params("id"), payload.MovieId)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(updatedWatchlist)
}
