package session

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"watchlist-api/pkg/cerror"
	"watchlist-api/pkg/jwt_generator"
	"watchlist-api/pkg/logger"
	"watchlist-api/pkg/server"
)

type handler struct {
	sessionService Service
	jwtGenerator   jwt_generator.JwtGenerator
}

func NewHandler(sessionService Service, jwtGenerator jwt_generator.JwtGenerator) server.Handler {
	return &handler{
		sessionService: sessionService,
		jwtGenerator:   jwtGenerator,
	}
}

func (h *handler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/sessions", h.CreateSession)
	app.Post("/api/refresh", DecodeUser(h.jwtGenerator), h.RefreshSession)
	app.Get("/api/me", CheckAuth(h.jwtGenerator), h.GetUserInfo)
}

func (h *handler) CreateSession(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "createSession"))
	ctx.Locals(logger.ContextKey, log)

	var credentials CredentialsPayload
	err := ctx.BodyParser(&credentials)
	if err != nil {
		return cerror.NewError(
			fiber.StatusBadRequest,
			"malformed request body",
		).SetSeverity(zap.WarnLevel)
	}

	validate := validator.New()
	err = validate.Struct(&credentials)
	if err != nil {
		return cerror.NewError(
			fiber.StatusBadRequest,
			"malformed request body",
		).SetSeverity(zap.WarnLevel)
	}

	tokens, err := h.sessionService.CreateSession(ctx.Context(), &credentials)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(tokens)
}

func (h *handler) RefreshSession(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "refreshSession"))
	ctx.Locals(logger.ContextKey, log)

	email, _ := ctx.Locals(ContextUserKey).(string)

	// A missing or unreadable body degrades to an empty refresh token, which
	// the service rejects with the required-token error.
	var payload RefreshPayload
	_ = ctx.BodyParser(&payload)

	tokens, err := h.sessionService.RefreshSession(ctx.Context(), email, payload.RefreshToken)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(tokens)
}

func (h *handler) GetUserInfo(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "getUserInfo"))
	ctx.Locals(logger.ContextKey, log)

	email, _ := ctx.Locals(ContextUserKey).(string)

	userInfo, err := h.sessionService.GetUserInfo(ctx.Context(), email)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(userInfo)
}
