package cerror

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"watchlist-api/pkg/logger"
)

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// Middleware is the fiber error handler. Every handler and service returns
// *CustomError; anything else is treated as an internal error.
func Middleware(ctx *fiber.Ctx, err error) error {
	var cerr *CustomError
	isCerror := errors.As(err, &cerr)
	if !isCerror {
		cerr = NewError(fiber.StatusInternalServerError, "internal server error", zap.Error(err))
	}

	sugaredLogger := logger.FromContext(ctx.Context())
	log := sugaredLogger.Desugar()
	for _, field := range cerr.LogFields {
		log = log.With(field)
	}
	log.Log(cerr.LogSeverity, cerr.LogMessage)

	return ctx.
		Status(cerr.HttpStatusCode).
		JSON(&ErrorResponse{
			Error:   true,
			Code:    cerr.Code,
			Message: cerr.Message,
		})
}
