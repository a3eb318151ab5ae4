package session

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"watchlist-api/pkg/cerror"
	"watchlist-api/pkg/jwt_generator"
)

// ContextUserKey holds the caller's email in fiber locals once a bearer
// middleware has identified them.
const ContextUserKey = "userEmail"

// CheckAuth guards protected routes: the access token must carry a valid
// signature and must not be expired.
func CheckAuth(jwtGenerator jwt_generator.JwtGenerator) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		rawToken, cerr := bearerToken(ctx)
		if cerr != nil {
			return cerr
		}

		claims, err := jwtGenerator.VerifyAccessToken(rawToken)
		if err != nil {
			return cerror.NewError(
				fiber.StatusUnauthorized,
				cerror.MessageTokenInvalid,
				zap.Error(err),
			).SetCode(cerror.CodeTokenExpired).SetSeverity(zapcore.WarnLevel)
		}

		ctx.Locals(ContextUserKey, claims.Subject)
		return ctx.Next()
	}
}

// DecodeUser identifies the caller without checking signature or expiry. The
// refresh endpoint sits behind it: an already-expired access token still
// carries the subject needed to look up the refresh token.
func DecodeUser(jwtGenerator jwt_generator.JwtGenerator) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		rawToken, cerr := bearerToken(ctx)
		if cerr != nil {
			return cerr
		}

		claims, err := jwtGenerator.DecodeAccessToken(rawToken)
		if err != nil {
			return cerror.NewError(
				fiber.StatusUnauthorized,
				cerror.MessageInvalidTokenFormat,
				zap.Error(err),
			).SetCode(cerror.CodeTokenInvalid).SetSeverity(zapcore.WarnLevel)
		}

		ctx.Locals(ContextUserKey, claims.Subject)
		return ctx.Next()
	}
}

func bearerToken(ctx *fiber.Ctx) (string, *cerror.CustomError) {
	authorization := ctx.Get(fiber.HeaderAuthorization)
	if authorization == "" {
		return "", cerror.NewError(
			fiber.StatusUnauthorized,
			cerror.MessageTokenNotPresent,
		).SetCode(cerror.CodeTokenInvalid).SetSeverity(zapcore.WarnLevel)
	}

	parts := strings.SplitN(authorization, " ", 2)
	if len(parts) != 2 || parts[1] == "" {
		return "", cerror.NewError(
			fiber.StatusUnauthorized,
			cerror.MessageTokenNotPresent,
		).SetCode(cerror.CodeTokenInvalid).SetSeverity(zapcore.WarnLevel)
	}

	return parts[1], nil
}
