package session

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"watchlist-api/pkg/cerror"
	"watchlist-api/pkg/jwt_generator"
)

const AccessTokenExpirationDuration = 15 * time.Minute

type Service interface {
	CreateSession(ctx context.Context, credentials *CredentialsPayload) (*jwt_generator.Tokens, error)
	RefreshSession(ctx context.Context, email, refreshToken string) (*jwt_generator.Tokens, error)
	GetUserInfo(ctx context.Context, email string) (*UserInfo, error)
}

type service struct {
	sessionStore Store
	jwtGenerator jwt_generator.JwtGenerator
}

func NewService(sessionStore Store, jwtGenerator jwt_generator.JwtGenerator) Service {
	return &service{
		sessionStore: sessionStore,
		jwtGenerator: jwtGenerator,
	}
}

func (s *service) CreateSession(
	_ context.Context,
	credentials *CredentialsPayload,
) (*jwt_generator.Tokens, error) {
	user, isFound := s.sessionStore.FindUser(credentials.Email)
	if !isFound || !s.sessionStore.VerifyCredentials(credentials.Email, credentials.Password) {
		return nil, cerror.NewError(
			fiber.StatusUnauthorized,
			"E-mail or password incorrect.",
		).SetSeverity(zapcore.WarnLevel)
	}

	return s.generateTokenPair(user)
}

// RefreshSession redeems the presented refresh token and issues a brand-new
// access/refresh pair. Redeeming removes the token before reissue, so every
// refresh token is usable exactly once.
func (s *service) RefreshSession(
	_ context.Context,
	email, refreshToken string,
) (*jwt_generator.Tokens, error) {
	user, isFound := s.sessionStore.FindUser(email)
	if !isFound {
		return nil, cerror.NewError(
			fiber.StatusUnauthorized,
			"User not found.",
		).SetSeverity(zapcore.WarnLevel)
	}

	if refreshToken == "" {
		return nil, cerror.NewError(
			fiber.StatusUnauthorized,
			"Refresh token is required.",
		).SetSeverity(zapcore.WarnLevel)
	}

	isRedeemed := s.sessionStore.RedeemRefreshToken(email, refreshToken)
	if !isRedeemed {
		return nil, cerror.NewError(
			fiber.StatusUnauthorized,
			"Refresh token is invalid.",
		).SetSeverity(zapcore.WarnLevel)
	}

	return s.generateTokenPair(user)
}

func (s *service) GetUserInfo(_ context.Context, email string) (*UserInfo, error) {
	user, isFound := s.sessionStore.FindUser(email)
	if !isFound {
		return nil, cerror.NewError(
			fiber.StatusBadRequest,
			"User not found.",
		).SetSeverity(zapcore.WarnLevel)
	}

	return &UserInfo{
		Email:       user.Email,
		Permissions: user.Permissions,
		Roles:       user.Roles,
	}, nil
}

func (s *service) generateTokenPair(user *User) (*jwt_generator.Tokens, error) {
	accessTokenExpiresAt := time.Now().UTC().Add(AccessTokenExpirationDuration)
	accessToken, err := s.jwtGenerator.GenerateAccessToken(
		accessTokenExpiresAt,
		user.Email,
		user.Permissions,
		user.Roles,
	)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while generate access token",
			zap.Error(err),
		)
	}

	refreshToken := s.sessionStore.RegisterRefreshToken(user.Email)

	return &jwt_generator.Tokens{
		Token:        accessToken,
		RefreshToken: refreshToken,
		Permissions:  user.Permissions,
		Roles:        user.Roles,
	}, nil
}
