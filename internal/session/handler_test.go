//go:build unit

package session

import (
	"bytes"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"watchlist-api/pkg/cerror"
	"watchlist-api/pkg/config"
	"watchlist-api/pkg/jwt_generator"
	"watchlist-api/pkg/server"
)

const TestRefreshToken = "7a0e5a94-0d5d-4a3e-b25f-0a54dcb1b2c5"

func setupJwtGenerator(t *testing.T) jwt_generator.JwtGenerator {
	t.Helper()

	jwtGenerator, err := jwt_generator.NewJwtGenerator(config.JwtConfig{
		PrivateKey: TestPrivateKey,
		PublicKey:  TestPublicKey,
	})
	require.NoError(t, err)

	return jwtGenerator
}

func setupApp(handler server.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: cerror.Middleware,
	})
	handler.RegisterRoutes(app)
	return app
}

func TestNewHandler(t *testing.T) {
	sessionHandler := NewHandler(nil, nil)

	assert.Implements(t, (*server.Handler)(nil), sessionHandler)
}

func TestHandler_CreateSession(t *testing.T) {
	TestCredentials := CredentialsPayload{
		Email:    TestEmail,
		Password: TestPassword,
	}

	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path", func(t *testing.T) {
		mockSessionService := NewMockService(mockController)
		mockSessionService.EXPECT().CreateSession(gomock.Any(), &TestCredentials).Return(&jwt_generator.Tokens{
			Token:        "access-token",
			RefreshToken: TestRefreshToken,
			Permissions:  []string{"movies.list"},
			Roles:        []string{"administrator"},
		}, nil)

		app := setupApp(NewHandler(mockSessionService, setupJwtGenerator(t)))

		reqBody, err := json.Marshal(&TestCredentials)
		require.NoError(t, err)

		req := httptest.NewRequest(fiber.MethodPost, "/api/sessions", bytes.NewReader(reqBody))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("when body cant parsing should return error", func(t *testing.T) {
		app := setupApp(NewHandler(nil, setupJwtGenerator(t)))

		req := httptest.NewRequest(fiber.MethodPost, "/api/sessions", strings.NewReader(`"invalid":"body"`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("when email is not valid should return error", func(t *testing.T) {
		app := setupApp(NewHandler(nil, setupJwtGenerator(t)))

		reqBody, err := json.Marshal(&CredentialsPayload{
			Email:    "invalid-mail.com",
			Password: TestPassword,
		})
		require.NoError(t, err)

		req := httptest.NewRequest(fiber.MethodPost, "/api/sessions", bytes.NewReader(reqBody))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("when session service return error should return it", func(t *testing.T) {
		mockSessionService := NewMockService(mockController)
		mockSessionService.EXPECT().CreateSession(gomock.Any(), &TestCredentials).Return(
			nil,
			cerror.NewError(fiber.StatusUnauthorized, "E-mail or password incorrect."),
		)

		app := setupApp(NewHandler(mockSessionService, setupJwtGenerator(t)))

		reqBody, err := json.Marshal(&TestCredentials)
		require.NoError(t, err)

		req := httptest.NewRequest(fiber.MethodPost, "/api/sessions", bytes.NewReader(reqBody))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestHandler_RefreshSession(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path with expired access token", func(t *testing.T) {
		jwtGenerator := setupJwtGenerator(t)

		expiredAt := time.Now().UTC().Add(-5 * time.Minute)
		expiredAccessToken, err := jwtGenerator.GenerateAccessToken(expiredAt, TestEmail, nil, nil)
		require.NoError(t, err)

		mockSessionService := NewMockService(mockController)
		mockSessionService.EXPECT().RefreshSession(gomock.Any(), TestEmail, TestRefreshToken).Return(&jwt_generator.Tokens{
			Token:        "new-access-token",
			RefreshToken: "new-refresh-token",
		}, nil)

		app := setupApp(NewHandler(mockSessionService, jwtGenerator))

		reqBody, err := json.Marshal(&RefreshPayload{RefreshToken: TestRefreshToken})
		require.NoError(t, err)

		req := httptest.NewRequest(fiber.MethodPost, "/api/refresh", bytes.NewReader(reqBody))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		req.Header.Set(fiber.HeaderAuthorization, fmt.Sprintf("Bearer %s", expiredAccessToken))
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("when authorization header is absent should return unauthorized", func(t *testing.T) {
		app := setupApp(NewHandler(nil, setupJwtGenerator(t)))

		req := httptest.NewRequest(fiber.MethodPost, "/api/refresh", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("when bearer token is not parseable should return unauthorized", func(t *testing.T) {
		app := setupApp(NewHandler(nil, setupJwtGenerator(t)))

		req := httptest.NewRequest(fiber.MethodPost, "/api/refresh", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer not-a-jwt")
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestHandler_GetUserInfo(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path", func(t *testing.T) {
		jwtGenerator := setupJwtGenerator(t)

		expiresAt := time.Now().UTC().Add(5 * time.Minute)
		accessToken, err := jwtGenerator.GenerateAccessToken(expiresAt, TestEmail, nil, nil)
		require.NoError(t, err)

		mockSessionService := NewMockService(mockController)
		mockSessionService.EXPECT().GetUserInfo(gomock.Any(), TestEmail).Return(&UserInfo{
			Email:       TestEmail,
			Permissions: []string{"movies.list"},
			Roles:       []string{"administrator"},
		}, nil)

		app := setupApp(NewHandler(mockSessionService, jwtGenerator))

		req := httptest.NewRequest(fiber.MethodGet, "/api/me", nil)
		req.Header.Set(fiber.HeaderAuthorization, fmt.Sprintf("Bearer %s", accessToken))
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("when access token is expired should return unauthorized", func(t *testing.T) {
		jwtGenerator := setupJwtGenerator(t)

		expiredAt := time.Now().UTC().Add(-5 * time.Minute)
		expiredAccessToken, err := jwtGenerator.GenerateAccessToken(expiredAt, TestEmail, nil, nil)
		require.NoError(t, err)

		app := setupApp(NewHandler(nil, jwtGenerator))

		req := httptest.NewRequest(fiber.MethodGet, "/api/me", nil)
		req.Header.Set(fiber.HeaderAuthorization, fmt.Sprintf("Bearer %s", expiredAccessToken))
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("when authorization header is absent should return unauthorized", func(t *testing.T) {
		app := setupApp(NewHandler(nil, setupJwtGenerator(t)))

		req := httptest.NewRequest(fiber.MethodGet, "/api/me", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}
