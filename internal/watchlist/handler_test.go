//go:build unit

package watchlist

import (
	"bytes"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"watchlist-api/pkg/cerror"
	"watchlist-api/pkg/server"
)

func setupApp(handler server.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: cerror.Middleware,
	})
	handler.RegisterRoutes(app)
	return app
}

func TestNewHandler(t *testing.T) {
	watchlistHandler := NewHandler(nil)

	assert.Implements(t, (*server.Handler)(nil), watchlistHandler)
}

func TestHandler_GetWatchlists(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	mockWatchlistService := NewMockService(mockController)
	mockWatchlistService.EXPECT().GetWatchlists(gomock.Any()).Return([]WatchlistDocument{
		{Id: TestWatchlistId, Name: TestWatchlistName, Movies: []string{}},
	}, nil)

	app := setupApp(NewHandler(mockWatchlistService))

	req := httptest.NewRequest(fiber.MethodGet, "/api/watchlists", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestHandler_GetWatchlistById(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path", func(t *testing.T) {
		mockWatchlistService := NewMockService(mockController)
		mockWatchlistService.EXPECT().
			GetWatchlistById(gomock.Any(), TestWatchlistId).
			Return(&WatchlistDocument{Id: TestWatchlistId, Name: TestWatchlistName}, nil)

		app := setupApp(NewHandler(mockWatchlistService))

		req := httptest.NewRequest(fiber.MethodGet, fmt.Sprintf("/api/watchlists/%s", TestWatchlistId), nil)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("when watchlist does not exist should return not found", func(t *testing.T) {
		mockWatchlistService := NewMockService(mockController)
		mockWatchlistService.EXPECT().
			GetWatchlistById(gomock.Any(), TestWatchlistId).
			Return(nil, cerror.NewError(fiber.StatusNotFound, "Watchlist not found"))

		app := setupApp(NewHandler(mockWatchlistService))

		req := httptest.NewRequest(fiber.MethodGet, fmt.Sprintf("/api/watchlists/%s", TestWatchlistId), nil)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var errorResponse cerror.ErrorResponse
		require.NoError(t, json.Unmarshal(body, &errorResponse))
		assert.Equal(t, "Watchlist not found", errorResponse.Message)
	})
}

func TestHandler_AddWatchlist(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path", func(t *testing.T) {
		mockWatchlistService := NewMockService(mockController)
		mockWatchlistService.EXPECT().
			AddWatchlist(gomock.Any(), &CreateWatchlistPayload{Name: TestWatchlistName}).
			Return(&WatchlistDocument{Id: TestWatchlistId, Name: TestWatchlistName, Movies: []string{}}, nil)

		app := setupApp(NewHandler(mockWatchlistService))

		requestBody, err := json.Marshal(&CreateWatchlistPayload{Name: TestWatchlistName})
		require.NoError(t, err)

		req := httptest.NewRequest(fiber.MethodPost, "/api/watchlists", bytes.NewReader(requestBody))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	})

	t.Run("when name is missing should return bad request", func(t *testing.T) {
		app := setupApp(NewHandler(nil))

		req := httptest.NewRequest(
			fiber.MethodPost,
			"/api/watchlists",
			strings.NewReader(`{"description": "no name"}`),
		)
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("when body is not json should return bad request", func(t *testing.T) {
		app := setupApp(NewHandler(nil))

		req := httptest.NewRequest(fiber.MethodPost, "/api/watchlists", strings.NewReader("not-json"))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestHandler_UpdateWatchlist(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	mockWatchlistService := NewMockService(mockController)
	mockWatchlistService.EXPECT().
		UpdateWatchlist(gomock.Any(), TestWatchlistId, &UpdateWatchlistPayload{Name: "Renamed"}).
		Return(&WatchlistDocument{Id: TestWatchlistId, Name: "Renamed"}, nil)

	app := setupApp(NewHandler(mockWatchlistService))

	requestBody, err := json.Marshal(&UpdateWatchlistPayload{Name: "Renamed"})
	require.NoError(t, err)

	req := httptest.NewRequest(
		fiber.MethodPut,
		fmt.Sprintf("/api/watchlists/%s", TestWatchlistId),
		bytes.NewReader(requestBody),
	)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, _ := app.Test(req)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestHandler_DeleteWatchlist(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	mockWatchlistService := NewMockService(mockController)
	mockWatchlistService.EXPECT().
		DeleteWatchlist(gomock.Any(), TestWatchlistId).
		Return(nil)

	app := setupApp(NewHandler(mockWatchlistService))

	req := httptest.NewRequest(fiber.MethodDelete, fmt.Sprintf("/api/watchlists/%s", TestWatchlistId), nil)
	resp, _ := app.Test(req)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Watchlist deleted successfully")
}

func TestHandler_GetWatchlistWithMovies(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	mockWatchlistService := NewMockService(mockController)
	mockWatchlistService.EXPECT().
		GetWatchlistWithMovies(gomock.Any(), TestWatchlistId).
		Return(&WatchlistWithMovies{Id: TestWatchlistId, Name: TestWatchlistName}, nil)

	app := setupApp(NewHandler(mockWatchlistService))

	req := httptest.NewRequest(fiber.MethodGet, fmt.Sprintf("/api/watchlists/%s/movies", TestWatchlistId), nil)
	resp, _ := app.Test(req)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestHandler_AddMovies(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path", func(t *testing.T) {
		mockWatchlistService := NewMockService(mockController)
		mockWatchlistService.EXPECT().
			AddMovies(gomock.Any(), TestWatchlistId, []string{"tt001", "tt002"}).
			Return(&WatchlistDocument{
				Id:     TestWatchlistId,
				Movies: []string{"tt001", "tt002"},
			}, nil)

		app := setupApp(NewHandler(mockWatchlistService))

		req := httptest.NewRequest(
			fiber.MethodPut,
			fmt.Sprintf("/api/watchlists/%s/movies", TestWatchlistId),
			strings.NewReader(`{"movieIds": ["tt001", "tt002"]}`),
		)
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("when movie id list is empty should return bad request", func(t *testing.T) {
		app := setupApp(NewHandler(nil))

		req := httptest.NewRequest(
			fiber.MethodPut,
			fmt.Sprintf("/api/watchlists/%s/movies", TestWatchlistId),
			strings.NewReader(`{"movieIds": []}`),
		)
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("when every movie is a duplicate should surface the duplicate code", func(t *testing.T) {
		mockWatchlistService := NewMockService(mockController)
		mockWatchlistService.EXPECT().
			AddMovies(gomock.Any(), TestWatchlistId, []string{"tt001"}).
			Return(nil, cerror.NewError(
				fiber.StatusBadRequest,
				"Movie Already in Watchlist",
			).SetCode(cerror.CodeDuplicateMovies))

		app := setupApp(NewHandler(mockWatchlistService))

		req := httptest.NewRequest(
			fiber.MethodPut,
			fmt.Sprintf("/api/watchlists/%s/movies", TestWatchlistId),
			strings.NewReader(`{"movieIds": ["tt001"]}`),
		)
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var errorResponse cerror.ErrorResponse
		require.NoError(t, json.Unmarshal(body, &errorResponse))
		assert.Equal(t, cerror.CodeDuplicateMovies, errorResponse.Code)
		assert.Equal(t, "Movie Already in Watchlist", errorResponse.Message)
	})
}

func TestHandler_RemoveMovie(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path", func(t *testing.T) {
		mockWatchlistService := NewMockService(mockController)
		mockWatchlistService.EXPECT().
			RemoveMovie(gomock.Any(), TestWatchlistId, "tt001").
			Return(&WatchlistDocument{Id: TestWatchlistId, Movies: []string{}}, nil)

		app := setupApp(NewHandler(mockWatchlistService))

		req := httptest.NewRequest(
			fiber.MethodPut,
			fmt.Sprintf("/api/watchlists/%s/moviesId", TestWatchlistId),
			strings.NewReader(`{"movieId": "tt001"}`),
		)
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("when movie id is missing should return bad request", func(t *testing.T) {
		app := setupApp(NewHandler(nil))

		req := httptest.NewRequest(
			fiber.MethodPut,
			fmt.Sprintf("/api/watchlists/%s/moviesId", TestWatchlistId),
			strings.NewReader(`{}`),
		)
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("when movie is not in watchlist should return not found", func(t *testing.T) {
		mockWatchlistService := NewMockService(mockController)
		mockWatchlistService.EXPECT().
			RemoveMovie(gomock.Any(), TestWatchlistId, "tt999").
			Return(nil, cerror.NewError(fiber.StatusNotFound, "Movie not found in watchlist"))

		app := setupApp(NewHandler(mockWatchlistService))

		req := httptest.NewRequest(
			fiber.MethodPut,
			fmt.Sprintf("/api/watchlists/%s/moviesId", TestWatchlistId),
			strings.NewReader(`{"movieId": "tt999"}`),
		)
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var errorResponse cerror.ErrorResponse
		require.NoError(t, json.Unmarshal(body, &errorResponse))
		assert.Equal(t, "Movie not found in watchlist", errorResponse.Message)
	})
}
