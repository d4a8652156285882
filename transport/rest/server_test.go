package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockGamePlay struct {
	mock.Mock
}

func (that *mockGamePlay) NewGame(ctx context.Context, botFirst bool) (*entity.Game, error) {
	args := that.Called(ctx, botFirst)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (that *mockGamePlay) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	args := that.Called(ctx, gameID)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (that *mockGamePlay) RestartGame(ctx context.Context, gameID string) (*entity.Game, error) {
	args := that.Called(ctx, gameID)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (that *mockGamePlay) DeleteGame(ctx context.Context, gameID string) error {
	return that.Called(ctx, gameID).Error(0)
}

func (that *mockGamePlay) MakeTurn(ctx context.Context, gameID string, move entity.Move) (*entity.Game, error) {
	args := that.Called(ctx, gameID, move)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func newTestServer(t *testing.T) (*httptest.Server, *mockGamePlay) {
	t.Helper()

	gamePlay := &mockGamePlay{}
	t.Cleanup(func() { gamePlay.AssertExpectations(t) })

	server := New(slog.New(slog.NewJSONHandler(io.Discard, nil)), gamePlay)
	httpServer := httptest.NewServer(server.Router())
	t.Cleanup(httpServer.Close)

	return httpServer, gamePlay
}

func doRequest(t *testing.T, method, url, body string) *http.Response {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), method, url, strings.NewReader(body))
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func decodeGame(t *testing.T, resp *http.Response) entity.Game {
	t.Helper()

	var game entity.Game
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&game))

	return game
}

func TestServer_Ping(t *testing.T) {
	server, _ := newTestServer(t)

	resp := doRequest(t, http.MethodGet, server.URL+"/ping", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))
}

func TestServer_CreateGame(t *testing.T) {
	t.Run("Creates a game with the bot opening", func(t *testing.T) {
		// Given: the service creates a game where the bot played first
		server, gamePlay := newTestServer(t)
		game, err := entity.NewGame("g1", entity.PlayerX, true)
		require.NoError(t, err)
		require.NoError(t, game.MakeTurn(entity.PlayerX, entity.Move{Row: 1, Col: 1}))
		game.LastBotMove = &entity.Move{Row: 1, Col: 1}

		gamePlay.On("NewGame", mock.Anything, true).Return(game, nil).Once()

		// When: posting a new game request
		resp := doRequest(t, http.MethodPost, server.URL+"/games", `{"bot_first": true}`)

		// Then: the game comes back as JSON
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		got := decodeGame(t, resp)
		assert.Equal(t, *game, got)
	})

	t.Run("Empty body means the human opens", func(t *testing.T) {
		server, gamePlay := newTestServer(t)
		game, err := entity.NewGame("g1", entity.PlayerX, false)
		require.NoError(t, err)

		gamePlay.On("NewGame", mock.Anything, false).Return(game, nil).Once()

		resp := doRequest(t, http.MethodPost, server.URL+"/games", "")

		require.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("Malformed body is rejected", func(t *testing.T) {
		server, _ := newTestServer(t)

		resp := doRequest(t, http.MethodPost, server.URL+"/games", "{")

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestServer_MakeTurn(t *testing.T) {
	t.Run("Returns the game after both moves", func(t *testing.T) {
		server, gamePlay := newTestServer(t)
		game, err := entity.NewGame("g1", entity.PlayerX, false)
		require.NoError(t, err)

		gamePlay.On("MakeTurn", mock.Anything, "g1", entity.Move{Row: 2, Col: 1}).Return(game, nil).Once()

		resp := doRequest(t, http.MethodPost, server.URL+"/games/g1/turns", `{"row": 2, "col": 1}`)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "g1", decodeGame(t, resp).ID)
	})

	errorCases := map[string]struct {
		err    error
		status int
	}{
		"occupied cell":  {err: apperror.ErrCellOccupied, status: http.StatusBadRequest},
		"out of range":   {err: apperror.ErrInvalidCell, status: http.StatusBadRequest},
		"finished game":  {err: apperror.ErrGameFinished, status: http.StatusConflict},
		"not your turn":  {err: apperror.ErrNotYourTurn, status: http.StatusConflict},
		"unknown game":   {err: apperror.ErrGameNotFound, status: http.StatusNotFound},
		"storage outage": {err: errors.New("redis down"), status: http.StatusInternalServerError},
	}

	for name, tc := range errorCases {
		t.Run("Maps "+name, func(t *testing.T) {
			server, gamePlay := newTestServer(t)

			gamePlay.On("MakeTurn", mock.Anything, "g1", entity.Move{Row: 0, Col: 0}).
				Return(nil, fmt.Errorf("failed to make turn: %w", tc.err)).Once()

			resp := doRequest(t, http.MethodPost, server.URL+"/games/g1/turns", `{"row": 0, "col": 0}`)

			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

func TestServer_GetRestartDelete(t *testing.T) {
	server, gamePlay := newTestServer(t)
	game, err := entity.NewGame("g1", entity.PlayerO, false)
	require.NoError(t, err)

	gamePlay.On("GetGame", mock.Anything, "g1").Return(game, nil).Once()
	gamePlay.On("RestartGame", mock.Anything, "g1").Return(game, nil).Once()
	gamePlay.On("DeleteGame", mock.Anything, "g1").Return(nil).Once()

	resp := doRequest(t, http.MethodGet, server.URL+"/games/g1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, entity.PlayerO, decodeGame(t, resp).BotMark)

	resp = doRequest(t, http.MethodPost, server.URL+"/games/g1/restart", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, http.MethodDelete, server.URL+"/games/g1", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}
