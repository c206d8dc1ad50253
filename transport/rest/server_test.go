package rest

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-hub/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hub/internal/repository"
	"github.com/rocketscienceinc/tictactoe-hub/internal/usecase"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	coordinator := usecase.NewMatchCoordinator(logger, repository.NewMemoryMatchRepository())

	return New(logger, coordinator, []string{"http://localhost:3000"})
}

func doJSON(t *testing.T, server *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))

	return v
}

func createMatch(t *testing.T, server *Server, playerID string) entity.Match {
	t.Helper()

	rec := doJSON(t, server, http.MethodPost, "/api/matches", gin.H{"playerId": playerID, "playerName": playerID})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	return decode[entity.Match](t, rec)
}

func TestPing(t *testing.T) {
	server := newTestServer(t)

	rec := doJSON(t, server, http.MethodGet, "/ping", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestMatchesAPI(t *testing.T) {
	t.Run("Create and list", func(t *testing.T) {
		server := newTestServer(t)

		// Given: a created match
		match := createMatch(t, server, "alice")
		assert.Equal(t, entity.StatusWaiting, match.Status)
		assert.Equal(t, "X", match.Player1.Symbol)

		// When: the lobby is listed
		rec := doJSON(t, server, http.MethodGet, "/api/matches", nil)

		// Then: the match is open
		require.Equal(t, http.StatusOK, rec.Code)
		body := decode[struct{ Matches []entity.Match }](t, rec)
		require.Len(t, body.Matches, 1)
		assert.Equal(t, match.GameID, body.Matches[0].GameID)
	})

	t.Run("Create without player id", func(t *testing.T) {
		server := newTestServer(t)

		rec := doJSON(t, server, http.MethodPost, "/api/matches", gin.H{"playerName": "anon"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Join, move and conflicts", func(t *testing.T) {
		server := newTestServer(t)
		match := createMatch(t, server, "alice")
		base := "/api/matches/" + match.GameID

		rec := doJSON(t, server, http.MethodPost, base+"/join", gin.H{"playerId": "bob", "playerName": "Bob"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, entity.StatusPlaying, decode[entity.Match](t, rec).Status)

		// a third player is turned away
		rec = doJSON(t, server, http.MethodPost, base+"/join", gin.H{"playerId": "carol"})
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "game-not-waiting", decode[errorResponse](t, rec).Code)

		// out of turn
		rec = doJSON(t, server, http.MethodPost, base+"/moves", gin.H{"playerId": "bob", "position": 0})
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "not-your-turn", decode[errorResponse](t, rec).Code)

		// cell zero is a valid position
		rec = doJSON(t, server, http.MethodPost, base+"/moves", gin.H{"playerId": "alice", "position": 0})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		moved := decode[entity.Match](t, rec)
		assert.Equal(t, "X", moved.Board[0])
		assert.Equal(t, "bob", moved.CurrentTurn)

		rec = doJSON(t, server, http.MethodPost, base+"/moves", gin.H{"playerId": "bob", "position": 9})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid-position", decode[errorResponse](t, rec).Code)

		rec = doJSON(t, server, http.MethodPost, base+"/moves", gin.H{"playerId": "bob"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Get and leave", func(t *testing.T) {
		server := newTestServer(t)
		match := createMatch(t, server, "alice")
		path := "/api/matches/" + match.GameID

		rec := doJSON(t, server, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, server, http.MethodDelete, path, nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = doJSON(t, server, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "game-not-found", decode[errorResponse](t, rec).Code)
	})
}
