package websocket

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/rocketscienceinc/tictactoe-hub/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hub/internal/repository"
	"github.com/rocketscienceinc/tictactoe-hub/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-hub/testing/suite"
)

const readTimeout = 5 * time.Second

func newTestServer(t *testing.T) string {
	t.Helper()

	_, db := suite.NewSQLite(t)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	coordinator := usecase.NewMatchCoordinator(logger, repository.NewMemoryMatchRepository())
	locals := usecase.NewLocalGames(logger, repository.NewPreferenceRepository(db.Connection), 0)

	srv := httptest.NewServer(New(logger, coordinator, locals, nil).Handler())
	t.Cleanup(srv.Close)

	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), readTimeout)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close(websocket.StatusNormalClosure, "") })

	return conn
}

func send(t *testing.T, conn *websocket.Conn, action string, payload any) {
	t.Helper()

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), readTimeout)
	defer cancel()

	require.NoError(t, wsjson.Write(ctx, conn, Message{Action: action, Payload: raw}))
}

// readUntil skips messages until one with action satisfies cond.
func readUntil[T any](t *testing.T, conn *websocket.Conn, action string, cond func(T) bool) T {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), readTimeout)
	defer cancel()

	for {
		var msg Message
		require.NoError(t, wsjson.Read(ctx, conn, &msg), "waiting for %s", action)

		if msg.Action != action {
			continue
		}

		var payload T
		require.NoError(t, json.Unmarshal(msg.Payload, &payload))

		if cond == nil || cond(payload) {
			return payload
		}
	}
}

func connect(t *testing.T, conn *websocket.Conn, playerID, name string) ResponsePayload {
	t.Helper()

	send(t, conn, actionConnect, RequestPayload{PlayerID: playerID, PlayerName: name})

	return readUntil[ResponsePayload](t, conn, actionConnect, nil)
}

func marks(board [9]string, symbol string) int {
	n := 0
	for _, cell := range board {
		if cell == symbol {
			n++
		}
	}

	return n
}

func TestServer_Errors(t *testing.T) {
	conn := dial(t, newTestServer(t))

	// When: a local move is sent before connect
	send(t, conn, actionLocalMove, RequestPayload{Position: new(int)})

	// Then: the client is told to connect
	errPayload := readUntil[ErrorPayload](t, conn, actionError, nil)
	assert.Equal(t, "not-connected", errPayload.Code)
	assert.Equal(t, actionLocalMove, errPayload.Action)

	// When: an unknown action is sent
	send(t, conn, "dance", nil)

	errPayload = readUntil[ErrorPayload](t, conn, actionError, nil)
	assert.Equal(t, "unknown-action", errPayload.Code)
}

func TestServer_MalformedMessage(t *testing.T) {
	conn := dial(t, newTestServer(t))

	ctx, cancel := context.WithTimeout(context.Background(), readTimeout)
	defer cancel()

	// When: a frame that is not JSON is sent
	require.NoError(t, conn.Write(ctx, websocket.MessageText, []byte("{not json")))

	// Then: the client gets an error and the connection stays open
	errPayload := readUntil[ErrorPayload](t, conn, actionError, nil)
	assert.Equal(t, "malformed-message", errPayload.Code)

	// When: a valid action follows on the same connection
	resp := connect(t, conn, "alice", "Alice")

	// Then: it is served normally
	assert.Equal(t, "alice", resp.PlayerID)
}

func TestServer_LocalGame(t *testing.T) {
	conn := dial(t, newTestServer(t))

	// Given: a connected player without an id
	resp := connect(t, conn, "", "Alice")
	require.NotEmpty(t, resp.PlayerID)
	require.NotNil(t, resp.Local)
	assert.Equal(t, usecase.AwaitingHumanMove, resp.Local.State)

	// When: the human moves
	position := 4
	send(t, conn, actionLocalMove, RequestPayload{Position: &position})

	// Then: feedback for both moves arrives and the state reflects the reply
	first := readUntil[FeedbackPayload](t, conn, actionFeedback, nil)
	assert.Equal(t, usecase.FeedbackFirstPlayer, first.Event)
	assert.Equal(t, sourceLocal, first.Source)

	state := readUntil[ResponsePayload](t, conn, actionLocalState, nil)
	require.NotNil(t, state.Local)
	assert.Equal(t, "X", state.Local.Board[4])
	assert.Equal(t, 1, marks(state.Local.Board, "O"))

	// When: the same cell is played again
	send(t, conn, actionLocalMove, RequestPayload{Position: &position})

	errPayload := readUntil[ErrorPayload](t, conn, actionError, nil)
	assert.Equal(t, "position-occupied", errPayload.Code)

	// When: the difficulty is changed
	send(t, conn, actionLocalDifficulty, RequestPayload{Difficulty: "easy"})

	state = readUntil[ResponsePayload](t, conn, actionLocalState, func(p ResponsePayload) bool {
		return p.Local != nil && p.Local.Difficulty == "easy"
	})
	assert.Equal(t, "easy", state.Local.Difficulty)
}

func TestServer_Match(t *testing.T) {
	url := newTestServer(t)

	alice := dial(t, url)
	bob := dial(t, url)

	connect(t, alice, "alice", "Alice")
	connect(t, bob, "bob", "Bob")

	// Given: bob watches the lobby
	send(t, bob, actionLobbyWatch, nil)
	readUntil[LobbyPayload](t, bob, actionLobbyUpdate, nil)

	// When: alice creates a match
	send(t, alice, actionMatchCreate, nil)
	created := readUntil[ResponsePayload](t, alice, actionMatchCreate, nil)
	require.NotNil(t, created.Match)
	gameID := created.GameID

	// Then: it shows up in bob's lobby
	readUntil[LobbyPayload](t, bob, actionLobbyUpdate, func(p LobbyPayload) bool {
		return len(p.Matches) == 1 && p.Matches[0].GameID == gameID
	})

	// When: bob joins
	send(t, bob, actionMatchJoin, RequestPayload{GameID: gameID})
	readUntil[ResponsePayload](t, bob, actionMatchJoin, nil)

	// Then: alice sees the match start on her turn
	view := readUntil[ResponsePayload](t, alice, actionMatchUpdate, func(p ResponsePayload) bool {
		return p.View != nil && p.View.Match != nil && p.View.Match.Status == entity.StatusPlaying
	}).View
	assert.True(t, view.IsMyTurn)
	assert.Equal(t, "Bob", view.OpponentName)

	// When: bob moves out of turn
	position := 0
	send(t, bob, actionMatchMove, RequestPayload{GameID: gameID, Position: &position})
	errPayload := readUntil[ErrorPayload](t, bob, actionError, nil)
	assert.Equal(t, "not-your-turn", errPayload.Code)

	// When: alice moves
	send(t, alice, actionMatchMove, RequestPayload{GameID: gameID, Position: &position})

	// Then: bob hears the opponent and gets the turn
	fb := readUntil[FeedbackPayload](t, bob, actionFeedback, func(p FeedbackPayload) bool {
		return p.Source == sourceMatch
	})
	assert.Equal(t, usecase.FeedbackSecondPlayer, fb.Event)

	view = readUntil[ResponsePayload](t, bob, actionMatchUpdate, func(p ResponsePayload) bool {
		return p.View != nil && p.View.IsMyTurn
	}).View
	assert.Equal(t, "X", view.Match.Board[0])

	// When: alice leaves
	send(t, alice, actionMatchLeave, RequestPayload{GameID: gameID})
	readUntil[ResponsePayload](t, alice, actionMatchLeave, nil)

	// Then: bob's view reports the removal
	readUntil[ResponsePayload](t, bob, actionMatchUpdate, func(p ResponsePayload) bool {
		return p.View != nil && p.View.Removed
	})
}
