package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-hub/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hub/internal/usecase"
)

// Inbound actions.
const (
	actionConnect          = "connect"
	actionLocalNew         = "local:new"
	actionLocalMove        = "local:move"
	actionLocalDifficulty  = "local:difficulty"
	actionLocalSound       = "local:sound"
	actionLocalScoresReset = "local:scores:reset"
	actionMatchCreate      = "match:create"
	actionMatchJoin        = "match:join"
	actionMatchMove        = "match:move"
	actionMatchLeave       = "match:leave"
	actionMatchWatch       = "match:watch"
	actionMatchUnwatch     = "match:unwatch"
	actionLobbyWatch       = "lobby:watch"
	actionLobbyUnwatch     = "lobby:unwatch"
)

// Pushed actions.
const (
	actionLocalState  = "local:state"
	actionMatchUpdate = "match:update"
	actionLobbyUpdate = "lobby:update"
	actionFeedback    = "feedback"
	actionError       = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type RequestPayload struct {
	PlayerID   string `json:"playerId,omitempty"`
	PlayerName string `json:"playerName,omitempty"`
	GameID     string `json:"gameId,omitempty"`
	Position   *int   `json:"position,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
	Enabled    *bool  `json:"enabled,omitempty"`
}

type ResponsePayload struct {
	PlayerID   string                 `json:"playerId,omitempty"`
	PlayerName string                 `json:"playerName,omitempty"`
	GameID     string                 `json:"gameId,omitempty"`
	Match      *entity.Match          `json:"match,omitempty"`
	View       *usecase.MatchView     `json:"view,omitempty"`
	Local      *usecase.LocalSnapshot `json:"local,omitempty"`
}

type LobbyPayload struct {
	Matches []*entity.Match `json:"matches"`
}

type FeedbackPayload struct {
	Event  string `json:"event"`
	Source string `json:"source"`
	GameID string `json:"gameId,omitempty"`
}

type ErrorPayload struct {
	Action string `json:"action,omitempty"`
	Code   string `json:"code"`
	Error  string `json:"error"`
}
