package websocket

import (
	"context"
	"sync"

	"nhooyr.io/websocket"

	"github.com/rocketscienceinc/tictactoe-hub/internal/usecase"
)

const lobbyWatchKey = "lobby"

// session is the state of one connection. Subscriptions die with it.
type session struct {
	conn *websocket.Conn
	send chan Message

	mu         sync.Mutex
	playerID   string
	playerName string
	local      *usecase.LocalGame
	watches    map[string]context.CancelFunc
}

func newSession(conn *websocket.Conn) *session {
	return &session{
		conn:    conn,
		send:    make(chan Message, sendBuffer),
		watches: make(map[string]context.CancelFunc),
	}
}

func (that *session) PlayerID() string {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.playerID
}

func (that *session) identity() (string, string, bool) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.playerID, that.playerName, that.playerID != ""
}

// bind sets the player and local game, closing the game of a previous connect.
func (that *session) bind(playerID, playerName string, local *usecase.LocalGame) {
	that.mu.Lock()
	previous := that.local
	that.playerID, that.playerName, that.local = playerID, playerName, local
	that.mu.Unlock()

	if previous != nil {
		previous.Close()
	}
}

func (that *session) localGame() *usecase.LocalGame {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.local
}

// watch registers a subscription under key, replacing an older one.
func (that *session) watch(ctx context.Context, key string) context.Context {
	watchCtx, cancel := context.WithCancel(ctx)

	that.mu.Lock()
	if previous, ok := that.watches[key]; ok {
		previous()
	}
	that.watches[key] = cancel
	that.mu.Unlock()

	return watchCtx
}

// unwatch cancels the subscription under key and reports whether there was one.
func (that *session) unwatch(key string) bool {
	that.mu.Lock()
	cancel, ok := that.watches[key]
	delete(that.watches, key)
	that.mu.Unlock()

	if ok {
		cancel()
	}

	return ok
}

func (that *session) close() {
	that.mu.Lock()
	watches := that.watches
	that.watches = make(map[string]context.CancelFunc)
	local := that.local
	that.mu.Unlock()

	for _, cancel := range watches {
		cancel()
	}

	if local != nil {
		local.Close()
	}
}

func matchWatchKey(gameID string) string {
	return "match:" + gameID
}
