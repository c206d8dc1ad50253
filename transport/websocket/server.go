package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/rocketscienceinc/tictactoe-hub/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hub/internal/usecase"
)

const (
	pingInterval    = 15 * time.Second
	writeTimeout    = 5 * time.Second
	sendBuffer      = 64
	shutdownTimeout = 5 * time.Second
)

type matchUseCase interface {
	CreateMatch(ctx context.Context, creatorName, creatorID string) (*entity.Match, error)
	JoinMatch(ctx context.Context, matchID, joinerName, joinerID string) (*entity.Match, error)
	SubmitMove(ctx context.Context, matchID string, position int, playerID string) (*entity.Match, error)
	LeaveMatch(ctx context.Context, matchID string) error
	WatchOpenMatches(ctx context.Context) <-chan entity.LobbyEvent
	Follow(ctx context.Context, matchID, viewerID string, sink usecase.FeedbackSink) <-chan usecase.MatchView
}

type localGames interface {
	Open(ctx context.Context, profile string, opts ...usecase.LocalOption) (*usecase.LocalGame, error)
}

type handlerFunc func(ctx context.Context, sess *session, msg *Message) error

type Server struct {
	logger *slog.Logger

	matches matchUseCase
	locals  localGames

	originPatterns []string

	handlers map[string]handlerFunc

	// sessions tracks hijacked connections, which http.Server.Shutdown does not wait for.
	sessions sync.WaitGroup
}

func New(logger *slog.Logger, matches matchUseCase, locals localGames, allowedOrigins []string) *Server {
	server := &Server{
		logger:         logger.With("component", "websocket"),
		matches:        matches,
		locals:         locals,
		originPatterns: allowedOrigins,
	}

	server.handlers = map[string]handlerFunc{
		actionConnect:          server.handleConnect,
		actionLocalNew:         server.handleLocalNew,
		actionLocalMove:        server.handleLocalMove,
		actionLocalDifficulty:  server.handleLocalDifficulty,
		actionLocalSound:       server.handleLocalSound,
		actionLocalScoresReset: server.handleLocalScoresReset,
		actionMatchCreate:      server.handleMatchCreate,
		actionMatchJoin:        server.handleMatchJoin,
		actionMatchMove:        server.handleMatchMove,
		actionMatchLeave:       server.handleMatchLeave,
		actionMatchWatch:       server.handleMatchWatch,
		actionMatchUnwatch:     server.handleMatchUnwatch,
		actionLobbyWatch:       server.handleLobbyWatch,
		actionLobbyUnwatch:     server.handleLobbyUnwatch,
	}

	return server
}

func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.serveWS)

	return mux
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down WebSocket server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	// ListenAndServe returns as soon as Shutdown starts; wait for in-flight handlers.
	<-shutdownDone
	that.sessions.Wait()

	return nil
}

func (that *Server) serveWS(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "serveWS")

	// counted before the hijack, while Shutdown still tracks the connection
	that.sessions.Add(1)
	defer that.sessions.Done()

	conn, err := websocket.Accept(writer, req, &websocket.AcceptOptions{
		OriginPatterns: that.originPatterns,
	})
	if err != nil {
		log.Warn("failed to accept websocket", "error", err)
		return
	}

	ctx, cancel := context.WithCancel(req.Context())
	defer cancel()

	sess := newSession(conn)
	defer sess.close()

	go func() {
		that.writeLoop(ctx, sess)
		cancel()
	}()

	log.Info("WebSocket connection established")

	err = that.handleMessages(ctx, sess)

	switch status := websocket.CloseStatus(err); {
	case status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway:
		log.Info("WebSocket connection closed", "player_id", sess.PlayerID())
	case errors.Is(err, context.Canceled):
		log.Info("WebSocket connection cancelled", "player_id", sess.PlayerID())
	default:
		log.Warn("WebSocket connection dropped", "player_id", sess.PlayerID(), "error", err)
	}

	_ = conn.Close(websocket.StatusNormalClosure, "bye")
}

// handleMessages - processes messages from the client until the connection fails.
func (that *Server) handleMessages(ctx context.Context, sess *session) error {
	log := that.logger.With("method", "handleMessages")

	for {
		// wsjson.Read closes the connection on a decode error, so frames are decoded here.
		_, data, err := sess.conn.Read(ctx)
		if err != nil {
			return err
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Debug("malformed message", "error", err)
			that.pushError(ctx, sess, "", errMalformedMessage)
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)
			that.pushError(ctx, sess, message.Action, errUnknownAction)
			continue
		}

		if err := handler(ctx, sess, &message); err != nil {
			log.Debug("action rejected", "action", message.Action, "error", err)
			that.pushError(ctx, sess, message.Action, err)
		}
	}
}

func (that *Server) writeLoop(ctx context.Context, sess *session) {
	ping := time.NewTicker(pingInterval)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-sess.send:
			writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := wsjson.Write(writeCtx, sess.conn, msg)
			cancel()

			if err != nil {
				that.logger.Warn("failed to write message", "action", msg.Action, "error", err)
				return
			}
		case <-ping.C:
			if err := sess.conn.Ping(ctx); err != nil {
				that.logger.Debug("ping failed", "error", err)
				return
			}
		}
	}
}

// push queues payload for the writer. It gives up when ctx is done.
func (that *Server) push(ctx context.Context, sess *session, action string, payload any) {
	raw, err := json.Marshal(payload)
	if err != nil {
		that.logger.Error("failed to marshal payload", "action", action, "error", err)
		return
	}

	select {
	case sess.send <- Message{Action: action, Payload: raw}:
	case <-ctx.Done():
	}
}
