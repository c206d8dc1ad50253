package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-hub/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-hub/internal/usecase"
)

const (
	sourceLocal = "local"
	sourceMatch = "match"
)

func decodePayload(msg *Message) (RequestPayload, error) {
	var payload RequestPayload
	if len(msg.Payload) == 0 {
		return payload, nil
	}

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return payload, fmt.Errorf("%w: %w", errBadPayload, err)
	}

	return payload, nil
}

// handleConnect identifies the player and opens the local game for that profile.
func (that *Server) handleConnect(ctx context.Context, sess *session, msg *Message) error {
	log := that.logger.With("method", "handleConnect")

	payload, err := decodePayload(msg)
	if err != nil {
		return err
	}

	playerID := payload.PlayerID
	if playerID == "" {
		playerID = pkg.GenerateNewSessionID()
	}

	feedback := usecase.FeedbackFunc(func(event string) {
		that.push(ctx, sess, actionFeedback, FeedbackPayload{Event: event, Source: sourceLocal})
	})

	local, err := that.locals.Open(ctx, playerID,
		usecase.WithFeedback(feedback),
		usecase.WithChangeHandler(func(snapshot usecase.LocalSnapshot) {
			that.push(ctx, sess, actionLocalState, ResponsePayload{Local: &snapshot})
		}),
	)
	if err != nil {
		log.Error("failed to open local game", "player_id", playerID, "error", err)
		return fmt.Errorf("failed to open local game: %w", err)
	}

	sess.bind(playerID, payload.PlayerName, local)

	snapshot := local.Snapshot()
	that.push(ctx, sess, actionConnect, ResponsePayload{
		PlayerID:   playerID,
		PlayerName: payload.PlayerName,
		Local:      &snapshot,
	})

	log.Info("successfully connected player", "player_id", playerID)

	return nil
}

func (that *Server) connectedLocal(sess *session) (*usecase.LocalGame, error) {
	local := sess.localGame()
	if local == nil {
		return nil, errNotConnected
	}

	return local, nil
}

func (that *Server) handleLocalNew(ctx context.Context, sess *session, _ *Message) error {
	local, err := that.connectedLocal(sess)
	if err != nil {
		return err
	}

	local.NewGame(ctx)

	return nil
}

func (that *Server) handleLocalMove(ctx context.Context, sess *session, msg *Message) error {
	local, err := that.connectedLocal(sess)
	if err != nil {
		return err
	}

	payload, err := decodePayload(msg)
	if err != nil {
		return err
	}

	if payload.Position == nil {
		return errBadPayload
	}

	_, err = local.Play(ctx, *payload.Position)

	return err
}

func (that *Server) handleLocalDifficulty(ctx context.Context, sess *session, msg *Message) error {
	local, err := that.connectedLocal(sess)
	if err != nil {
		return err
	}

	payload, err := decodePayload(msg)
	if err != nil {
		return err
	}

	_, err = local.SetDifficulty(ctx, payload.Difficulty)

	return err
}

func (that *Server) handleLocalSound(ctx context.Context, sess *session, msg *Message) error {
	local, err := that.connectedLocal(sess)
	if err != nil {
		return err
	}

	payload, err := decodePayload(msg)
	if err != nil {
		return err
	}

	if payload.Enabled == nil {
		return errBadPayload
	}

	_, err = local.SetSoundEnabled(ctx, *payload.Enabled)

	return err
}

func (that *Server) handleLocalScoresReset(ctx context.Context, sess *session, _ *Message) error {
	local, err := that.connectedLocal(sess)
	if err != nil {
		return err
	}

	_, err = local.ResetScores(ctx)

	return err
}

func (that *Server) handleMatchCreate(ctx context.Context, sess *session, msg *Message) error {
	playerID, playerName, ok := sess.identity()
	if !ok {
		return errNotConnected
	}

	payload, err := decodePayload(msg)
	if err != nil {
		return err
	}

	if payload.PlayerName != "" {
		playerName = payload.PlayerName
	}

	match, err := that.matches.CreateMatch(ctx, playerName, playerID)
	if err != nil {
		return err
	}

	that.push(ctx, sess, actionMatchCreate, ResponsePayload{GameID: match.GameID, Match: match})
	that.follow(ctx, sess, match.GameID, playerID)

	return nil
}

func (that *Server) handleMatchJoin(ctx context.Context, sess *session, msg *Message) error {
	playerID, playerName, ok := sess.identity()
	if !ok {
		return errNotConnected
	}

	payload, err := decodePayload(msg)
	if err != nil {
		return err
	}

	if payload.GameID == "" {
		return errBadPayload
	}

	if payload.PlayerName != "" {
		playerName = payload.PlayerName
	}

	match, err := that.matches.JoinMatch(ctx, payload.GameID, playerName, playerID)
	if err != nil {
		return err
	}

	that.push(ctx, sess, actionMatchJoin, ResponsePayload{GameID: match.GameID, Match: match})
	that.follow(ctx, sess, match.GameID, playerID)

	return nil
}

func (that *Server) handleMatchMove(ctx context.Context, sess *session, msg *Message) error {
	playerID, _, ok := sess.identity()
	if !ok {
		return errNotConnected
	}

	payload, err := decodePayload(msg)
	if err != nil {
		return err
	}

	if payload.GameID == "" || payload.Position == nil {
		return errBadPayload
	}

	_, err = that.matches.SubmitMove(ctx, payload.GameID, *payload.Position, playerID)

	return err
}

func (that *Server) handleMatchLeave(ctx context.Context, sess *session, msg *Message) error {
	if _, _, ok := sess.identity(); !ok {
		return errNotConnected
	}

	payload, err := decodePayload(msg)
	if err != nil {
		return err
	}

	if payload.GameID == "" {
		return errBadPayload
	}

	sess.unwatch(matchWatchKey(payload.GameID))

	if err = that.matches.LeaveMatch(ctx, payload.GameID); err != nil {
		return err
	}

	that.push(ctx, sess, actionMatchLeave, ResponsePayload{GameID: payload.GameID})

	return nil
}

func (that *Server) handleMatchWatch(ctx context.Context, sess *session, msg *Message) error {
	playerID, _, ok := sess.identity()
	if !ok {
		return errNotConnected
	}

	payload, err := decodePayload(msg)
	if err != nil {
		return err
	}

	if payload.GameID == "" {
		return errBadPayload
	}

	that.follow(ctx, sess, payload.GameID, playerID)

	return nil
}

func (that *Server) handleMatchUnwatch(_ context.Context, sess *session, msg *Message) error {
	payload, err := decodePayload(msg)
	if err != nil {
		return err
	}

	sess.unwatch(matchWatchKey(payload.GameID))

	return nil
}

func (that *Server) handleLobbyWatch(ctx context.Context, sess *session, _ *Message) error {
	watchCtx := sess.watch(ctx, lobbyWatchKey)

	go func() {
		for ev := range that.matches.WatchOpenMatches(watchCtx) {
			if ev.Err != nil {
				that.pushError(ctx, sess, actionLobbyWatch, ev.Err)
				return
			}

			that.push(watchCtx, sess, actionLobbyUpdate, LobbyPayload{Matches: ev.Matches})
		}
	}()

	return nil
}

func (that *Server) handleLobbyUnwatch(_ context.Context, sess *session, _ *Message) error {
	sess.unwatch(lobbyWatchKey)

	return nil
}

// follow streams views of gameID to the session until unwatched or disconnected.
func (that *Server) follow(ctx context.Context, sess *session, gameID, playerID string) {
	watchCtx := sess.watch(ctx, matchWatchKey(gameID))

	feedback := usecase.FeedbackFunc(func(event string) {
		if local := sess.localGame(); local != nil && !local.Snapshot().SoundEnabled {
			return
		}

		that.push(watchCtx, sess, actionFeedback, FeedbackPayload{Event: event, Source: sourceMatch, GameID: gameID})
	})

	go func() {
		for view := range that.matches.Follow(watchCtx, gameID, playerID, feedback) {
			if view.Err != nil {
				that.pushError(ctx, sess, actionMatchWatch, view.Err)
				return
			}

			that.push(watchCtx, sess, actionMatchUpdate, ResponsePayload{GameID: gameID, View: &view})
		}
	}()
}
