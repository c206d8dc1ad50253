package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-hub/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hub/internal/entity"
)

type matchStore interface {
	NewID(ctx context.Context) (string, error)
	Create(ctx context.Context, match *entity.Match) error
	GetByID(ctx context.Context, id string) (*entity.Match, error)
	Update(ctx context.Context, id string, mutate func(match *entity.Match) error) (*entity.Match, error)
	DeleteByID(ctx context.Context, id string) error
	WatchWaiting(ctx context.Context) <-chan entity.LobbyEvent
	WatchByID(ctx context.Context, id string) <-chan entity.MatchEvent
}

// MatchCoordinator runs two-player matches on top of a shared store.
type MatchCoordinator struct {
	logger *slog.Logger
	store  matchStore
	now    func() time.Time
}

func NewMatchCoordinator(logger *slog.Logger, store matchStore) *MatchCoordinator {
	return &MatchCoordinator{
		logger: logger.With("component", "match-coordinator"),
		store:  store,
		now:    time.Now,
	}
}

// CreateMatch publishes a waiting match owned by the creator, who plays X.
func (that *MatchCoordinator) CreateMatch(ctx context.Context, creatorName, creatorID string) (*entity.Match, error) {
	log := that.logger.With("method", "CreateMatch", "player_id", creatorID)

	if creatorID == "" {
		return nil, apperror.ErrInvalidPlayer
	}

	id, err := that.store.NewID(ctx)
	if err != nil {
		log.Error("failed to allocate match id", "error", err)
		return nil, fmt.Errorf("failed to allocate match id: %w", err)
	}

	match := entity.NewMatch(id, entity.Player{PlayerID: creatorID, PlayerName: creatorName}, that.now().UnixMilli())

	if err = that.store.Create(ctx, match); err != nil {
		log.Error("failed to create match", "error", err)
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	log.Info("match created", "match_id", id)

	return match, nil
}

// JoinMatch seats the joiner as O and starts the match.
func (that *MatchCoordinator) JoinMatch(ctx context.Context, matchID, joinerName, joinerID string) (*entity.Match, error) {
	log := that.logger.With("method", "JoinMatch", "match_id", matchID, "player_id", joinerID)

	match, err := that.store.Update(ctx, matchID, func(match *entity.Match) error {
		return match.Join(entity.Player{PlayerID: joinerID, PlayerName: joinerName})
	})
	if err != nil {
		log.Warn("join rejected", "error", err)
		return nil, fmt.Errorf("failed to join match: %w", err)
	}

	log.Info("player joined match")

	return match, nil
}

// SubmitMove applies the turn holder's move and republishes the match.
func (that *MatchCoordinator) SubmitMove(ctx context.Context, matchID string, position int, playerID string) (*entity.Match, error) {
	log := that.logger.With("method", "SubmitMove", "match_id", matchID, "player_id", playerID, "position", position)

	match, err := that.store.Update(ctx, matchID, func(match *entity.Match) error {
		return match.MakeTurn(position, playerID)
	})
	if err != nil {
		log.Warn("move rejected", "error", err)
		return nil, fmt.Errorf("failed to submit move: %w", err)
	}

	if match.IsFinished() {
		log.Info("match finished", "winner", match.Winner)
	} else {
		log.Debug("move applied")
	}

	return match, nil
}

// LeaveMatch removes the match. Removing an unknown match is not an error.
func (that *MatchCoordinator) LeaveMatch(ctx context.Context, matchID string) error {
	log := that.logger.With("method", "LeaveMatch", "match_id", matchID)

	if err := that.store.DeleteByID(ctx, matchID); err != nil {
		log.Error("failed to delete match", "error", err)
		return fmt.Errorf("failed to leave match: %w", err)
	}

	log.Info("match removed")

	return nil
}

func (that *MatchCoordinator) GetMatch(ctx context.Context, matchID string) (*entity.Match, error) {
	match, err := that.store.GetByID(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	return match, nil
}

// WatchOpenMatches streams waiting matches newest first until ctx is done or the store fails.
func (that *MatchCoordinator) WatchOpenMatches(ctx context.Context) <-chan entity.LobbyEvent {
	return that.store.WatchWaiting(ctx)
}

// WatchMatch streams snapshots of one match until ctx is done or the store fails.
func (that *MatchCoordinator) WatchMatch(ctx context.Context, matchID string) <-chan entity.MatchEvent {
	return that.store.WatchByID(ctx, matchID)
}
