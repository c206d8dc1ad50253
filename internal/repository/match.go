package repository

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/rocketscienceinc/tictactoe-hub/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hub/internal/entity"
)

// MatchRepository is the synchronized document store behind online matches.
type MatchRepository interface {
	NewID(ctx context.Context) (string, error)
	Create(ctx context.Context, match *entity.Match) error
	GetByID(ctx context.Context, id string) (*entity.Match, error)
	// Update reads the match, applies mutate and writes it back only if nobody
	// changed the document in between. Errors from mutate are returned as-is.
	Update(ctx context.Context, id string, mutate func(match *entity.Match) error) (*entity.Match, error)
	DeleteByID(ctx context.Context, id string) error

	// WatchWaiting streams the waiting matches, newest first, until ctx is done.
	WatchWaiting(ctx context.Context) <-chan entity.LobbyEvent
	// WatchByID streams snapshots of one match until ctx is done.
	WatchByID(ctx context.Context, id string) <-chan entity.MatchEvent
}

func storeError(action string, err error) error {
	return fmt.Errorf("%w: failed to %s: %w", apperror.ErrStoreFailure, action, err)
}

func sortNewestFirst(matches []*entity.Match) {
	slices.SortStableFunc(matches, func(a, b *entity.Match) int {
		return cmp.Or(cmp.Compare(b.CreatedAt, a.CreatedAt), cmp.Compare(b.GameID, a.GameID))
	})
}

// send delivers ev unless ctx is done first.
func send[T any](ctx context.Context, out chan<- T, ev T) bool {
	select {
	case out <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}
