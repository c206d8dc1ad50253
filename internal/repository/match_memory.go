package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe-hub/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hub/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hub/internal/pkg"
)

// watcher is woken after every write it may care about. Pending wakeups coalesce.
type watcher struct {
	matchID string // empty for lobby watchers
	notify  chan struct{}
}

func (that *watcher) wake() {
	select {
	case that.notify <- struct{}{}:
	default:
	}
}

type memoryMatch struct {
	mu       sync.RWMutex
	matches  map[string]*entity.Match
	watchers map[*watcher]struct{}
}

// NewMemoryMatchRepository returns a process-local store. Every read and write copies the document.
func NewMemoryMatchRepository() MatchRepository {
	return &memoryMatch{
		matches:  make(map[string]*entity.Match),
		watchers: make(map[*watcher]struct{}),
	}
}

func (that *memoryMatch) NewID(_ context.Context) (string, error) {
	id, err := pkg.GenerateGameID()
	if err != nil {
		return "", storeError("allocate id", err)
	}

	return id, nil
}

func (that *memoryMatch) Create(ctx context.Context, match *entity.Match) error {
	if err := ctx.Err(); err != nil {
		return storeError("create game", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.matches[match.GameID]; ok {
		return apperror.ErrGameExists
	}

	that.matches[match.GameID] = match.Clone()
	that.notifyLocked(match.GameID)

	return nil
}

func (that *memoryMatch) GetByID(ctx context.Context, id string) (*entity.Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeError("get game by id", err)
	}

	that.mu.RLock()
	defer that.mu.RUnlock()

	match, ok := that.matches[id]
	if !ok {
		return nil, apperror.ErrGameNotFound
	}

	return match.Clone(), nil
}

func (that *memoryMatch) Update(ctx context.Context, id string, mutate func(match *entity.Match) error) (*entity.Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeError("update game", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	stored, ok := that.matches[id]
	if !ok {
		return nil, apperror.ErrGameNotFound
	}

	match := stored.Clone()
	if err := mutate(match); err != nil {
		return nil, err
	}

	that.matches[id] = match.Clone()
	that.notifyLocked(id)

	return match, nil
}

func (that *memoryMatch) DeleteByID(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return storeError("delete game by id", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.matches, id)
	that.notifyLocked(id)

	return nil
}

func (that *memoryMatch) WatchWaiting(ctx context.Context) <-chan entity.LobbyEvent {
	out := make(chan entity.LobbyEvent)
	w := that.subscribe("")

	go func() {
		defer close(out)
		defer that.unsubscribe(w)

		for {
			if !send(ctx, out, entity.LobbyEvent{Matches: that.waiting()}) {
				return
			}

			select {
			case <-ctx.Done():
				return
			case <-w.notify:
			}
		}
	}()

	return out
}

func (that *memoryMatch) WatchByID(ctx context.Context, id string) <-chan entity.MatchEvent {
	out := make(chan entity.MatchEvent)
	w := that.subscribe(id)

	go func() {
		defer close(out)
		defer that.unsubscribe(w)

		for {
			that.mu.RLock()
			match := that.matches[id].Clone()
			that.mu.RUnlock()

			if !send(ctx, out, entity.MatchEvent{Match: match}) {
				return
			}

			select {
			case <-ctx.Done():
				return
			case <-w.notify:
			}
		}
	}()

	return out
}

func (that *memoryMatch) waiting() []*entity.Match {
	that.mu.RLock()
	defer that.mu.RUnlock()

	matches := make([]*entity.Match, 0, len(that.matches))
	for _, match := range that.matches {
		if match.IsWaiting() {
			matches = append(matches, match.Clone())
		}
	}

	sortNewestFirst(matches)

	return matches
}

func (that *memoryMatch) subscribe(matchID string) *watcher {
	w := &watcher{matchID: matchID, notify: make(chan struct{}, 1)}

	that.mu.Lock()
	that.watchers[w] = struct{}{}
	that.mu.Unlock()

	return w
}

func (that *memoryMatch) unsubscribe(w *watcher) {
	that.mu.Lock()
	delete(that.watchers, w)
	that.mu.Unlock()
}

// notifyLocked must be called with mu held for writing.
func (that *memoryMatch) notifyLocked(matchID string) {
	for w := range that.watchers {
		if w.matchID == "" || w.matchID == matchID {
			w.wake()
		}
	}
}

// Watchers reports how many subscriptions are live.
func (that *memoryMatch) Watchers() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.watchers)
}
