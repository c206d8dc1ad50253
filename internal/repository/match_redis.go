package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-hub/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hub/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hub/internal/pkg"
)

const (
	waitingKey   = "games:waiting"
	lobbyChannel = "games:lobby"

	maxTxRetries = 5
)

func matchKey(id string) string {
	return "game:" + id
}

func matchChannel(id string) string {
	return "game:" + id + ":events"
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

type redisMatch struct {
	client *redis.Client
}

func NewMatchRepository(client *redis.Client) MatchRepository {
	return &redisMatch{
		client: client,
	}
}

func (that *redisMatch) NewID(_ context.Context) (string, error) {
	id, err := pkg.GenerateGameID()
	if err != nil {
		return "", storeError("allocate id", err)
	}

	return id, nil
}

func (that *redisMatch) Create(ctx context.Context, match *entity.Match) error {
	key := matchKey(match.GameID)

	err := that.client.Watch(ctx, func(tx *redis.Tx) error {
		exists, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return storeError("check game", err)
		}

		if exists > 0 {
			return apperror.ErrGameExists
		}

		return that.write(ctx, tx, match)
	}, key)
	if errors.Is(err, redis.TxFailedErr) {
		return apperror.ErrGameExists
	}

	return that.wrap("create game", err)
}

func (that *redisMatch) GetByID(ctx context.Context, id string) (*entity.Match, error) {
	return that.read(ctx, that.client, id)
}

func (that *redisMatch) Update(ctx context.Context, id string, mutate func(match *entity.Match) error) (*entity.Match, error) {
	key := matchKey(id)

	for range maxTxRetries {
		var updated *entity.Match

		err := that.client.Watch(ctx, func(tx *redis.Tx) error {
			match, err := that.read(ctx, tx, id)
			if err != nil {
				return err
			}

			if err = mutate(match); err != nil {
				return err
			}

			if err = that.write(ctx, tx, match); err != nil {
				return err
			}

			updated = match

			return nil
		}, key)

		switch {
		case err == nil:
			return updated, nil
		case errors.Is(err, redis.TxFailedErr):
			continue
		default:
			return nil, that.wrap("update game", err)
		}
	}

	return nil, apperror.ErrConcurrentUpdate
}

func (that *redisMatch) DeleteByID(ctx context.Context, id string) error {
	_, err := that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, matchKey(id))
		pipe.ZRem(ctx, waitingKey, id)
		pipe.Publish(ctx, matchChannel(id), "")
		pipe.Publish(ctx, lobbyChannel, id)

		return nil
	})
	if err != nil {
		return storeError("delete game by id", err)
	}

	return nil
}

func (that *redisMatch) WatchWaiting(ctx context.Context) <-chan entity.LobbyEvent {
	out := make(chan entity.LobbyEvent)

	go func() {
		defer close(out)

		pubsub := that.client.Subscribe(ctx, lobbyChannel)
		defer pubsub.Close()

		if _, err := pubsub.Receive(ctx); err != nil {
			send(ctx, out, entity.LobbyEvent{Err: storeError("subscribe to lobby", err)})
			return
		}

		messages := pubsub.Channel()

		for {
			matches, err := that.waiting(ctx)
			if err != nil {
				send(ctx, out, entity.LobbyEvent{Err: err})
				return
			}

			if !send(ctx, out, entity.LobbyEvent{Matches: matches}) {
				return
			}

			select {
			case <-ctx.Done():
				return
			case _, ok := <-messages:
				if !ok {
					send(ctx, out, entity.LobbyEvent{Err: storeError("watch lobby", redis.ErrClosed)})
					return
				}
			}
		}
	}()

	return out
}

func (that *redisMatch) WatchByID(ctx context.Context, id string) <-chan entity.MatchEvent {
	out := make(chan entity.MatchEvent)

	go func() {
		defer close(out)

		pubsub := that.client.Subscribe(ctx, matchChannel(id))
		defer pubsub.Close()

		if _, err := pubsub.Receive(ctx); err != nil {
			send(ctx, out, entity.MatchEvent{Err: storeError("subscribe to game", err)})
			return
		}

		messages := pubsub.Channel()

		for {
			match, err := that.read(ctx, that.client, id)
			if errors.Is(err, apperror.ErrGameNotFound) {
				match, err = nil, nil
			}

			if err != nil {
				send(ctx, out, entity.MatchEvent{Err: err})
				return
			}

			if !send(ctx, out, entity.MatchEvent{Match: match}) {
				return
			}

			select {
			case <-ctx.Done():
				return
			case _, ok := <-messages:
				if !ok {
					send(ctx, out, entity.MatchEvent{Err: storeError("watch game", redis.ErrClosed)})
					return
				}
			}
		}
	}()

	return out
}

func (that *redisMatch) read(ctx context.Context, client getter, id string) (*entity.Match, error) {
	response, err := client.Get(ctx, matchKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrGameNotFound
	}

	if err != nil {
		return nil, storeError("get game by id", err)
	}

	var match entity.Match
	if err = json.Unmarshal([]byte(response), &match); err != nil {
		return nil, storeError("unmarshal game", err)
	}

	return &match, nil
}

// write queues the document, the waiting index and both notifications in one MULTI block.
func (that *redisMatch) write(ctx context.Context, tx *redis.Tx, match *entity.Match) error {
	matchJSON, err := json.Marshal(match)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, matchKey(match.GameID), matchJSON, 0)

		if match.IsWaiting() {
			pipe.ZAdd(ctx, waitingKey, redis.Z{Score: float64(match.CreatedAt), Member: match.GameID})
		} else {
			pipe.ZRem(ctx, waitingKey, match.GameID)
		}

		pipe.Publish(ctx, matchChannel(match.GameID), matchJSON)
		pipe.Publish(ctx, lobbyChannel, match.GameID)

		return nil
	})

	return err
}

func (that *redisMatch) waiting(ctx context.Context) ([]*entity.Match, error) {
	ids, err := that.client.ZRevRange(ctx, waitingKey, 0, -1).Result()
	if err != nil {
		return nil, storeError("list waiting games", err)
	}

	matches := make([]*entity.Match, 0, len(ids))
	if len(ids) == 0 {
		return matches, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = matchKey(id)
	}

	values, err := that.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, storeError("get waiting games", err)
	}

	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}

		var match entity.Match
		if err = json.Unmarshal([]byte(raw), &match); err != nil {
			return nil, storeError("unmarshal game", err)
		}

		if match.IsWaiting() {
			matches = append(matches, &match)
		}
	}

	sortNewestFirst(matches)

	return matches, nil
}

// wrap keeps coded errors as they are and marks everything else as a store failure.
func (that *redisMatch) wrap(action string, err error) error {
	if err == nil {
		return nil
	}

	if apperror.Code(err) != "" {
		return err
	}

	return storeError(action, err)
}
