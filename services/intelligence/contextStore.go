// File: services/intelligence/contextStore.go
package ai

import (
	"context"
	"encoding/json"
	"time"

	"samvidhansetu/models"

	"github.com/go-redis/redis/v8"
)

const chatContextPrefix = "ai:chat:"

// maxStoredTurns bounds the conversation history replayed into the model.
const maxStoredTurns = 40

// ContextStore keeps per-account conversation history between requests.
type ContextStore interface {
	History(ctx context.Context, userID string) ([]models.ChatTurn, error)
	Append(ctx context.Context, userID string, turns ...models.ChatTurn) error
	Clear(ctx context.Context, userID string) error
}

// RedisContextStore is the production ContextStore with a sliding TTL.
type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl}
}

func (s *RedisContextStore) History(ctx context.Context, userID string) ([]models.ChatTurn, error) {
	key := chatContextPrefix + userID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var turns []models.ChatTurn
	if err := json.Unmarshal([]byte(data), &turns); err != nil {
		// A corrupt history degrades to a fresh conversation.
		return nil, nil
	}
	return turns, nil
}

func (s *RedisContextStore) Append(ctx context.Context, userID string, turns ...models.ChatTurn) error {
	existing, err := s.History(ctx, userID)
	if err != nil {
		return err
	}
	all := append(existing, turns...)
	if len(all) > maxStoredTurns {
		all = all[len(all)-maxStoredTurns:]
	}
	b, err := json.Marshal(all)
	if err != nil {
		return err
	}
	key := chatContextPrefix + userID
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisContextStore) Clear(ctx context.Context, userID string) error {
	key := chatContextPrefix + userID
	return s.client.Del(ctx, key).Err()
}
