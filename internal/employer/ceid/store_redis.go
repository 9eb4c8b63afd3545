package ceid

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"verigate/pkg/platform/sentinel"
)

const redisKeyPrefix = "verigate:ceid:"

// RedisStore persists CEID entries in Redis so identifiers stay stable
// across restarts and multiple service instances. Entries are written
// without expiry; CEID mappings are never deleted, only overwritten.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) (Entry, error) {
	raw, err := s.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Entry{}, sentinel.ErrNotFound
		}
		return Entry{}, fmt.Errorf("get ceid entry: %w", err)
	}

	var entry Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		// A corrupt entry reads as absent; the resolver overwrites it.
		return Entry{}, sentinel.ErrNotFound
	}
	return entry, nil
}

func (s *RedisStore) Put(ctx context.Context, key string, entry Entry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal ceid entry: %w", err)
	}
	if err := s.client.Set(ctx, redisKeyPrefix+key, raw, 0).Err(); err != nil {
		return fmt.Errorf("put ceid entry: %w", err)
	}
	return nil
}
