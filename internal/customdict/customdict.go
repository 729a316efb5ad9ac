// Package customdict persists user-supplied dictionary words. Words added
// here are merged into the vocabulary store at startup and survive restarts.
package customdict

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Store is a persistent user dictionary.
type Store interface {
	Add(ctx context.Context, word string) error
	Remove(ctx context.Context, word string) error
	All(ctx context.Context) ([]string, error)
}

// RedisStore keeps the user dictionary in a Redis set, shared between the
// correction service and the dictionary admin service.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedis creates a RedisStore with the provided client.
func NewRedis(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, key: "contextcheck:user_dict"}
}

// Add inserts a word into the user dictionary.
func (s *RedisStore) Add(ctx context.Context, word string) error {
	return s.client.SAdd(ctx, s.key, word).Err()
}

// Remove deletes a word from the user dictionary.
func (s *RedisStore) Remove(ctx context.Context, word string) error {
	return s.client.SRem(ctx, s.key, word).Err()
}

// All returns every word stored in the user dictionary.
func (s *RedisStore) All(ctx context.Context) ([]string, error) {
	return s.client.SMembers(ctx, s.key).Result()
}
