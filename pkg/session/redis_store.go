package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"camrental/pkg/constants"
	apperrors "camrental/pkg/errors"
)

// RedisStore keeps sessions in Redis, letting the server restart without
// logging everyone out. Expiry is delegated to the key TTL.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func sessionKey(token string) string {
	return fmt.Sprintf(constants.CacheKeySession, token)
}

func (r *RedisStore) Set(ctx context.Context, token string, s Session, ttl time.Duration) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling session: %w", err)
	}
	return r.client.Set(ctx, sessionKey(token), payload, ttl).Err()
}

func (r *RedisStore) Get(ctx context.Context, token string) (Session, error) {
	payload, err := r.client.Get(ctx, sessionKey(token)).Result()
	if err == redis.Nil {
		return Session{}, apperrors.ErrSessionNotFound
	}
	if err != nil {
		return Session{}, err
	}

	var s Session
	if err := json.Unmarshal([]byte(payload), &s); err != nil {
		return Session{}, fmt.Errorf("unmarshaling session: %w", err)
	}
	return s, nil
}

func (r *RedisStore) Del(ctx context.Context, token string) error {
	return r.client.Del(ctx, sessionKey(token)).Err()
}
