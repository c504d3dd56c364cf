package session

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

func sessionKey(token string) string {
	return "user:session:" + token
}

// RedisStore keeps sessions in a Redis hash with a TTL, for deployments
// where more than one process serves connections.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) Put(ctx context.Context, token string, id Identity) error {
	key := sessionKey(token)
	pipe := s.rdb.Pipeline()
	pipe.HSet(ctx, key, map[string]any{
		"user_id":      id.UserID,
		"display_name": id.DisplayName,
		"created_at":   time.Now().UTC().Format(time.RFC3339Nano),
	})
	pipe.Expire(ctx, key, s.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *RedisStore) Get(ctx context.Context, token string) (Identity, error) {
	data, err := s.rdb.HGetAll(ctx, sessionKey(token)).Result()
	if err != nil {
		return Identity{}, err
	}
	if len(data) == 0 {
		return Identity{}, ErrNoSession
	}
	return Identity{UserID: data["user_id"], DisplayName: data["display_name"]}, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, sessionKey(token)).Err()
}

var _ Store = (*RedisStore)(nil)
