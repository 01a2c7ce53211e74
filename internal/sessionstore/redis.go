package sessionstore

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "repomarket:session:"

// Redis stores the session in Redis, for shared development environments
// where several tools on one host reuse a single login. Both entries are
// written with MSet and removed with a single Del so the co-presence
// invariant survives a crash between operations.
type Redis struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedis wraps an established Redis client. The supplied context bounds
// every store operation; the Store contract itself is synchronous.
func NewRedis(ctx context.Context, client *redis.Client) *Redis {
	return &Redis{client: client, ctx: ctx}
}

func (r *Redis) Get(key string) (string, bool, error) {
	if !validKey(key) {
		return "", false, ErrUnknownKey
	}
	v, err := r.client.Get(r.ctx, redisKeyPrefix+key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, true, nil
}

func (r *Redis) Set(key, value string) error {
	if !validKey(key) {
		return ErrUnknownKey
	}
	if err := r.client.Set(r.ctx, redisKeyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (r *Redis) Remove(key string) error {
	if !validKey(key) {
		return ErrUnknownKey
	}
	if err := r.client.Del(r.ctx, redisKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

func (r *Redis) SaveSession(token, userJSON string) error {
	err := r.client.MSet(r.ctx,
		redisKeyPrefix+KeyToken, token,
		redisKeyPrefix+KeyUser, userJSON,
	).Err()
	if err != nil {
		return fmt.Errorf("redis save session: %w", err)
	}
	return nil
}

func (r *Redis) ClearSession() error {
	err := r.client.Del(r.ctx, redisKeyPrefix+KeyToken, redisKeyPrefix+KeyUser).Err()
	if err != nil {
		return fmt.Errorf("redis clear session: %w", err)
	}
	return nil
}
