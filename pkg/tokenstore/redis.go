package tokenstore

import (
	"context"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/redis/go-redis/v9"
)

const tokenKey = "restokit:auth:token"

// Redis is a Redis-backed Store, for deployments that share one backend
// session across processes. The token is kept under a fixed key with no TTL;
// expiry is the backend's concern, not the store's.
type Redis struct {
	client redis.UniversalClient
	logger log.Logger
}

var _ Store = (*Redis)(nil)

// NewRedis creates a Redis-backed store.
func NewRedis(client redis.UniversalClient, logger log.Logger) *Redis {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Redis{
		client: client,
		logger: logger,
	}
}

// Get returns the stored token, or ErrNoToken when the key is absent.
func (rs *Redis) Get(ctx context.Context) (string, error) {
	token, err := rs.client.Get(ctx, tokenKey).Result()
	if err != nil {
		if err == redis.Nil {
			return "", ErrNoToken
		}
		level.Error(rs.logger).Log("msg", "failed to get token from redis", "err", err)
		return "", err
	}
	return token, nil
}

// Save replaces the stored token.
func (rs *Redis) Save(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	if err := rs.client.Set(ctx, tokenKey, token, 0).Err(); err != nil {
		level.Error(rs.logger).Log("msg", "failed to set token in redis", "err", err)
		return err
	}
	return nil
}

// Clear removes the stored token.
func (rs *Redis) Clear(ctx context.Context) error {
	if err := rs.client.Del(ctx, tokenKey).Err(); err != nil {
		level.Error(rs.logger).Log("msg", "failed to delete token from redis", "err", err)
		return err
	}
	return nil
}
