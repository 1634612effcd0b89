package session

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

type RedisBlacklist struct {
	rdb *redis.Client
}

func NewRedisBlacklist(rdb *redis.Client) *RedisBlacklist {
	return &RedisBlacklist{rdb: rdb}
}

func key(token string) string {
	return "blacklist:" + token
}

func (b *RedisBlacklist) Revoke(ctx context.Context, token string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	return b.rdb.Set(ctx, key(token), "1", ttl).Err()
}

func (b *RedisBlacklist) Revoked(ctx context.Context, token string) (bool, error) {
	n, err := b.rdb.Exists(ctx, key(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

var _ Blacklist = (*RedisBlacklist)(nil)
