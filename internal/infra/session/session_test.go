package session

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseBlacklist(t *testing.T, b Blacklist, token string) {
	t.Helper()
	ctx := context.Background()

	revoked, err := b.Revoked(ctx, token)
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, b.Revoke(ctx, token, time.Now().Add(time.Minute)))

	revoked, err = b.Revoked(ctx, token)
	require.NoError(t, err)
	assert.True(t, revoked)

	require.NoError(t, b.Revoke(ctx, token+"-old", time.Now().Add(-time.Minute)))
	revoked, err = b.Revoked(ctx, token+"-old")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestMemoryBlacklist(t *testing.T) {
	exerciseBlacklist(t, NewMemoryBlacklist(), "tok")
}

func TestMemoryBlacklistExpires(t *testing.T) {
	b := NewMemoryBlacklist()
	now := time.Now()
	b.now = func() time.Time { return now }

	require.NoError(t, b.Revoke(context.Background(), "tok", now.Add(time.Second)))
	now = now.Add(2 * time.Second)

	revoked, err := b.Revoked(context.Background(), "tok")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisBlacklist(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = rdb.Close() })

	exerciseBlacklist(t, NewRedisBlacklist(rdb), "tok-"+time.Now().Format(time.RFC3339Nano))
}
