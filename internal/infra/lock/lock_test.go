package lock

import (
	"context"
	"errors"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseMutualExclusion(t *testing.T, l Locker, key string) {
	t.Helper()

	var inside, maxInside int32
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			release, err := l.Acquire(ctx, key)
			if !assert.NoError(t, err) {
				return
			}
			defer release()

			n := atomic.AddInt32(&inside, 1)
			for {
				m := atomic.LoadInt32(&maxInside)
				if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			atomic.AddInt32(&inside, -1)
		}()
	}

	wg.Wait()
	assert.Equal(t, int32(1), maxInside)
}

func TestLocalLocker_MutualExclusion(t *testing.T) {
	exerciseMutualExclusion(t, NewLocalLocker(), BarberKey(1))
}

func TestLocalLocker_TimesOutWhenHeld(t *testing.T) {
	l := NewLocalLocker()

	release, err := l.Acquire(context.Background(), BarberKey(7))
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = l.Acquire(ctx, BarberKey(7))
	assert.True(t, errors.Is(err, ErrBusy))
}

func TestLocalLocker_KeysAreIndependent(t *testing.T) {
	l := NewLocalLocker()

	r1, err := l.Acquire(context.Background(), BarberKey(1))
	require.NoError(t, err)
	defer r1()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	r2, err := l.Acquire(ctx, BarberKey(2))
	require.NoError(t, err)
	r2()
}

func TestLocalLocker_ReleaseTwice(t *testing.T) {
	l := NewLocalLocker()

	release, err := l.Acquire(context.Background(), "k")
	require.NoError(t, err)
	release()
	release()

	again, err := l.Acquire(context.Background(), "k")
	require.NoError(t, err)
	again()
}

func TestRedisLocker_MutualExclusion(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = rdb.Close() })
	require.NoError(t, rdb.Ping(context.Background()).Err())

	key := BarberKey(uint(time.Now().UnixNano() % 1_000_000))
	exerciseMutualExclusion(t, NewRedisLocker(rdb, 2*time.Second), key)
}
