package lock

import (
	"context"
	"errors"
	"fmt"
)

// ErrBusy is returned when the lock could not be taken before ctx ended.
var ErrBusy = errors.New("lock: busy")

// Locker serializes work on a key across goroutines (LocalLocker) or
// across processes (RedisLocker). release is safe to call more than once.
type Locker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

func BarberKey(barberID uint) string {
	return fmt.Sprintf("lock:barber:%d", barberID)
}
