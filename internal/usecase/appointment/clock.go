package appointment

import (
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

// Clock is injected so tests can pin "now".
type Clock func() time.Time

func orNow(c Clock) Clock {
	if c == nil {
		return timezone.Now
	}
	return c
}
