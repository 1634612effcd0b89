package appointment

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

// TolerancePolicy says on which side of a booking the tolerance gap is kept.
type TolerancePolicy string

const (
	ToleranceTrailing  TolerancePolicy = "trailing"
	ToleranceSymmetric TolerancePolicy = "symmetric"
)

// Policy is the process-wide scheduling configuration: fixed civil business
// hours in a fixed-offset zone, the tolerance gap and the scan granularity.
type Policy struct {
	OpenMinutes  int
	CloseMinutes int
	Tolerance    time.Duration
	Grid         time.Duration
	Mode         TolerancePolicy
	Zone         *time.Location
}

func NewPolicy(
	openAt string,
	closeAt string,
	tolerance time.Duration,
	grid time.Duration,
	mode TolerancePolicy,
	zone *time.Location,
) (Policy, error) {

	open, err := parseClock(openAt)
	if err != nil {
		return Policy{}, err
	}
	closing, err := parseClock(closeAt)
	if err != nil {
		return Policy{}, err
	}
	if open >= closing {
		return Policy{}, fmt.Errorf("business hours %s-%s are empty", openAt, closeAt)
	}
	if grid <= 0 {
		return Policy{}, fmt.Errorf("grid must be positive")
	}
	if tolerance < 0 || tolerance%grid != 0 {
		return Policy{}, fmt.Errorf("grid %s must divide tolerance %s", grid, tolerance)
	}
	if mode != ToleranceTrailing && mode != ToleranceSymmetric {
		return Policy{}, fmt.Errorf("unknown tolerance policy %q", mode)
	}
	if zone == nil {
		zone = timezone.Default()
	}

	return Policy{
		OpenMinutes:  open,
		CloseMinutes: closing,
		Tolerance:    tolerance,
		Grid:         grid,
		Mode:         mode,
		Zone:         zone,
	}, nil
}

// DefaultPolicy is 08:00-18:00 at UTC-3, 15 minute gap after each booking,
// 15 minute grid.
func DefaultPolicy() Policy {
	p, _ := NewPolicy(
		"08:00", "18:00",
		15*time.Minute, 15*time.Minute,
		ToleranceTrailing,
		timezone.Default(),
	)
	return p
}

func parseClock(hm string) (int, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q", hm)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// BusinessHours returns opening and closing instants (UTC) of the civil
// day that date falls on in the policy zone.
func (p Policy) BusinessHours(date time.Time) (time.Time, time.Time) {
	y, m, d := date.In(p.Zone).Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, p.Zone)

	open := midnight.Add(time.Duration(p.OpenMinutes) * time.Minute)
	closing := midnight.Add(time.Duration(p.CloseMinutes) * time.Minute)
	return open.UTC(), closing.UTC()
}

// WithinBusinessHours valida se [start,end) cabe no expediente do dia
func (p Policy) WithinBusinessHours(start, end time.Time) bool {
	open, closing := p.BusinessHours(start)
	return !start.Before(open) && !end.After(closing)
}

func (p Policy) lead() time.Duration {
	if p.Mode == ToleranceSymmetric {
		return p.Tolerance
	}
	return 0
}

func (p Policy) trail() time.Duration {
	return p.Tolerance
}

// Footprint widens a booked interval by the tolerance the policy keeps
// around it.
func (p Policy) Footprint(start, end time.Time) (time.Time, time.Time) {
	return start.Add(-p.lead()), end.Add(p.trail())
}
