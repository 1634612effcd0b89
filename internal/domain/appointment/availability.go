package appointment

import (
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type AvailabilityInput struct {
	BarberID  uint
	ServiceID uint
	Date      string
}

// TimeWindow is a bookable [Start,End) pair, in UTC.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// FetchRange is the interval whose appointments can influence the windows
// offered on date.
func (p Policy) FetchRange(date time.Time) (time.Time, time.Time) {
	open, closing := p.BusinessHours(date)
	return open.Add(-p.trail()), closing.Add(p.lead())
}

// ListAvailable scans the business day on a grid of p.Grid cells. A cell is
// occupied when it overlaps the footprint of a blocking appointment. A
// candidate start is offered when its own footprint fits the business
// hours and covers only free cells. The scan advances one cell at a time,
// so consecutive windows may overlap each other.
func (p Policy) ListAvailable(
	appointments []models.Appointment,
	duration time.Duration,
	date time.Time,
	now time.Time,
) []TimeWindow {

	windows := []TimeWindow{}
	if duration <= 0 {
		return windows
	}

	open, closing := p.BusinessHours(date)
	cells := int((closing.Sub(open) + p.Grid - 1) / p.Grid)

	cell := func(i int) (time.Time, time.Time) {
		start := open.Add(time.Duration(i) * p.Grid)
		end := start.Add(p.Grid)
		if end.After(closing) {
			end = closing
		}
		return start, end
	}

	// --------------------------------------------------
	// Ocupação
	// --------------------------------------------------
	occupied := make([]bool, cells)
	for _, ap := range appointments {
		if !Status(ap.Status).Blocks() {
			continue
		}
		fs, fe := p.Footprint(ap.StartTime, ap.EndTime)
		if !Overlaps(fs, fe, open, closing) {
			continue
		}
		for i := range occupied {
			cs, ce := cell(i)
			if Overlaps(cs, ce, fs, fe) {
				occupied[i] = true
			}
		}
	}

	// --------------------------------------------------
	// Janela deslizante
	// --------------------------------------------------
	leadCells := ceilDiv(p.lead(), p.Grid)
	spanCells := ceilDiv(duration+p.trail(), p.Grid)

	for i := 0; i < cells; i++ {
		start, _ := cell(i)
		end := start.Add(duration)
		fs, fe := p.Footprint(start, end)

		if fs.Before(open) {
			continue
		}
		if fe.After(closing) {
			break
		}
		if !start.After(now) {
			continue
		}

		free := true
		for j := i - leadCells; j < i+spanCells; j++ {
			if occupied[j] {
				free = false
				break
			}
		}

		if free {
			windows = append(windows, TimeWindow{Start: start, End: end})
		}
	}

	return windows
}

func ceilDiv(d, step time.Duration) int {
	return int((d + step - 1) / step)
}
