package appointment

import (
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// Overlaps is the half-open interval test [aStart,aEnd) x [bStart,bEnd).
// Every conflict decision in the package goes through it.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// HasConflict reports whether [start,end) overlaps any appointment that
// still holds its slot.
func HasConflict(appointments []models.Appointment, start, end time.Time) bool {
	for _, ap := range appointments {
		if !Status(ap.Status).Blocks() {
			continue
		}
		if Overlaps(ap.StartTime, ap.EndTime, start, end) {
			return true
		}
	}
	return false
}
