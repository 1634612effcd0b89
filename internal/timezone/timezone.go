package timezone

import (
	"fmt"
	"time"
)

const (
	DefaultOffsetHours = -3

	DateLayout  = "2006-01-02"
	LocalLayout = "2006-01-02T15:04:05"
)

// Fixed returns a zone with a constant UTC offset. Fixed zones never depend
// on the host tzdata or on the process local zone.
func Fixed(offsetHours int) *time.Location {
	sign := "+"
	h := offsetHours
	if h < 0 {
		sign = "-"
		h = -h
	}
	return time.FixedZone(fmt.Sprintf("UTC%s%02d:00", sign, h), offsetHours*3600)
}

func Default() *time.Location {
	return Fixed(DefaultOffsetHours)
}

func Now() time.Time {
	return time.Now().UTC()
}

// ParseDate parses a calendar day (YYYY-MM-DD) as midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, loc)
}

// ParseInstant accepts RFC3339 (offset honoured) or a civil date-time
// without offset, which is read in loc. The result is in UTC.
func ParseInstant(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	for _, layout := range []string{LocalLayout, "2006-01-02T15:04", "2006-01-02 15:04:05", "2006-01-02 15:04"} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable instant %q", s)
}

// FormatLocal renders t as wall-clock time in loc, without zone suffix.
func FormatLocal(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(LocalLayout)
}
