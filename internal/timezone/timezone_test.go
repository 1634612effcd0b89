package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedOffset(t *testing.T) {
	loc := Fixed(-3)
	_, offset := time.Date(2026, 1, 1, 0, 0, 0, 0, loc).Zone()
	assert.Equal(t, -3*3600, offset)
	assert.Equal(t, "UTC-03:00", loc.String())
	assert.Equal(t, "UTC+05:00", Fixed(5).String())
}

func TestParseInstant(t *testing.T) {
	loc := Default()

	got, err := ParseInstant("2026-11-02T10:00:00", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 11, 2, 13, 0, 0, 0, time.UTC), got)

	got, err = ParseInstant("2026-11-02T10:00", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 11, 2, 13, 0, 0, 0, time.UTC), got)

	got, err = ParseInstant("2026-11-02T10:00:00Z", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 11, 2, 10, 0, 0, 0, time.UTC), got)

	_, err = ParseInstant("tomorrow", loc)
	assert.Error(t, err)
}

func TestFormatLocalHasNoSuffix(t *testing.T) {
	ts := time.Date(2026, 11, 2, 11, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-11-02T08:00:00", FormatLocal(ts, Default()))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-11-02", Default())
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 11, 2, 3, 0, 0, 0, time.UTC), d.UTC())

	_, err = ParseDate("02/11/2026", Default())
	assert.Error(t, err)
}
