package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

func TestValidDuration(t *testing.T) {
	assert.True(t, ValidDuration(&models.Service{DurationMin: 30}))
	assert.True(t, ValidDuration(&models.Service{DurationMin: MaxServiceMinutes}))
	assert.False(t, ValidDuration(&models.Service{DurationMin: 0}))
	assert.False(t, ValidDuration(&models.Service{DurationMin: -5}))
	assert.False(t, ValidDuration(&models.Service{DurationMin: MaxServiceMinutes + 1}))
	assert.False(t, ValidDuration(&models.Service{DurationMin: 200_000_000}))
}

func TestNewEndsAfterStartForValidDurations(t *testing.T) {
	start := time.Date(2030, 3, 4, 13, 0, 0, 0, time.UTC)
	ap := New(1, 2, &models.Service{ID: 3, DurationMin: MaxServiceMinutes}, start)

	assert.True(t, ap.EndTime.After(ap.StartTime))
	assert.Equal(t, 24*time.Hour, ap.EndTime.Sub(ap.StartTime))
}
