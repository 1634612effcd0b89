package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

func TestAppointmentRendersCivilTime(t *testing.T) {
	loc := timezone.Default()
	ap := &models.Appointment{
		ID:        3,
		StartTime: time.Date(2030, 3, 4, 13, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2030, 3, 4, 13, 30, 0, 0, time.UTC),
		Status:    "pending",
		Service:   models.Service{ID: 1, Name: "Corte", DurationMin: 30},
	}

	out := Appointment(ap, loc)
	assert.Equal(t, "2030-03-04T10:00:00", out.StartTime)
	assert.Equal(t, "2030-03-04T10:30:00", out.EndTime)
	assert.Nil(t, out.Client)
	require.NotNil(t, out.Service)
	assert.Equal(t, 30, out.Service.Duration)
}

func TestWindowsHaveNoZoneSuffix(t *testing.T) {
	w := []domain.TimeWindow{{
		Start: time.Date(2030, 3, 4, 11, 0, 0, 0, time.UTC),
		End:   time.Date(2030, 3, 4, 12, 0, 0, 0, time.UTC),
	}}

	b, err := json.Marshal(Windows(w, timezone.Default()))
	require.NoError(t, err)
	assert.JSONEq(t, `[{"start":"2030-03-04T08:00:00","end":"2030-03-04T09:00:00"}]`, string(b))

	assert.NotNil(t, Windows(nil, timezone.Default()))
}

func TestUserHidesPassword(t *testing.T) {
	b, err := json.Marshal(User(&models.User{ID: 1, Name: "Ana", PasswordHash: "$2a$..."}))
	require.NoError(t, err)
	assert.NotContains(t, string(b), "2a$")
}
