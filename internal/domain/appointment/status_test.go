package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to Status
		allowed  bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCanceled, true},
		{StatusConfirmed, StatusCanceled, true},
		{StatusConfirmed, StatusConfirmed, false},
		{StatusCanceled, StatusConfirmed, false},
		{StatusCanceled, StatusCanceled, false},
		{StatusPending, StatusPending, false},
	}

	for _, tt := range tests {
		err := CanTransition(tt.from, tt.to)
		if tt.allowed {
			assert.NoError(t, err, "%s -> %s", tt.from, tt.to)
		} else {
			assert.True(t, httperr.IsBusiness(err, "invalid_state"), "%s -> %s", tt.from, tt.to)
		}
	}
}

func TestParseTargetStatus(t *testing.T) {
	st, err := ParseTargetStatus("confirmed")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, st)

	for _, s := range []string{"pending", "done", ""} {
		_, err := ParseTargetStatus(s)
		assert.True(t, httperr.IsKind(err, httperr.KindValidation), s)
	}
}

func TestChangeStatusMutatesOnlyOnSuccess(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusCanceled)}
	assert.Error(t, ChangeStatus(ap, StatusConfirmed))
	assert.Equal(t, string(StatusCanceled), ap.Status)

	ap.Status = string(StatusPending)
	require.NoError(t, ChangeStatus(ap, StatusConfirmed))
	assert.Equal(t, string(StatusConfirmed), ap.Status)
}
