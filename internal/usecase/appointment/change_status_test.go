package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/memory"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

func seedPending(r *memory.Store) uint {
	return r.PutAppointment(models.Appointment{
		BarberID: barberID, ClientID: clientID,
		StartTime: local(10, 0), EndTime: local(10, 30),
		Status: "pending",
	})
}

func TestChangeStatus_ConfirmThenCancel(t *testing.T) {
	r := seededRepo()
	id := seedPending(r)
	uc := NewChangeStatus(r, nil)

	ap, err := uc.Execute(context.Background(), barberActor, id, "confirmed")
	require.NoError(t, err)
	assert.Equal(t, "confirmed", ap.Status)

	ap, err = uc.Execute(context.Background(), barberActor, id, "canceled")
	require.NoError(t, err)
	assert.Equal(t, "canceled", ap.Status)
}

func TestChangeStatus_Rejections(t *testing.T) {
	r := seededRepo()
	id := seedPending(r)
	uc := NewChangeStatus(r, nil)

	_, err := uc.Execute(context.Background(), barberActor, id, "pending")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))

	_, err = uc.Execute(context.Background(), barberActor, id, "done")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))

	_, err = uc.Execute(context.Background(), barberActor, 9999, "confirmed")
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))

	_, err = uc.Execute(context.Background(), otherActor, id, "confirmed")
	assert.True(t, httperr.IsKind(err, httperr.KindForbidden))

	_, err = uc.Execute(context.Background(), clientActor, id, "canceled")
	assert.True(t, httperr.IsKind(err, httperr.KindForbidden))

	_, err = uc.Execute(context.Background(), barberActor, id, "canceled")
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), barberActor, id, "confirmed")
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	_, err = uc.Execute(context.Background(), barberActor, id, "canceled")
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestChangeStatus_CancelFreesSlot(t *testing.T) {
	r := seededRepo()
	id := seedPending(r)

	_, err := NewChangeStatus(r, nil).Execute(context.Background(), barberActor, id, "canceled")
	require.NoError(t, err)

	_, err = newBook(r).Execute(context.Background(), bookAt("2030-03-04T10:00:00"))
	assert.NoError(t, err)
}

// staleReads serves a snapshot taken before another request changed the row.
type staleReads struct {
	*memory.Store
	snapshot models.Appointment
}

func (s staleReads) GetAppointment(context.Context, uint) (*models.Appointment, error) {
	ap := s.snapshot
	return &ap, nil
}

func TestChangeStatus_RechecksTransitionOnStoredRow(t *testing.T) {
	r := seededRepo()
	id := seedPending(r)
	snapshot, err := r.GetAppointment(context.Background(), id)
	require.NoError(t, err)

	_, err = NewChangeStatus(r, nil).Execute(context.Background(), barberActor, id, "canceled")
	require.NoError(t, err)

	stale := staleReads{Store: r, snapshot: *snapshot}
	_, err = NewChangeStatus(stale, nil).Execute(context.Background(), barberActor, id, "confirmed")
	assert.True(t, httperr.IsBusiness(err, "invalid_state"), "%v", err)

	stored, err := r.GetAppointment(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "canceled", stored.Status)
}
