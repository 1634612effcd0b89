package authz

import (
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// Actor é quem está chamando a API, montado a partir do JWT.
type Actor struct {
	UserID uint
	Role   string
}

func (a Actor) IsAdmin() bool { return a.Role == models.RoleAdmin }
func (a Actor) IsBarber() bool { return a.Role == models.RoleBarber }
func (a Actor) IsClient() bool { return a.Role == models.RoleClient }
func (a Actor) Valid() bool { return a.UserID != 0 && models.ValidRole(a.Role) }
func (a Actor) Self(id uint) bool { return a.UserID != 0 && a.UserID == id }

func forbidden() error {
	return httperr.ErrForbidden("forbidden")
}

// ===============================
// Capabilities
// ===============================

func CanBook(a Actor) error {
	if a.IsClient() {
		return nil
	}
	return forbidden()
}

// CanChangeStatus: só o barbeiro dono do horário confirma ou cancela.
func CanChangeStatus(a Actor, ap *models.Appointment) error {
	if a.IsBarber() && a.Self(ap.BarberID) {
		return nil
	}
	return forbidden()
}

// CanDelete: the client only while own and pending, the owning barber at
// any time, admins always.
func CanDelete(a Actor, ap *models.Appointment) error {
	switch {
	case a.IsAdmin():
		return nil
	case a.IsBarber() && a.Self(ap.BarberID):
		return nil
	case a.IsClient() && a.Self(ap.ClientID) &&
		appointment.Status(ap.Status) == appointment.StatusPending:
		return nil
	}
	return forbidden()
}

func CanView(a Actor, ap *models.Appointment) error {
	if a.IsAdmin() || a.Self(ap.BarberID) || a.Self(ap.ClientID) {
		return nil
	}
	return forbidden()
}

func CanManageServices(a Actor) error {
	if a.IsAdmin() {
		return nil
	}
	return forbidden()
}

func CanManageUsers(a Actor) error {
	return CanManageServices(a)
}

func CanListAll(a Actor) error {
	return CanManageServices(a)
}

func CanListBarberAgenda(a Actor) error {
	if a.IsBarber() {
		return nil
	}
	return forbidden()
}

func CanListClientAppointments(a Actor) error {
	if a.IsClient() {
		return nil
	}
	return forbidden()
}
