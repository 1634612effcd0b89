package appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/authz"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(repo domain.Repository, audit *audit.Dispatcher) *DeleteAppointment {
	return &DeleteAppointment{repo: repo, audit: audit}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	actor authz.Actor,
	appointmentID uint,
) error {

	ap, err := loadAppointment(ctx, uc.repo, appointmentID)
	if err != nil {
		return err
	}
	if err := authz.CanDelete(actor, ap); err != nil {
		return err
	}

	if err := uc.repo.DeleteAppointment(ctx, ap.ID); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return httperr.ErrNotFound("appointment_not_found")
		}
		return fmt.Errorf("delete appointment: %w", err)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return nil
}
