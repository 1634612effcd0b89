package appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/authz"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type ChangeStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewChangeStatus(repo domain.Repository, audit *audit.Dispatcher) *ChangeStatus {
	return &ChangeStatus{repo: repo, audit: audit}
}

func (uc *ChangeStatus) Execute(
	ctx context.Context,
	actor authz.Actor,
	appointmentID uint,
	status string,
) (*models.Appointment, error) {

	next, err := domain.ParseTargetStatus(status)
	if err != nil {
		return nil, err
	}

	ap, err := loadAppointment(ctx, uc.repo, appointmentID)
	if err != nil {
		return nil, err
	}
	if err := authz.CanChangeStatus(actor, ap); err != nil {
		return nil, err
	}
	if err := domain.CanTransition(domain.Status(ap.Status), next); err != nil {
		return nil, err
	}

	updated, err := uc.repo.UpdateAppointmentStatus(ctx, ap.ID, next)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("appointment_not_found")
		}
		if _, ok := httperr.AsBusiness(err); ok {
			return nil, err
		}
		return nil, fmt.Errorf("change status: %w", err)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   "appointment_" + string(next),
		Entity:   "appointment",
		EntityID: &updated.ID,
		Metadata: map[string]any{"from": ap.Status, "to": next},
	})

	return updated, nil
}

func loadAppointment(ctx context.Context, repo domain.Repository, id uint) (*models.Appointment, error) {
	ap, err := repo.GetAppointment(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("appointment_not_found")
		}
		return nil, fmt.Errorf("get appointment %d: %w", id, err)
	}
	return ap, nil
}
