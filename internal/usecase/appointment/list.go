package appointment

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/barbershop-booking/internal/authz"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// ListAppointments agrupa as consultas de leitura.
type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) All(ctx context.Context, actor authz.Actor) ([]models.Appointment, error) {
	if err := authz.CanListAll(actor); err != nil {
		return nil, err
	}
	return uc.list(ctx, domain.ListFilter{})
}

func (uc *ListAppointments) ForBarber(ctx context.Context, actor authz.Actor) ([]models.Appointment, error) {
	if err := authz.CanListBarberAgenda(actor); err != nil {
		return nil, err
	}
	return uc.list(ctx, domain.ListFilter{BarberID: actor.UserID})
}

func (uc *ListAppointments) ForClient(ctx context.Context, actor authz.Actor) ([]models.Appointment, error) {
	if err := authz.CanListClientAppointments(actor); err != nil {
		return nil, err
	}
	return uc.list(ctx, domain.ListFilter{ClientID: actor.UserID})
}

func (uc *ListAppointments) ByID(ctx context.Context, actor authz.Actor, id uint) (*models.Appointment, error) {
	ap, err := loadAppointment(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}
	if err := authz.CanView(actor, ap); err != nil {
		return nil, err
	}
	return ap, nil
}

func (uc *ListAppointments) list(ctx context.Context, f domain.ListFilter) ([]models.Appointment, error) {
	aps, err := uc.repo.ListAppointments(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	if aps == nil {
		aps = []models.Appointment{}
	}
	return aps, nil
}
