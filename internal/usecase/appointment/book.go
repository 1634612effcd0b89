package appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/lock"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type BookInput struct {
	ClientID  uint
	BarberID  uint
	ServiceID uint

	// RFC3339 or civil time in the reporting zone
	RequestedStart string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo   domain.Repository
	locker lock.Locker
	audit  *audit.Dispatcher
	policy domain.Policy
	now    Clock
}

func NewBookAppointment(
	repo domain.Repository,
	locker lock.Locker,
	audit *audit.Dispatcher,
	policy domain.Policy,
	now Clock,
) *BookAppointment {
	return &BookAppointment{
		repo:   repo,
		locker: locker,
		audit:  audit,
		policy: policy,
		now:    orNow(now),
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Horário solicitado
	// --------------------------------------------------
	start, err := timezone.ParseInstant(strings.TrimSpace(in.RequestedStart), uc.policy.Zone)
	if err != nil {
		return nil, httperr.ErrValidation("invalid_start_time")
	}
	if !start.After(uc.now()) {
		return nil, httperr.ErrValidation("start_in_past")
	}

	// --------------------------------------------------
	// 2️⃣ Serviço e barbeiro
	// --------------------------------------------------
	service, err := lookupService(ctx, uc.repo, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if _, err := lookupBarber(ctx, uc.repo, in.BarberID); err != nil {
		return nil, err
	}

	ap := domain.New(in.ClientID, in.BarberID, service, start)
	if !ap.EndTime.After(ap.StartTime) {
		return nil, httperr.ErrValidation("invalid_duration")
	}

	// --------------------------------------------------
	// 3️⃣ Expediente
	// --------------------------------------------------
	if !uc.policy.WithinBusinessHours(ap.StartTime, ap.EndTime) {
		return nil, httperr.ErrValidation("outside_business_hours")
	}

	// --------------------------------------------------
	// 4️⃣ Lock por barbeiro (check + insert atômicos)
	// --------------------------------------------------
	release, err := uc.locker.Acquire(ctx, lock.BarberKey(in.BarberID))
	if err != nil {
		if errors.Is(err, lock.ErrBusy) {
			return nil, httperr.ErrConflict("booking_busy")
		}
		return nil, fmt.Errorf("book appointment: %w", err)
	}
	defer release()

	// --------------------------------------------------
	// 5️⃣ Conflito de horário
	// --------------------------------------------------
	existing, err := uc.repo.FindAppointmentsForBarber(
		ctx,
		in.BarberID,
		&domain.TimeRange{From: ap.StartTime, To: ap.EndTime},
		true,
	)
	if err != nil {
		return nil, fmt.Errorf("book appointment: %w", err)
	}
	if domain.HasConflict(existing, ap.StartTime, ap.EndTime) {
		return nil, httperr.ErrConflict("time_conflict")
	}

	// --------------------------------------------------
	// 6️⃣ Criação
	// --------------------------------------------------
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if httperr.IsExclusionConflict(err) {
			return nil, httperr.ErrConflict("time_conflict")
		}
		return nil, fmt.Errorf("book appointment: %w", err)
	}

	// --------------------------------------------------
	// 7️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ClientID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"barber_id":  in.BarberID,
			"service_id": in.ServiceID,
			"start_time": ap.StartTime,
		},
	})

	return ap, nil
}

// ======================================================
// LOOKUPS
// ======================================================

func lookupService(ctx context.Context, repo domain.Repository, id uint) (*models.Service, error) {
	service, err := repo.FindService(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("service_not_found")
		}
		return nil, fmt.Errorf("find service %d: %w", id, err)
	}
	if !domain.ValidDuration(service) {
		return nil, httperr.ErrValidation("invalid_duration")
	}
	return service, nil
}

func lookupBarber(ctx context.Context, repo domain.Repository, id uint) (*models.User, error) {
	barber, err := repo.FindBarber(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("barber_not_found")
		}
		return nil, fmt.Errorf("find barber %d: %w", id, err)
	}
	if !barber.IsBarber() {
		return nil, httperr.ErrNotFound("barber_not_found")
	}
	return barber, nil
}
