package appointment

import (
	"context"
	"fmt"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

type GetAvailability struct {
	repo   domain.Repository
	policy domain.Policy
	now    Clock
}

func NewGetAvailability(repo domain.Repository, policy domain.Policy, now Clock) *GetAvailability {
	return &GetAvailability{repo: repo, policy: policy, now: orNow(now)}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeWindow, error) {

	date, err := timezone.ParseDate(in.Date, uc.policy.Zone)
	if err != nil {
		return nil, httperr.ErrValidation("invalid_date")
	}

	service, err := lookupService(ctx, uc.repo, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if _, err := lookupBarber(ctx, uc.repo, in.BarberID); err != nil {
		return nil, err
	}

	from, to := uc.policy.FetchRange(date)
	appointments, err := uc.repo.FindAppointmentsForBarber(
		ctx,
		in.BarberID,
		&domain.TimeRange{From: from, To: to},
		true,
	)
	if err != nil {
		return nil, fmt.Errorf("availability: %w", err)
	}

	return uc.policy.ListAvailable(
		appointments,
		domain.ServiceDuration(service),
		date,
		uc.now(),
	), nil
}
