package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// ErrRecordNotFound is returned by Repository lookups that match nothing.
var ErrRecordNotFound = errors.New("record not found")

// TimeRange restricts appointment queries to those intersecting [From,To).
type TimeRange struct {
	From time.Time
	To   time.Time
}

type Repository interface {
	// -------- Lookups --------
	FindBarber(
		ctx context.Context,
		barberID uint,
	) (*models.User, error)

	FindService(
		ctx context.Context,
		serviceID uint,
	) (*models.Service, error)

	// -------- Appointment (conflict / availability) --------
	FindAppointmentsForBarber(
		ctx context.Context,
		barberID uint,
		within *TimeRange,
		excludeCanceled bool,
	) ([]models.Appointment, error)

	// -------- Appointment (write) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// UpdateAppointmentStatus checks CanTransition against the stored row
	// while it is locked, so concurrent changes cannot revive a canceled one.
	UpdateAppointmentStatus(
		ctx context.Context,
		appointmentID uint,
		status Status,
	) (*models.Appointment, error)

	DeleteAppointment(
		ctx context.Context,
		appointmentID uint,
	) error

	// -------- Appointment (read) --------
	GetAppointment(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	ListAppointments(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Appointment, error)
}

// ListFilter zero values mean "any".
type ListFilter struct {
	BarberID uint
	ClientID uint
}
