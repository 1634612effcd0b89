package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrRecordNotFound
	}
	return err
}

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *AppointmentGormRepository) FindBarber(
	ctx context.Context,
	barberID uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, barberID).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (r *AppointmentGormRepository) FindService(
	ctx context.Context,
	serviceID uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, serviceID).Error; err != nil {
		return nil, notFound(err)
	}
	return &service, nil
}

// --------------------------------------------------
// Appointment (conflict / availability)
// --------------------------------------------------

func (r *AppointmentGormRepository) FindAppointmentsForBarber(
	ctx context.Context,
	barberID uint,
	within *domain.TimeRange,
	excludeCanceled bool,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID)

	if excludeCanceled {
		q = q.Where("status <> ?", domain.StatusCanceled)
	}
	if within != nil {
		// mesma regra meio-aberta do domínio
		q = q.Where("start_time < ? AND end_time > ?", within.To, within.From)
	}

	var list []models.Appointment
	err := q.Order("start_time ASC").Find(&list).Error
	return list, err
}

// --------------------------------------------------
// Appointment (write)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) UpdateAppointmentStatus(
	ctx context.Context,
	appointmentID uint,
	status domain.Status,
) (*models.Appointment, error) {

	var ap models.Appointment

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&ap, appointmentID).Error; err != nil {
			return notFound(err)
		}

		// a transição vale contra a linha travada, não contra a leitura do caller
		if err := domain.CanTransition(domain.Status(ap.Status), status); err != nil {
			return err
		}

		ap.Status = string(status)
		return tx.Model(&ap).Update("status", ap.Status).Error
	})
	if err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	appointmentID uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, appointmentID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

// --------------------------------------------------
// Appointment (read)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.withRelations(ctx).First(&ap, appointmentID).Error; err != nil {
		return nil, notFound(err)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Appointment, error) {

	q := r.withRelations(ctx)
	if filter.BarberID != 0 {
		q = q.Where("barber_id = ?", filter.BarberID)
	}
	if filter.ClientID != 0 {
		q = q.Where("client_id = ?", filter.ClientID)
	}

	var list []models.Appointment
	err := q.Order("start_time ASC").Find(&list).Error
	return list, err
}

func (r *AppointmentGormRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Client").
		Preload("Barber").
		Preload("Service")
}

var _ domain.Repository = (*AppointmentGormRepository)(nil)
