package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type ServiceGormRepository struct {
	db *gorm.DB
}

func NewServiceGormRepository(db *gorm.DB) *ServiceGormRepository {
	return &ServiceGormRepository{db: db}
}

func (r *ServiceGormRepository) List(ctx context.Context, query string) ([]models.Service, error) {
	q := r.db.WithContext(ctx)
	if query != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+query+"%")
	}

	var services []models.Service
	err := q.Order("id ASC").Find(&services).Error
	return services, err
}

func (r *ServiceGormRepository) Create(ctx context.Context, service *models.Service) error {
	return r.db.WithContext(ctx).Create(service).Error
}

func (r *ServiceGormRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Service{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return appointment.ErrRecordNotFound
	}
	return nil
}
