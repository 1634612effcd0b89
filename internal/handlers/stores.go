package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// ======================================================
// STORES (gorm em produção, memory nos testes)
// ======================================================

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	ListByRole(ctx context.Context, role string) ([]models.User, error)
	Update(ctx context.Context, user *models.User) error
	SetRole(ctx context.Context, id uint, role string) (*models.User, error)
	Delete(ctx context.Context, id uint) error
}

type ServiceStore interface {
	List(ctx context.Context, query string) ([]models.Service, error)
	Create(ctx context.Context, service *models.Service) error
	Delete(ctx context.Context, id uint) error
}

type AuditStore interface {
	List(ctx context.Context, f repository.AuditFilter) ([]models.AuditLog, int64, error)
}

// ======================================================
// HELPERS
// ======================================================

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", httperr.Message("invalid_id"))
		return 0, false
	}
	return uint(id), true
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrRecordNotFound)
}
