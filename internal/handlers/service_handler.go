package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/authz"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type ServiceHandler struct {
	services ServiceStore
	audit    *audit.Dispatcher
}

func NewServiceHandler(services ServiceStore, audit *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{services: services, audit: audit}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"min=0"`
	Duration int     `json:"duration" binding:"required,min=1,max=1440"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	services, err := h.services.List(c.Request.Context(), query)
	if err != nil {
		httperr.Respond(c, err, "failed_to_list_services")
		return
	}
	if services == nil {
		services = []models.Service{}
	}
	c.JSON(http.StatusOK, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	actor := middleware.Actor(c)
	if err := authz.CanManageServices(actor); err != nil {
		httperr.Respond(c, err, "forbidden")
		return
	}

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", httperr.Message("invalid_request"))
		return
	}

	service := models.Service{
		Name:        strings.TrimSpace(req.Name),
		Price:       req.Price,
		DurationMin: req.Duration,
		UserID:      &actor.UserID,
	}

	if err := h.services.Create(c.Request.Context(), &service); err != nil {
		httperr.Respond(c, err, "failed_to_create_service")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   "service_created",
		Entity:   "service",
		EntityID: &service.ID,
	})

	c.JSON(http.StatusCreated, service)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	actor := middleware.Actor(c)
	if err := authz.CanManageServices(actor); err != nil {
		httperr.Respond(c, err, "forbidden")
		return
	}

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.services.Delete(c.Request.Context(), id); err != nil {
		if isNotFound(err) {
			httperr.NotFound(c, "service_not_found", httperr.Message("service_not_found"))
			return
		}
		httperr.Respond(c, err, "failed_to_delete_service")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: &id,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Serviço deletado com sucesso."})
}
