package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/authz"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/dto"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/metrics"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/barbershop-booking/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	book         *ucAppointment.BookAppointment
	availability *ucAppointment.GetAvailability
	changeStatus *ucAppointment.ChangeStatus
	remove       *ucAppointment.DeleteAppointment
	list         *ucAppointment.ListAppointments

	zone    *time.Location
	metrics *metrics.Metrics
}

func NewAppointmentHandler(
	book *ucAppointment.BookAppointment,
	availability *ucAppointment.GetAvailability,
	changeStatus *ucAppointment.ChangeStatus,
	remove *ucAppointment.DeleteAppointment,
	list *ucAppointment.ListAppointments,
	zone *time.Location,
	m *metrics.Metrics,
) *AppointmentHandler {
	return &AppointmentHandler{
		book:         book,
		availability: availability,
		changeStatus: changeStatus,
		remove:       remove,
		list:         list,
		zone:         zone,
		metrics:      m,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	StartTime string `json:"start_time" binding:"required"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	actor := middleware.Actor(c)
	if err := authz.CanBook(actor); err != nil {
		h.metrics.Booking("forbidden")
		httperr.Respond(c, err, "forbidden")
		return
	}

	barberID, ok := paramID(c, "barberId")
	if !ok {
		return
	}
	serviceID, ok := paramID(c, "serviceId")
	if !ok {
		return
	}

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", httperr.Message("invalid_request"))
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), ucAppointment.BookInput{
		ClientID:       actor.UserID,
		BarberID:       barberID,
		ServiceID:      serviceID,
		RequestedStart: req.StartTime,
	})
	if err != nil {
		if be, ok := httperr.AsBusiness(err); ok {
			h.metrics.Booking(be.Code)
		} else {
			h.metrics.Booking("error")
		}
		httperr.Respond(c, err, "failed_to_create_appointment")
		return
	}

	h.metrics.Booking("created")
	c.JSON(http.StatusCreated, gin.H{
		"message":     "Compromisso agendado com sucesso.",
		"appointment": dto.Appointment(ap, h.zone),
	})
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	barberID, ok := paramID(c, "barberId")
	if !ok {
		return
	}
	serviceID, ok := paramID(c, "serviceId")
	if !ok {
		return
	}

	date := c.Query("date")
	windows, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		BarberID:  barberID,
		ServiceID: serviceID,
		Date:      date,
	})
	if err != nil {
		httperr.Respond(c, err, "failed_to_get_availability")
		return
	}

	h.metrics.Windows(len(windows))
	c.JSON(http.StatusOK, gin.H{
		"date":       date,
		"barber_id":  barberID,
		"service_id": serviceID,
		"windows":    dto.Windows(windows, h.zone),
	})
}

// ======================================================
// LISTS
// ======================================================

func (h *AppointmentHandler) ListAll(c *gin.Context) {
	aps, err := h.list.All(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		httperr.Respond(c, err, "failed_to_list_appointments")
		return
	}
	c.JSON(http.StatusOK, dto.Appointments(aps, h.zone))
}

func (h *AppointmentHandler) ListForBarber(c *gin.Context) {
	aps, err := h.list.ForBarber(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		httperr.Respond(c, err, "failed_to_list_appointments")
		return
	}
	c.JSON(http.StatusOK, dto.Appointments(aps, h.zone))
}

func (h *AppointmentHandler) ListForClient(c *gin.Context) {
	aps, err := h.list.ForClient(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		httperr.Respond(c, err, "failed_to_list_appointments")
		return
	}
	c.JSON(http.StatusOK, dto.Appointments(aps, h.zone))
}

func (h *AppointmentHandler) GetByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ap, err := h.list.ByID(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		httperr.Respond(c, err, "failed_to_get_appointment")
		return
	}
	c.JSON(http.StatusOK, dto.Appointment(ap, h.zone))
}

// ======================================================
// STATUS / DELETE
// ======================================================

func (h *AppointmentHandler) ChangeStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_status", httperr.Message("invalid_status"))
		return
	}

	ap, err := h.changeStatus.Execute(c.Request.Context(), middleware.Actor(c), id, req.Status)
	if err != nil {
		httperr.Respond(c, err, "failed_to_change_status")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Compromisso " + ap.Status + " com sucesso.",
		"appointment": dto.Appointment(ap, h.zone),
	})
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), middleware.Actor(c), id); err != nil {
		httperr.Respond(c, err, "failed_to_delete_appointment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Compromisso deletado com sucesso."})
}
