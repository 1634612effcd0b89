package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/authz"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs AuditStore
	zone *time.Location
}

func NewAuditLogsHandler(logs AuditStore, zone *time.Location) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs, zone: zone}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	if err := authz.CanListAll(middleware.Actor(c)); err != nil {
		httperr.Respond(c, err, "forbidden")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	f := repository.AuditFilter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Page:   page,
		Limit:  limit,
	}

	// --------------------------------------------------
	// Filtros de data (dia civil do fuso da barbearia)
	// --------------------------------------------------

	if fromStr := c.Query("from"); fromStr != "" {
		if from, err := timezone.ParseDate(fromStr, h.zone); err == nil {
			f.From = &from
		}
	}

	if toStr := c.Query("to"); toStr != "" {
		if to, err := timezone.ParseDate(toStr, h.zone); err == nil {
			end := to.Add(24 * time.Hour)
			f.To = &end
		}
	}

	logs, total, err := h.logs.List(c.Request.Context(), f)
	if err != nil {
		httperr.Respond(c, err, "audit_list_failed")
		return
	}

	httpresp.Page(c, logs, page, limit, total)
}
