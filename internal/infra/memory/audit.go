package memory

import (
	"context"
	"encoding/json"
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// Audit is both the dispatcher sink and the audit log reader.
type Audit struct{ *Store }

func (a Audit) Log(ev audit.Event) error {
	var meta string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			meta = string(b)
		}
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.audit = append(a.audit, models.AuditLog{
		ID:        a.id(),
		UserID:    ev.UserID,
		Action:    ev.Action,
		Entity:    ev.Entity,
		EntityID:  ev.EntityID,
		Metadata:  meta,
		CreatedAt: time.Now(),
	})
	return nil
}

func (a Audit) List(_ context.Context, f repository.AuditFilter) ([]models.AuditLog, int64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var matched []models.AuditLog
	// mais recentes primeiro
	for i := len(a.audit) - 1; i >= 0; i-- {
		l := a.audit[i]
		if f.Action != "" && l.Action != f.Action {
			continue
		}
		if f.Entity != "" && l.Entity != f.Entity {
			continue
		}
		if f.From != nil && l.CreatedAt.Before(*f.From) {
			continue
		}
		if f.To != nil && !l.CreatedAt.Before(*f.To) {
			continue
		}
		matched = append(matched, l)
	}

	total := int64(len(matched))
	start := (f.Page - 1) * f.Limit
	if start >= len(matched) {
		return []models.AuditLog{}, total, nil
	}
	end := min(start+f.Limit, len(matched))
	return matched[start:end], total, nil
}

var _ audit.Sink = Audit{}
