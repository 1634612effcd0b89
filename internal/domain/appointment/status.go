package appointment

import "github.com/BruksfildServices01/barbershop-booking/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCanceled  Status = "canceled"
)

// ===============================
// Validations
// ===============================

// ParseTargetStatus aceita apenas os status que o barbeiro pode aplicar
func ParseTargetStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusConfirmed, StatusCanceled:
		return Status(s), nil
	}
	return "", httperr.ErrValidation("invalid_status")
}

// CanTransition define as mudanças de status permitidas
func CanTransition(current, next Status) error {
	switch current {
	case StatusPending:
		if next == StatusConfirmed || next == StatusCanceled {
			return nil
		}
	case StatusConfirmed:
		if next == StatusCanceled {
			return nil
		}
	}
	return httperr.ErrConflict("invalid_state")
}

// Blocks reports whether an appointment in this status holds its slot.
func (s Status) Blocks() bool {
	return s != StatusCanceled
}

func InitialStatus() Status {
	return StatusPending
}
