package appointment

import (
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// New monta um agendamento pendente; o fim vem da duração do serviço
func New(clientID, barberID uint, service *models.Service, start time.Time) *models.Appointment {
	return &models.Appointment{
		ClientID:  clientID,
		BarberID:  barberID,
		ServiceID: service.ID,
		StartTime: start.UTC(),
		EndTime:   start.UTC().Add(ServiceDuration(service)),
		Status:    string(InitialStatus()),
	}
}

// MaxServiceMinutes limita a duração de um serviço a um dia; acima disso
// DurationMin * time.Minute pode estourar int64.
const MaxServiceMinutes = 24 * 60

// ValidDuration reports whether the service yields an end strictly after its start.
func ValidDuration(service *models.Service) bool {
	return service.DurationMin > 0 && service.DurationMin <= MaxServiceMinutes
}

func ServiceDuration(service *models.Service) time.Duration {
	return time.Duration(service.DurationMin) * time.Minute
}

func ChangeStatus(ap *models.Appointment, next Status) error {
	if err := CanTransition(Status(ap.Status), next); err != nil {
		return err
	}
	ap.Status = string(next)
	return nil
}
