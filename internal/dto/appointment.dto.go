package dto

import (
	"time"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

type PersonDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type ServiceRefDTO struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration"`
}

// AppointmentDTO carries times as civil time of the reporting zone, without
// offset suffix.
type AppointmentDTO struct {
	ID        uint   `json:"id"`
	ClientID  uint   `json:"client_id"`
	BarberID  uint   `json:"barber_id"`
	ServiceID uint   `json:"service_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Status    string `json:"status"`

	Client  *PersonDTO     `json:"client,omitempty"`
	Barber  *PersonDTO     `json:"barber,omitempty"`
	Service *ServiceRefDTO `json:"service,omitempty"`
}

func Appointment(ap *models.Appointment, loc *time.Location) AppointmentDTO {
	out := AppointmentDTO{
		ID:        ap.ID,
		ClientID:  ap.ClientID,
		BarberID:  ap.BarberID,
		ServiceID: ap.ServiceID,
		StartTime: timezone.FormatLocal(ap.StartTime, loc),
		EndTime:   timezone.FormatLocal(ap.EndTime, loc),
		Status:    ap.Status,
	}

	// relações só vêm preenchidas quando o repositório faz Preload
	if ap.Client.ID != 0 {
		out.Client = person(&ap.Client)
	}
	if ap.Barber.ID != 0 {
		out.Barber = person(&ap.Barber)
	}
	if ap.Service.ID != 0 {
		out.Service = &ServiceRefDTO{
			ID:       ap.Service.ID,
			Name:     ap.Service.Name,
			Price:    ap.Service.Price,
			Duration: ap.Service.DurationMin,
		}
	}
	return out
}

func Appointments(list []models.Appointment, loc *time.Location) []AppointmentDTO {
	out := make([]AppointmentDTO, 0, len(list))
	for i := range list {
		out = append(out, Appointment(&list[i], loc))
	}
	return out
}

func person(u *models.User) *PersonDTO {
	return &PersonDTO{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone}
}

type WindowDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func Windows(windows []domain.TimeWindow, loc *time.Location) []WindowDTO {
	out := make([]WindowDTO, 0, len(windows))
	for _, w := range windows {
		out = append(out, WindowDTO{
			Start: timezone.FormatLocal(w.Start, loc),
			End:   timezone.FormatLocal(w.End, loc),
		})
	}
	return out
}
