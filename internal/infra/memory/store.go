// Package memory holds in-process stores with the same contracts as the gorm
// repositories. Tests wire handlers and use cases against it.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type Store struct {
	mu           sync.Mutex
	users        map[uint]models.User
	services     map[uint]models.Service
	appointments map[uint]models.Appointment
	audit        []models.AuditLog
	nextID       uint
	creates      int

	// hooks
	CreateErr   error
	FindErr     error
	CreateDelay time.Duration
}

func New() *Store {
	return &Store{
		users:        map[uint]models.User{},
		services:     map[uint]models.Service{},
		appointments: map[uint]models.Appointment{},
		nextID:       100,
	}
}

func (s *Store) id() uint {
	s.nextID++
	return s.nextID
}

// ======================================================
// Seeding
// ======================================================

func (s *Store) PutUser(u models.User) uint {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == 0 {
		u.ID = s.id()
	}
	s.users[u.ID] = u
	return u.ID
}

func (s *Store) PutService(sv models.Service) uint {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sv.ID == 0 {
		sv.ID = s.id()
	}
	s.services[sv.ID] = sv
	return sv.ID
}

func (s *Store) PutAppointment(ap models.Appointment) uint {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ap.ID == 0 {
		ap.ID = s.id()
	}
	s.appointments[ap.ID] = ap
	return ap.ID
}

func (s *Store) Creates() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creates
}

// ======================================================
// domain.Repository
// ======================================================

func (s *Store) FindBarber(_ context.Context, id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return &u, nil
}

func (s *Store) FindService(_ context.Context, id uint) (*models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sv, ok := s.services[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return &sv, nil
}

func (s *Store) FindAppointmentsForBarber(
	_ context.Context,
	barberID uint,
	within *domain.TimeRange,
	excludeCanceled bool,
) ([]models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FindErr != nil {
		return nil, s.FindErr
	}

	var out []models.Appointment
	for _, ap := range s.appointments {
		if ap.BarberID != barberID {
			continue
		}
		if excludeCanceled && ap.Status == string(domain.StatusCanceled) {
			continue
		}
		if within != nil && !domain.Overlaps(ap.StartTime, ap.EndTime, within.From, within.To) {
			continue
		}
		out = append(out, ap)
	}
	sortByStart(out)
	return out, nil
}

func (s *Store) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if s.CreateDelay > 0 {
		time.Sleep(s.CreateDelay)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.CreateErr != nil {
		return s.CreateErr
	}
	ap.ID = s.id()
	ap.CreatedAt = time.Now()
	s.appointments[ap.ID] = *ap
	s.creates++
	return nil
}

func (s *Store) UpdateAppointmentStatus(_ context.Context, id uint, status domain.Status) (*models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ap, ok := s.appointments[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	if err := domain.CanTransition(domain.Status(ap.Status), status); err != nil {
		return nil, err
	}
	ap.Status = string(status)
	s.appointments[id] = ap
	return &ap, nil
}

func (s *Store) DeleteAppointment(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.appointments[id]; !ok {
		return domain.ErrRecordNotFound
	}
	delete(s.appointments, id)
	return nil
}

func (s *Store) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ap, ok := s.appointments[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	s.preload(&ap)
	return &ap, nil
}

func (s *Store) ListAppointments(_ context.Context, f domain.ListFilter) ([]models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Appointment
	for _, ap := range s.appointments {
		if f.BarberID != 0 && ap.BarberID != f.BarberID {
			continue
		}
		if f.ClientID != 0 && ap.ClientID != f.ClientID {
			continue
		}
		s.preload(&ap)
		out = append(out, ap)
	}
	sortByStart(out)
	return out, nil
}

func (s *Store) preload(ap *models.Appointment) {
	ap.Client = s.users[ap.ClientID]
	ap.Barber = s.users[ap.BarberID]
	ap.Service = s.services[ap.ServiceID]
}

func sortByStart(aps []models.Appointment) {
	sort.Slice(aps, func(i, j int) bool { return aps[i].StartTime.Before(aps[j].StartTime) })
}

var _ domain.Repository = (*Store)(nil)
