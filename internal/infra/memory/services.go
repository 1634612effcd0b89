package memory

import (
	"context"
	"sort"
	"strings"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type Services struct{ *Store }

func (s Services) List(_ context.Context, query string) ([]models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Service
	for _, sv := range s.services {
		if query != "" && !strings.Contains(strings.ToLower(sv.Name), query) {
			continue
		}
		out = append(out, sv)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s Services) Create(_ context.Context, sv *models.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sv.ID = s.id()
	s.services[sv.ID] = *sv
	return nil
}

func (s Services) Delete(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.services[id]; !ok {
		return domain.ErrRecordNotFound
	}
	delete(s.services, id)
	return nil
}
