package memory

import (
	"context"
	"sort"

	"github.com/jackc/pgx/v5/pgconn"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// Users exposes the Store through the user repository contract.
type Users struct{ *Store }

func (u Users) Create(_ context.Context, user *models.User) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, existing := range u.users {
		if existing.Email == user.Email {
			// mesma falha que o índice único do Postgres
			return &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"}
		}
	}
	user.ID = u.id()
	u.users[user.ID] = *user
	return nil
}

func (u Users) FindByID(_ context.Context, id uint) (*models.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	user, ok := u.users[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return &user, nil
}

func (u Users) FindByEmail(_ context.Context, email string) (*models.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, user := range u.users {
		if user.Email == email {
			return &user, nil
		}
	}
	return nil, domain.ErrRecordNotFound
}

func (u Users) ListByRole(_ context.Context, role string) ([]models.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	var out []models.User
	for _, user := range u.users {
		if user.Role == role {
			out = append(out, user)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (u Users) Update(_ context.Context, user *models.User) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	current, ok := u.users[user.ID]
	if !ok {
		return domain.ErrRecordNotFound
	}
	for id, other := range u.users {
		if id != user.ID && other.Email == user.Email {
			return &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"}
		}
	}
	current.Name = user.Name
	current.Email = user.Email
	current.Phone = user.Phone
	current.Avatar = user.Avatar
	current.PasswordHash = user.PasswordHash
	u.users[user.ID] = current
	return nil
}

func (u Users) SetRole(_ context.Context, id uint, role string) (*models.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	user, ok := u.users[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	user.Role = role
	u.users[id] = user
	return &user, nil
}

func (u Users) Delete(_ context.Context, id uint) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, ok := u.users[id]; !ok {
		return domain.ErrRecordNotFound
	}
	delete(u.users, id)
	for apID, ap := range u.appointments {
		if ap.ClientID == id || ap.BarberID == id {
			delete(u.appointments, apID)
		}
	}
	return nil
}
