package appointment

import (
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/authz"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/memory"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

const (
	barberID    uint = 2
	otherBarber uint = 3
	clientID    uint = 10
	haircutID   uint = 1
	brokenID    uint = 9
)

var (
	policy   = domain.DefaultPolicy()
	fixedNow = time.Date(2030, 3, 1, 12, 0, 0, 0, time.UTC)

	barberActor = authz.Actor{UserID: barberID, Role: models.RoleBarber}
	otherActor  = authz.Actor{UserID: otherBarber, Role: models.RoleBarber}
	clientActor = authz.Actor{UserID: clientID, Role: models.RoleClient}
	adminActor  = authz.Actor{UserID: 1, Role: models.RoleAdmin}
)

func clock() time.Time { return fixedNow }

// local builds an instant from civil time on 2030-03-04 in the policy zone.
func local(h, m int) time.Time {
	return time.Date(2030, 3, 4, h, m, 0, 0, policy.Zone).UTC()
}

func seededRepo() *memory.Store {
	r := memory.New()
	// widen the check-then-insert window so unserialized callers would race
	r.CreateDelay = time.Millisecond

	r.PutUser(models.User{ID: barberID, Name: "Zé", Role: models.RoleBarber})
	r.PutUser(models.User{ID: otherBarber, Name: "Léo", Role: models.RoleBarber})
	r.PutUser(models.User{ID: clientID, Name: "Ana", Role: models.RoleClient})
	r.PutService(models.Service{ID: haircutID, Name: "Corte", DurationMin: 30})
	r.PutService(models.Service{ID: brokenID, Name: "Quebrado", DurationMin: 0})
	return r
}
