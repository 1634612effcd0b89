package session

import (
	"context"
	"sync"
	"time"
)

// Blacklist guarda tokens revogados (logout) até expirarem.
type Blacklist interface {
	Revoke(ctx context.Context, token string, until time.Time) error
	Revoked(ctx context.Context, token string) (bool, error)
}

type MemoryBlacklist struct {
	mu     sync.Mutex
	tokens map[string]time.Time
	now    func() time.Time
}

func NewMemoryBlacklist() *MemoryBlacklist {
	return &MemoryBlacklist{tokens: make(map[string]time.Time), now: time.Now}
}

func (m *MemoryBlacklist) Revoke(_ context.Context, token string, until time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for t, exp := range m.tokens {
		if !exp.After(now) {
			delete(m.tokens, t)
		}
	}
	if until.After(now) {
		m.tokens[token] = until
	}
	return nil
}

func (m *MemoryBlacklist) Revoked(_ context.Context, token string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	exp, ok := m.tokens[token]
	return ok && exp.After(m.now()), nil
}

var _ Blacklist = (*MemoryBlacklist)(nil)
