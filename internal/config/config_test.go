package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSchedulingIsValid(t *testing.T) {
	require.NoError(t, DefaultScheduling().Validate())
}

func TestSchedulingValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Scheduling)
	}{
		{"bad open", func(s *Scheduling) { s.OpenAt = "8h" }},
		{"bad close", func(s *Scheduling) { s.CloseAt = "25:00" }},
		{"open after close", func(s *Scheduling) { s.OpenAt, s.CloseAt = "18:00", "08:00" }},
		{"zero grid", func(s *Scheduling) { s.GridMinutes = 0 }},
		{"grid does not divide tolerance", func(s *Scheduling) { s.GridMinutes = 10 }},
		{"negative tolerance", func(s *Scheduling) { s.ToleranceMinutes = -15 }},
		{"offset out of range", func(s *Scheduling) { s.UTCOffsetHours = 20 }},
		{"unknown policy", func(s *Scheduling) { s.TolerancePolicy = "leading" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultScheduling()
			tt.mutate(&s)
			assert.Error(t, s.Validate())
		})
	}
}

func TestLoadSchedulingOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scheduling.toml")
	content := "close_at = \"20:00\"\ngrid_minutes = 5\ntolerance_policy = \"symmetric\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	s, err := LoadScheduling(path)
	require.NoError(t, err)

	assert.Equal(t, "08:00", s.OpenAt)
	assert.Equal(t, "20:00", s.CloseAt)
	assert.Equal(t, 5, s.GridMinutes)
	assert.Equal(t, 15, s.ToleranceMinutes)
	assert.Equal(t, "symmetric", s.TolerancePolicy)
	assert.NoError(t, s.Validate())
}

func TestLoadSchedulingMissingFile(t *testing.T) {
	_, err := LoadScheduling(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("REQUEST_TIMEOUT", "3s")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("BOOKING_LOCK_TTL", "not-a-duration")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, ,http://localhost:3000")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, 5*time.Second, cfg.LockTTL)
	assert.Equal(t, []string{"https://app.example.com", "http://localhost:3000"}, cfg.CORSOrigins)
	assert.Equal(t, DefaultScheduling(), cfg.Scheduling)
}
