package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

func TestIssueAndParse(t *testing.T) {
	iss := NewIssuer("segredo", time.Hour)
	user := &models.User{ID: 42, Role: models.RoleBarber}

	token, exp, err := iss.Issue(user)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := iss.Parse(token)
	require.NoError(t, err)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
	assert.Equal(t, models.RoleBarber, claims.Role)
}

func TestIssueSameSecondDiffers(t *testing.T) {
	fixed := time.Date(2030, 3, 1, 12, 0, 0, 0, time.UTC)
	iss := NewIssuer("segredo", time.Hour)
	iss.now = func() time.Time { return fixed }
	user := &models.User{ID: 7, Role: models.RoleClient}

	a, _, err := iss.Issue(user)
	require.NoError(t, err)
	b, _, err := iss.Issue(user)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, _, err := NewIssuer("a", time.Hour).Issue(&models.User{ID: 1, Role: models.RoleClient})
	require.NoError(t, err)

	_, err = NewIssuer("b", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpired(t *testing.T) {
	iss := NewIssuer("s", time.Minute)
	iss.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, _, err := iss.Issue(&models.User{ID: 1, Role: models.RoleClient})
	require.NoError(t, err)

	_, err = NewIssuer("s", time.Minute).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsUnknownRole(t *testing.T) {
	iss := NewIssuer("s", time.Hour)
	token, _, err := iss.Issue(&models.User{ID: 1, Role: "owner"})
	require.NoError(t, err)

	_, err = iss.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsNoneAlgorithm(t *testing.T) {
	claims := Claims{Role: models.RoleAdmin, RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewIssuer("s", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3nh@forte")
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, "s3nh@forte"))
	assert.False(t, CheckPassword(hash, "outra"))
}
