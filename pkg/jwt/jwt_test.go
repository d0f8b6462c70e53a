package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *Manager {
	return NewManager(Config{Secret: "test-secret", Issuer: "library-backend"})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := newTestManager()

	issued, err := m.GenerateAccessToken("user-1", "ADMIN")
	require.NoError(t, err)
	assert.NotEmpty(t, issued.Value)
	assert.NotEmpty(t, issued.ID)
	assert.Equal(t, DefaultAccessTTL, issued.TTL)

	claims, err := m.ValidateAccessToken(issued.Value)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID())
	assert.Equal(t, "ADMIN", claims.Role)
	assert.Equal(t, TypeAccess, claims.Type)
	assert.Equal(t, issued.ID, claims.ID)
	assert.Equal(t, "library-backend", claims.Issuer)
}

func TestTokenTypeIsEnforced(t *testing.T) {
	m := newTestManager()

	access, err := m.GenerateAccessToken("user-1", "COMMON")
	require.NoError(t, err)
	refresh, err := m.GenerateRefreshToken("user-1", "COMMON")
	require.NoError(t, err)

	_, err = m.ValidateRefreshToken(access.Value)
	assert.ErrorIs(t, err, ErrWrongTokenType)
	assert.Equal(t, "wrong_type", ReasonOf(err))

	_, err = m.ValidateAccessToken(refresh.Value)
	assert.ErrorIs(t, err, ErrWrongTokenType)

	claims, err := m.ValidateRefreshToken(refresh.Value)
	require.NoError(t, err)
	assert.Equal(t, TypeRefresh, claims.Type)
}

func TestExpiredToken(t *testing.T) {
	m := newTestManager()

	claims := Claims{Type: TypeAccess, RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"}}
	issued, err := m.Sign(claims, time.Nanosecond)
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)

	_, err = m.ValidateAccessToken(issued.Value)
	require.Error(t, err)
	assert.Equal(t, "expired", ReasonOf(err))
}

func TestWrongSecretAndIssuer(t *testing.T) {
	issued, err := newTestManager().GenerateAccessToken("user-1", "ADMIN")
	require.NoError(t, err)

	_, err = NewManager(Config{Secret: "other", Issuer: "library-backend"}).ValidateAccessToken(issued.Value)
	require.Error(t, err)
	assert.Equal(t, "bad_signature", ReasonOf(err))

	_, err = NewManager(Config{Secret: "test-secret", Issuer: "someone-else"}).ValidateAccessToken(issued.Value)
	assert.Error(t, err)
}

func TestMalformedToken(t *testing.T) {
	_, err := newTestManager().ValidateToken("not.a.jwt")
	require.Error(t, err)
	assert.Equal(t, "malformed", ReasonOf(err))
}

func TestSignDefaultsTTLByType(t *testing.T) {
	m := NewManager(Config{Secret: "s", AccessTTL: time.Minute, RefreshTTL: time.Hour})

	access, err := m.Sign(Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "u"}}, 0)
	require.NoError(t, err)
	assert.Equal(t, time.Minute, access.TTL)

	refresh, err := m.Sign(Claims{Type: TypeRefresh, RegisteredClaims: jwt.RegisteredClaims{Subject: "u"}}, 0)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, refresh.TTL)
}
