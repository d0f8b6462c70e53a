package token_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/user/model"
	"library-backend/internal/infrastructure/token"
	"library-backend/internal/shared/apperr"
	"library-backend/pkg/jwt"
)

func newEncrypter() (*token.Encrypter, *jwt.Manager) {
	m := jwt.NewManager(jwt.Config{Secret: "test-secret", Issuer: "library-backend"})
	return token.NewEncrypter(m), m
}

func TestEncryptAndValidateAccess(t *testing.T) {
	enc, _ := newEncrypter()

	tok, err := enc.Encrypt(jwt.Claims{Role: "ADMIN", Type: jwt.TypeAccess}, 0)
	require.NoError(t, err)

	// Encrypt leaves the subject to the caller
	res := enc.ValidateAccessToken(tok)
	require.True(t, res.IsLeft())

	claims := jwt.Claims{Role: "ADMIN", Type: jwt.TypeAccess}
	claims.Subject = "user-1"
	tok, err = enc.Encrypt(claims, time.Minute)
	require.NoError(t, err)

	res = enc.ValidateAccessToken(tok)
	require.True(t, res.IsRight())
	assert.Equal(t, "user-1", res.RightValue().UserID())
	assert.Equal(t, "ADMIN", res.RightValue().Role)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	enc, _ := newEncrypter()
	user := model.NewUser(model.UserProps{Name: "Ada", Email: "ada@x.io", Role: model.RoleCommon})

	issued, err := enc.GenerateRefreshToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.ID)
	assert.Equal(t, jwt.DefaultRefreshTTL, issued.TTL)

	res := enc.ValidateRefreshToken(issued.Value)
	require.True(t, res.IsRight())
	assert.Equal(t, issued.ID, res.RightValue().ID)

	id, err := enc.GetUserIDFromRefreshToken(issued.Value)
	require.NoError(t, err)
	assert.True(t, id.Equals(user.ID()))

	// a refresh token is not an access token
	wrong := enc.ValidateAccessToken(issued.Value)
	require.True(t, wrong.IsLeft())
	var invalid *apperr.InvalidTokenError
	require.ErrorAs(t, wrong.LeftValue(), &invalid)
	assert.Equal(t, "wrong_type", invalid.Reason)
}

func TestValidateForeignSignature(t *testing.T) {
	enc, _ := newEncrypter()
	other := jwt.NewManager(jwt.Config{Secret: "another-secret", Issuer: "library-backend"})

	issued, err := other.GenerateAccessToken("user-1", "ADMIN")
	require.NoError(t, err)

	res := enc.ValidateAccessToken(issued.Value)
	require.True(t, res.IsLeft())
	invalid, ok := res.LeftValue().(*apperr.InvalidTokenError)
	require.True(t, ok)
	assert.Equal(t, "bad_signature", invalid.Reason)

	_, err = enc.GetUserIDFromRefreshToken("garbage")
	assert.Error(t, err)
}
