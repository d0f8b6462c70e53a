package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/user/model"
	"library-backend/pkg/identity"
)

func TestParseRole(t *testing.T) {
	role, err := model.ParseRole("admin")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, role)

	role, err = model.ParseRole(" Common ")
	require.NoError(t, err)
	assert.Equal(t, model.RoleCommon, role)

	_, err = model.ParseRole("root")
	assert.ErrorIs(t, err, model.ErrInvalidRole)
}

func TestNewUser(t *testing.T) {
	u := model.NewUser(model.UserProps{Name: "Ana", Email: "ana@example.com", PasswordHash: "hash", Role: model.RoleCommon})

	assert.False(t, u.ID().IsZero())
	assert.Equal(t, "ana@example.com", u.Email())
	assert.False(t, u.IsAdmin())
	assert.False(t, u.CreatedAt().IsZero())
}

func TestRestoreAndMutate(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	u := model.RestoreUser(identity.From("u-1"), model.UserProps{Name: "Ana", Email: "a@x.io", PasswordHash: "h1", Role: model.RoleAdmin}, created, created)

	assert.True(t, u.IsAdmin())
	assert.Equal(t, "u-1", u.ID().String())

	u.ChangePassword("h2")
	u.Rename("Ana Maria")

	assert.Equal(t, "h2", u.PasswordHash())
	assert.Equal(t, "Ana Maria", u.Name())
	assert.True(t, u.UpdatedAt().After(created))
	assert.Equal(t, created, u.CreatedAt())
}

func TestNilUserIsNotAdmin(t *testing.T) {
	var u *model.User
	assert.False(t, u.IsAdmin())
}

func TestCreateAccountRequestValidate(t *testing.T) {
	valid := model.CreateAccountRequest{Name: "Ana", Email: "ana@example.com", Password: "secret", Role: "ADMIN"}
	assert.NoError(t, valid.Validate())

	badRole := valid
	badRole.Role = "owner"
	assert.Error(t, badRole.Validate())

	badEmail := valid
	badEmail.Email = "not-an-email"
	assert.Error(t, badEmail.Validate())

	normalized := model.CreateAccountRequest{Name: " Ana ", Email: " Ana@Example.COM "}.Normalized()
	assert.Equal(t, "Ana", normalized.Name)
	assert.Equal(t, "ana@example.com", normalized.Email)
}

func TestToResponseHidesHash(t *testing.T) {
	u := model.NewUser(model.UserProps{Name: "Ana", Email: "a@x.io", PasswordHash: "secret-hash", Role: model.RoleAdmin})
	resp := u.ToResponse()

	assert.Equal(t, "ADMIN", resp.Role)
	assert.NotContains(t, resp.ID+resp.Name+resp.Email+resp.Role, "secret-hash")
}
