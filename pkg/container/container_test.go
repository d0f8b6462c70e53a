package container_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/config"
	"library-backend/internal/domains/user/model"
	userService "library-backend/internal/domains/user/service"
	"library-backend/pkg/container"
)

func memoryConfig() *config.Config {
	return &config.Config{
		App:      config.AppConfig{Environment: "test"},
		Storage:  config.StorageConfig{Driver: config.StorageDriverMemory, SessionStore: config.SessionStoreMemory},
		JWT:      config.JWTConfig{Secret: "test-secret", Issuer: "library-backend", AccessTokenExpiry: 15, RefreshTokenExpiry: 168},
		Security: config.SecurityConfig{BcryptCost: 4},
	}
}

func TestNewContainer_Memory(t *testing.T) {
	c, err := container.NewContainer(context.Background(), memoryConfig())
	require.NoError(t, err)
	defer c.Cleanup()

	assert.Nil(t, c.DB)
	assert.Nil(t, c.Redis)
	assert.NotNil(t, c.UserHandler)
	assert.NotNil(t, c.AuthorHandler)
	assert.NotNil(t, c.BookHandler)

	ctx := context.Background()
	created, err := c.UserService.CreateUser(ctx, userService.CreateUserInput{
		Name: "Ada", Email: "ada@example.com", Password: "secret", Role: model.RoleAdmin,
	})
	require.NoError(t, err)
	require.True(t, created.IsRight())

	session, err := c.UserService.Authenticate(ctx, userService.AuthenticateInput{Email: "ada@example.com", Password: "secret"})
	require.NoError(t, err)
	require.True(t, session.IsRight())

	claims := c.Encrypter.ValidateAccessToken(session.RightValue().AccessToken)
	require.True(t, claims.IsRight())
	assert.Equal(t, created.RightValue().ID().String(), claims.RightValue().UserID())
}

func TestCleanup_PartialContainer(t *testing.T) {
	assert.NotPanics(t, func() { (&container.Container{}).Cleanup() })
}
