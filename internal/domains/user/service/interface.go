package service

import (
	"context"
	"time"

	"library-backend/internal/domains/user/model"
	"library-backend/internal/shared/apperr"
	"library-backend/pkg/either"
	"library-backend/pkg/identity"
	"library-backend/pkg/jwt"
)

// ========================================
// CRYPTOGRAPHY PORTS
// ========================================

type HashGenerator interface {
	Hash(plain string) (string, error)
}

type HashComparer interface {
	Compare(plain, digest string) (bool, error)
}

// Encrypter issues and verifies signed session tokens.
// Verification failures are expected and travel in the Left side.
type Encrypter interface {
	// Encrypt signs claims; expiry 0 means the access token default
	Encrypt(claims jwt.Claims, expiry time.Duration) (string, error)
	ValidateAccessToken(token string) either.Either[apperr.UseCaseError, *jwt.Claims]
	ValidateRefreshToken(token string) either.Either[apperr.UseCaseError, *jwt.Claims]
	GetUserIDFromRefreshToken(token string) (identity.UniqueID, error)
	GenerateRefreshToken(user *model.User) (jwt.IssuedToken, error)
}

// RefreshTokenStore tracks refresh token ids that may still be exchanged
type RefreshTokenStore interface {
	Save(ctx context.Context, jti, userID string, ttl time.Duration) error
	// Consume atomically removes jti and reports whether it was live
	Consume(ctx context.Context, jti string) (bool, error)
	Revoke(ctx context.Context, jti string) error
}

// ========================================
// USE CASES
// ========================================

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     model.Role
}

type AuthenticateInput struct {
	Email    string
	Password string
}

type Session struct {
	AccessToken  string
	RefreshToken string
	Role         model.Role
}

type RefreshedSession struct {
	AccessToken  string
	RefreshToken string
}

type Service interface {
	CreateUser(ctx context.Context, in CreateUserInput) (either.Either[apperr.UseCaseError, *model.User], error)
	Authenticate(ctx context.Context, in AuthenticateInput) (either.Either[apperr.UseCaseError, Session], error)
	RefreshToken(ctx context.Context, refreshToken string) (either.Either[apperr.UseCaseError, RefreshedSession], error)
	// Logout revokes the refresh token; revoking twice is a success
	Logout(ctx context.Context, refreshToken string) (either.Either[apperr.UseCaseError, struct{}], error)
}
