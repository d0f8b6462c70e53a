package token

import (
	"time"

	"library-backend/internal/domains/user/model"
	"library-backend/internal/domains/user/service"
	"library-backend/internal/shared/apperr"
	"library-backend/pkg/either"
	"library-backend/pkg/identity"
	"library-backend/pkg/jwt"
)

// Encrypter adapts the HS256 jwt.Manager to the session use cases
type Encrypter struct {
	manager *jwt.Manager
}

var _ service.Encrypter = (*Encrypter)(nil)

func NewEncrypter(manager *jwt.Manager) *Encrypter {
	return &Encrypter{manager: manager}
}

func (e *Encrypter) Encrypt(claims jwt.Claims, expiry time.Duration) (string, error) {
	if expiry <= 0 {
		expiry = e.manager.AccessTTL()
	}
	issued, err := e.manager.Sign(claims, expiry)
	if err != nil {
		return "", err
	}
	return issued.Value, nil
}

func (e *Encrypter) ValidateAccessToken(token string) either.Either[apperr.UseCaseError, *jwt.Claims] {
	return toEither(e.manager.ValidateAccessToken(token))
}

func (e *Encrypter) ValidateRefreshToken(token string) either.Either[apperr.UseCaseError, *jwt.Claims] {
	return toEither(e.manager.ValidateRefreshToken(token))
}

func (e *Encrypter) GetUserIDFromRefreshToken(token string) (identity.UniqueID, error) {
	claims, err := e.manager.ValidateRefreshToken(token)
	if err != nil {
		return identity.UniqueID{}, invalidToken(err)
	}
	return identity.From(claims.UserID()), nil
}

func (e *Encrypter) GenerateRefreshToken(user *model.User) (jwt.IssuedToken, error) {
	return e.manager.GenerateRefreshToken(user.ID().String(), user.Role().String())
}

func toEither(claims *jwt.Claims, err error) either.Either[apperr.UseCaseError, *jwt.Claims] {
	if err != nil {
		return either.Left[apperr.UseCaseError, *jwt.Claims](invalidToken(err))
	}
	return either.Right[apperr.UseCaseError](claims)
}

func invalidToken(err error) *apperr.InvalidTokenError {
	return &apperr.InvalidTokenError{Reason: jwt.ReasonOf(err), Err: err}
}
