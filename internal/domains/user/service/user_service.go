package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"library-backend/internal/domains/user/model"
	"library-backend/internal/domains/user/repository"
	"library-backend/internal/shared/apperr"
	"library-backend/pkg/either"
	"library-backend/pkg/jwt"
	"library-backend/pkg/logger"
)

type userService struct {
	users     repository.UsersRepository
	hasher    HashGenerator
	comparer  HashComparer
	encrypter Encrypter
	sessions  RefreshTokenStore
}

// NewUserService wires the account and session use cases.
// A single bcrypt hasher usually serves as both hasher and comparer.
func NewUserService(
	users repository.UsersRepository,
	hasher HashGenerator,
	comparer HashComparer,
	encrypter Encrypter,
	sessions RefreshTokenStore,
) Service {
	return &userService{
		users:     users,
		hasher:    hasher,
		comparer:  comparer,
		encrypter: encrypter,
		sessions:  sessions,
	}
}

// ========================================
// ACCOUNTS
// ========================================

func (s *userService) CreateUser(ctx context.Context, in CreateUserInput) (either.Either[apperr.UseCaseError, *model.User], error) {
	type result = either.Either[apperr.UseCaseError, *model.User]
	in.Email = normalizeEmail(in.Email)

	existing, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return result{}, fmt.Errorf("find user by email: %w", err)
	}
	if existing != nil {
		return either.Left[apperr.UseCaseError, *model.User](&apperr.UserAlreadyExistsError{Email: in.Email}), nil
	}

	passwordHash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return result{}, fmt.Errorf("hash password: %w", err)
	}

	user := model.NewUser(model.UserProps{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: passwordHash,
		Role:         in.Role,
	})

	if err := s.users.Create(ctx, user); err != nil {
		// Lost a race with a concurrent signup on the same email
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return either.Left[apperr.UseCaseError, *model.User](&apperr.UserAlreadyExistsError{Email: in.Email}), nil
		}
		return result{}, fmt.Errorf("create user: %w", err)
	}

	logger.Info("user created", map[string]interface{}{"user_id": user.ID().String(), "role": user.Role().String()})
	return either.Right[apperr.UseCaseError](user), nil
}

// ========================================
// SESSIONS
// ========================================

func (s *userService) Authenticate(ctx context.Context, in AuthenticateInput) (either.Either[apperr.UseCaseError, Session], error) {
	type result = either.Either[apperr.UseCaseError, Session]
	wrongCredentials := either.Left[apperr.UseCaseError, Session](apperr.WrongCredentialsError{})

	user, err := s.users.FindByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		return result{}, fmt.Errorf("find user by email: %w", err)
	}
	if user == nil {
		return wrongCredentials, nil
	}

	ok, err := s.comparer.Compare(in.Password, user.PasswordHash())
	if err != nil {
		return result{}, fmt.Errorf("compare password: %w", err)
	}
	if !ok {
		return wrongCredentials, nil
	}

	access, refresh, err := s.issueSession(ctx, user)
	if err != nil {
		return result{}, err
	}

	logger.Debug("session issued", map[string]interface{}{"user_id": user.ID().String()})
	return either.Right[apperr.UseCaseError](Session{
		AccessToken:  access,
		RefreshToken: refresh,
		Role:         user.Role(),
	}), nil
}

// RefreshToken exchanges a live refresh token for a new pair. The presented
// token id is consumed, so every refresh token works exactly once.
func (s *userService) RefreshToken(ctx context.Context, refreshToken string) (either.Either[apperr.UseCaseError, RefreshedSession], error) {
	type result = either.Either[apperr.UseCaseError, RefreshedSession]

	validated := s.encrypter.ValidateRefreshToken(refreshToken)
	if validated.IsLeft() {
		return either.Left[apperr.UseCaseError, RefreshedSession](validated.LeftValue()), nil
	}
	claims := validated.RightValue()

	// subject before Consume: a token lapsing here stays a Left and keeps its id
	userID, err := s.encrypter.GetUserIDFromRefreshToken(refreshToken)
	if err != nil {
		var invalid *apperr.InvalidTokenError
		if errors.As(err, &invalid) {
			return either.Left[apperr.UseCaseError, RefreshedSession](invalid), nil
		}
		return result{}, fmt.Errorf("read refresh token subject: %w", err)
	}

	live, err := s.sessions.Consume(ctx, claims.ID)
	if err != nil {
		return result{}, fmt.Errorf("consume refresh token: %w", err)
	}
	if !live {
		logger.Warn("refresh token reused or revoked", map[string]interface{}{"user_id": claims.UserID()})
		return either.Left[apperr.UseCaseError, RefreshedSession](&apperr.InvalidTokenError{Reason: "revoked"}), nil
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return result{}, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return either.Left[apperr.UseCaseError, RefreshedSession](apperr.NotFound("user")), nil
	}

	// The role comes from the stored user, not from the old token
	access, refresh, err := s.issueSession(ctx, user)
	if err != nil {
		return result{}, err
	}

	return either.Right[apperr.UseCaseError](RefreshedSession{
		AccessToken:  access,
		RefreshToken: refresh,
	}), nil
}

func (s *userService) Logout(ctx context.Context, refreshToken string) (either.Either[apperr.UseCaseError, struct{}], error) {
	validated := s.encrypter.ValidateRefreshToken(refreshToken)
	if validated.IsLeft() {
		return either.Left[apperr.UseCaseError, struct{}](validated.LeftValue()), nil
	}

	if err := s.sessions.Revoke(ctx, validated.RightValue().ID); err != nil {
		return either.Either[apperr.UseCaseError, struct{}]{}, fmt.Errorf("revoke refresh token: %w", err)
	}
	return either.Right[apperr.UseCaseError](struct{}{}), nil
}

// issueSession mints an access token and a registered refresh token
func (s *userService) issueSession(ctx context.Context, user *model.User) (string, string, error) {
	claims := jwt.Claims{Role: user.Role().String(), Type: jwt.TypeAccess}
	claims.Subject = user.ID().String()

	access, err := s.encrypter.Encrypt(claims, 0)
	if err != nil {
		return "", "", fmt.Errorf("encrypt access token: %w", err)
	}

	refresh, err := s.encrypter.GenerateRefreshToken(user)
	if err != nil {
		return "", "", fmt.Errorf("generate refresh token: %w", err)
	}

	if err := s.sessions.Save(ctx, refresh.ID, user.ID().String(), refresh.TTL); err != nil {
		return "", "", fmt.Errorf("save refresh token: %w", err)
	}

	return access, refresh.Value, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
