package authz

import (
	"context"
	"fmt"

	"library-backend/internal/domains/user/repository"
	"library-backend/internal/shared/apperr"
	"library-backend/pkg/identity"
	"library-backend/pkg/logger"
)

// EnsureAdmin loads the acting user and checks the persisted role.
// It returns NotAllowedError when the user is missing or not ADMIN, and a
// plain error only for storage faults.
func EnsureAdmin(ctx context.Context, users repository.UsersRepository, actorID identity.UniqueID) (apperr.UseCaseError, error) {
	actor, err := users.FindByID(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("find acting user: %w", err)
	}
	if !actor.IsAdmin() {
		logger.Info("mutation denied", map[string]interface{}{"actor_id": actorID.String()})
		return apperr.NotAllowedError{}, nil
	}
	return nil, nil
}
