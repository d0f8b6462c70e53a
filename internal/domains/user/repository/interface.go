package repository

import (
	"context"

	"library-backend/internal/domains/user/model"
	"library-backend/pkg/identity"
)

// UsersRepository is the storage port of the user aggregate.
// Finders return a nil user (and nil error) when nothing matches.
type UsersRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id identity.UniqueID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
}
