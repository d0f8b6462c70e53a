package memory

import (
	"context"
	"strings"
	"sync"

	"library-backend/internal/domains/user/model"
	"library-backend/internal/domains/user/repository"
	"library-backend/pkg/identity"
)

// UserRepository keeps users in a map guarded by a RWMutex.
// Entities are copied in and out so callers never share state with the store.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*model.User
}

var _ repository.UsersRepository = (*UserRepository)(nil)

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*model.User)}
}

func (r *UserRepository) Create(_ context.Context, u *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if strings.EqualFold(existing.Email(), u.Email()) {
			return repository.ErrDuplicateEmail
		}
	}
	r.users[u.ID().String()] = cloneUser(u)
	return nil
}

func (r *UserRepository) FindByID(_ context.Context, id identity.UniqueID) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id.String()]
	if !ok {
		return nil, nil
	}
	return cloneUser(u), nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email(), email) {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (r *UserRepository) Update(_ context.Context, u *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[u.ID().String()]; !ok {
		return ErrNotStored
	}
	for id, existing := range r.users {
		if id != u.ID().String() && strings.EqualFold(existing.Email(), u.Email()) {
			return repository.ErrDuplicateEmail
		}
	}
	r.users[u.ID().String()] = cloneUser(u)
	return nil
}

// Len is used by tests to assert that no write happened
func (r *UserRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

func cloneUser(u *model.User) *model.User {
	return model.RestoreUser(u.ID(), model.UserProps{
		Name:         u.Name(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role(),
	}, u.CreatedAt(), u.UpdatedAt())
}
