package model

import (
	"fmt"
	"strings"
	"time"

	"library-backend/pkg/identity"
)

// Role of an account. Stored and transported upper-case.
type Role string

const (
	RoleAdmin  Role = "ADMIN"  // Full mutation access on authors and books
	RoleCommon Role = "COMMON" // Read-only access
)

// AllRoles returns all valid roles
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleCommon}
}

// ParseRole converts a role string (any case) into a Role
func ParseRole(value string) (Role, error) {
	role := Role(strings.ToUpper(strings.TrimSpace(value)))
	if !role.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, value)
	}
	return role, nil
}

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleCommon
}

func (r Role) String() string {
	return string(r)
}

// User is the account aggregate. Fields are reachable only through accessors;
// mutation goes through the explicit update methods.
type User struct {
	id           identity.UniqueID
	name         string
	email        string
	passwordHash string
	role         Role
	createdAt    time.Time
	updatedAt    time.Time
}

type UserProps struct {
	Name         string
	Email        string
	PasswordHash string
	Role         Role
}

// NewUser creates a user with a generated identity
func NewUser(props UserProps) *User {
	now := time.Now().UTC()
	return &User{
		id:           identity.New(),
		name:         props.Name,
		email:        props.Email,
		passwordHash: props.PasswordHash,
		role:         props.Role,
		createdAt:    now,
		updatedAt:    now,
	}
}

// RestoreUser rebuilds a user read back from storage
func RestoreUser(id identity.UniqueID, props UserProps, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		name:         props.Name,
		email:        props.Email,
		passwordHash: props.PasswordHash,
		role:         props.Role,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() identity.UniqueID { return u.id }
func (u *User) Name() string          { return u.name }
func (u *User) Email() string         { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Role() Role            { return u.role }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }

// IsAdmin reports whether the user may mutate authors and books
func (u *User) IsAdmin() bool {
	return u != nil && u.role == RoleAdmin
}

func (u *User) Rename(name string) {
	u.name = name
	u.touch()
}

// ChangeEmail does not check uniqueness; callers must
func (u *User) ChangeEmail(email string) {
	u.email = email
	u.touch()
}

// ChangePassword stores an already hashed password
func (u *User) ChangePassword(passwordHash string) {
	u.passwordHash = passwordHash
	u.touch()
}

func (u *User) touch() {
	u.updatedAt = time.Now().UTC()
}
