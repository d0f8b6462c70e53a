package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/user/model"
	"library-backend/pkg/identity"
)

// ErrDuplicateEmail is returned when the unique index on LOWER(users.email) rejects a write
var ErrDuplicateEmail = errors.New("email already exists")

const uniqueViolation = "23505"

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository returns the pgx implementation of UsersRepository
func NewPostgresRepository(pool *pgxpool.Pool) UsersRepository {
	return &postgresRepository{pool: pool}
}

// ========================================
// WRITE
// ========================================

func (r *postgresRepository) Create(ctx context.Context, u *model.User) error {
	query := `
		INSERT INTO users (id, name, email, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		u.ID().String(),
		u.Name(),
		u.Email(),
		u.PasswordHash(),
		u.Role().String(),
		u.CreatedAt(),
		u.UpdatedAt(),
	)
	if err != nil {
		return mapWriteError(err)
	}
	return nil
}

func (r *postgresRepository) Update(ctx context.Context, u *model.User) error {
	query := `
		UPDATE users
		SET name = $2, email = $3, password_hash = $4, role = $5, updated_at = $6
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		u.ID().String(),
		u.Name(),
		u.Email(),
		u.PasswordHash(),
		u.Role().String(),
		u.UpdatedAt(),
	)
	if err != nil {
		return mapWriteError(err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update user %s: %w", u.ID(), pgx.ErrNoRows)
	}
	return nil
}

// ========================================
// READ
// ========================================

const selectUserColumns = `SELECT id, name, email, password_hash, role, created_at, updated_at FROM users`

func (r *postgresRepository) FindByID(ctx context.Context, id identity.UniqueID) (*model.User, error) {
	return r.findOne(ctx, selectUserColumns+` WHERE id = $1`, id.String())
}

func (r *postgresRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, selectUserColumns+` WHERE LOWER(email) = LOWER($1)`, email)
}

func (r *postgresRepository) findOne(ctx context.Context, query string, arg any) (*model.User, error) {
	var (
		id, name, email, hash, role string
		createdAt, updatedAt        time.Time
	)

	err := r.pool.QueryRow(ctx, query, arg).Scan(&id, &name, &email, &hash, &role, &createdAt, &updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}

	parsedRole, err := model.ParseRole(role)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", id, err)
	}

	return model.RestoreUser(identity.From(id), model.UserProps{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         parsedRole,
	}, createdAt, updatedAt), nil
}

func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrDuplicateEmail
	}
	return fmt.Errorf("write user: %w", err)
}
