package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/author/model"
	"library-backend/internal/shared/pagination"
	"library-backend/pkg/identity"
)

const (
	tableAuthors = "authors"
	dialect      = "postgres"
)

// sortColumns maps the API sort keys onto table columns
var sortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"name":      "name",
	"birthDate": "birth_date",
}

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) AuthorsRepository {
	return &postgresRepository{pool: pool}
}

// ========================================
// WRITE
// ========================================

func (r *postgresRepository) Create(ctx context.Context, a *model.Author) error {
	query := `
		INSERT INTO authors (id, name, bio, birth_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		a.ID().String(), a.Name(), a.Bio(), a.BirthDate(), a.CreatedAt(), a.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("insert author: %w", err)
	}
	return nil
}

func (r *postgresRepository) Update(ctx context.Context, a *model.Author) error {
	query := `
		UPDATE authors
		SET name = $2, bio = $3, birth_date = $4, updated_at = $5
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query, a.ID().String(), a.Name(), a.Bio(), a.BirthDate(), a.UpdatedAt())
	if err != nil {
		return fmt.Errorf("update author: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update author %s: %w", a.ID(), pgx.ErrNoRows)
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, a *model.Author) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, a.ID().String()); err != nil {
		return fmt.Errorf("delete author: %w", err)
	}
	return nil
}

// ========================================
// READ
// ========================================

func (r *postgresRepository) FindByID(ctx context.Context, id identity.UniqueID) (*model.Author, error) {
	query := `SELECT id, name, bio, birth_date, created_at, updated_at FROM authors WHERE id = $1`

	a, err := scanAuthor(r.pool.QueryRow(ctx, query, id.String()))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query author: %w", err)
	}
	return a, nil
}

func (r *postgresRepository) FetchAuthors(ctx context.Context, params pagination.Params) ([]*model.Author, error) {
	query, args, err := BuildFetchQuery(params)
	if err != nil {
		return nil, fmt.Errorf("build fetch authors query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetch authors: %w", err)
	}
	defer rows.Close()

	authors := make([]*model.Author, 0, params.Limit)
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan author: %w", err)
		}
		authors = append(authors, a)
	}
	return authors, rows.Err()
}

// BuildFetchQuery renders the paginated list statement in prepared mode.
// Ties on the sort column are broken by id so pages never overlap.
func BuildFetchQuery(params pagination.Params) (string, []interface{}, error) {
	column, ok := sortColumns[params.SortBy]
	if !ok {
		column = sortColumns[pagination.DefaultSortBy]
	}

	var order exp.OrderedExpression
	if params.Descending() {
		order = goqu.I(column).Desc()
	} else {
		order = goqu.I(column).Asc()
	}

	return goqu.Dialect(dialect).
		From(tableAuthors).
		Prepared(true).
		Select("id", "name", "bio", "birth_date", "created_at", "updated_at").
		Order(order, goqu.I("id").Asc()).
		Limit(uint(params.Limit)).
		Offset(uint(params.Skip())).
		ToSQL()
}

func scanAuthor(row pgx.Row) (*model.Author, error) {
	var (
		id, name, bio        string
		birthDate            time.Time
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &name, &bio, &birthDate, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return model.RestoreAuthor(identity.From(id), model.AuthorProps{
		Name:      name,
		Bio:       bio,
		BirthDate: birthDate,
	}, createdAt, updatedAt), nil
}
