package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/book/model"
	"library-backend/internal/shared/pagination"
	"library-backend/pkg/identity"
)

const (
	tableBooks   = "books"
	tableAuthors = "authors"
	dialect      = "postgres"
)

var sortColumns = map[string]string{
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
	"title":       "title",
	"publishDate": "publish_date",
}

var bookColumns = []interface{}{"id", "title", "description", "publish_date", "author_id", "created_at", "updated_at"}

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) BooksRepository {
	return &postgresRepository{pool: pool}
}

// ========================================
// WRITE
// ========================================

func (r *postgresRepository) Create(ctx context.Context, b *model.Book) error {
	query := `
		INSERT INTO books (id, title, description, publish_date, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		b.ID().String(),
		b.Title(),
		b.Description(),
		b.PublishDate(),
		b.AuthorID().String(),
		b.CreatedAt(),
		b.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("insert book: %w", err)
	}
	return nil
}

func (r *postgresRepository) Update(ctx context.Context, b *model.Book) error {
	query := `
		UPDATE books
		SET title = $2, description = $3, publish_date = $4, author_id = $5, updated_at = $6
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		b.ID().String(),
		b.Title(),
		b.Description(),
		b.PublishDate(),
		b.AuthorID().String(),
		b.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("update book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update book %s: %w", b.ID(), pgx.ErrNoRows)
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, b *model.Book) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, b.ID().String()); err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	return nil
}

// ========================================
// READ
// ========================================

func (r *postgresRepository) FindByID(ctx context.Context, id identity.UniqueID) (*model.Book, error) {
	query := `
		SELECT id, title, description, publish_date, author_id, created_at, updated_at
		FROM books WHERE id = $1
	`
	b, err := scanBook(r.pool.QueryRow(ctx, query, id.String()))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query book: %w", err)
	}
	return b, nil
}

func (r *postgresRepository) FindByAuthorID(ctx context.Context, authorID identity.UniqueID) ([]*model.Book, error) {
	query := `
		SELECT id, title, description, publish_date, author_id, created_at, updated_at
		FROM books WHERE author_id = $1
		ORDER BY created_at ASC, id ASC
	`
	return r.queryMany(ctx, query, authorID.String())
}

func (r *postgresRepository) FetchBooks(ctx context.Context, params pagination.Params) ([]*model.Book, error) {
	query, args, err := BuildFetchQuery(params)
	if err != nil {
		return nil, fmt.Errorf("build fetch books query: %w", err)
	}
	return r.queryMany(ctx, query, args...)
}

func (r *postgresRepository) queryMany(ctx context.Context, query string, args ...interface{}) ([]*model.Book, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query books: %w", err)
	}
	defer rows.Close()

	books := make([]*model.Book, 0)
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

// BuildFetchQuery renders the filtered, paginated list statement in prepared mode.
// The author name filter is a subquery on authors since books keep only the author id.
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

	builder := goqu.Dialect(dialect)
	stmt := builder.From(tableBooks).Prepared(true).Select(bookColumns...)

	where := make([]exp.Expression, 0, 2)
	if params.Title != "" {
		where = append(where, goqu.C("title").ILike(containsPattern(params.Title)))
	}
	if params.AuthorName != "" {
		authorIDs := builder.From(tableAuthors).
			Select("id").
			Where(goqu.C("name").ILike(containsPattern(params.AuthorName)))
		where = append(where, goqu.C("author_id").In(authorIDs))
	}
	if len(where) > 0 {
		stmt = stmt.Where(where...)
	}

	return stmt.
		Order(order, goqu.I("id").Asc()).
		Limit(uint(params.Limit)).
		Offset(uint(params.Skip())).
		ToSQL()
}

// containsPattern escapes LIKE wildcards so the filter is a literal substring match
func containsPattern(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + replacer.Replace(s) + "%"
}

func scanBook(row pgx.Row) (*model.Book, error) {
	var (
		id, title, description, authorID string
		publishDate                      time.Time
		createdAt, updatedAt             time.Time
	)
	if err := row.Scan(&id, &title, &description, &publishDate, &authorID, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return model.RestoreBook(identity.From(id), model.BookProps{
		Title:       title,
		Description: description,
		PublishDate: publishDate,
		AuthorID:    identity.From(authorID),
	}, createdAt, updatedAt), nil
}
