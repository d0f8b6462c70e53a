package repository

import (
	"context"

	"library-backend/internal/domains/author/model"
	"library-backend/internal/shared/pagination"
	"library-backend/pkg/identity"
)

// AuthorsRepository is the storage port of the author aggregate.
// FindByID returns a nil author when nothing matches.
type AuthorsRepository interface {
	Create(ctx context.Context, author *model.Author) error
	FindByID(ctx context.Context, id identity.UniqueID) (*model.Author, error)
	// FetchAuthors expects normalized params
	FetchAuthors(ctx context.Context, params pagination.Params) ([]*model.Author, error)
	Update(ctx context.Context, author *model.Author) error
	Delete(ctx context.Context, author *model.Author) error
}
