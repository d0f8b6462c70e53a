package repository

import (
	"context"

	"library-backend/internal/domains/book/model"
	"library-backend/internal/shared/pagination"
	"library-backend/pkg/identity"
)

// BooksRepository is the storage port of the book aggregate.
type BooksRepository interface {
	Create(ctx context.Context, book *model.Book) error
	FindByID(ctx context.Context, id identity.UniqueID) (*model.Book, error)
	// FetchBooks applies the Title and AuthorName filters of params as
	// case-insensitive substring matches. Params must be normalized.
	FetchBooks(ctx context.Context, params pagination.Params) ([]*model.Book, error)
	FindByAuthorID(ctx context.Context, authorID identity.UniqueID) ([]*model.Book, error)
	Update(ctx context.Context, book *model.Book) error
	Delete(ctx context.Context, book *model.Book) error
}
