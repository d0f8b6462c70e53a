package service

import (
	"context"
	"fmt"

	authorrepo "library-backend/internal/domains/author/repository"
	"library-backend/internal/domains/book/model"
	"library-backend/internal/domains/book/repository"
	userrepo "library-backend/internal/domains/user/repository"
	"library-backend/internal/shared/apperr"
	"library-backend/internal/shared/authz"
	"library-backend/internal/shared/pagination"
	"library-backend/pkg/either"
	"library-backend/pkg/identity"
	"library-backend/pkg/logger"
)

type bookService struct {
	books   repository.BooksRepository
	authors authorrepo.AuthorsRepository
	users   userrepo.UsersRepository
}

func NewBookService(
	books repository.BooksRepository,
	authors authorrepo.AuthorsRepository,
	users userrepo.UsersRepository,
) Service {
	return &bookService{books: books, authors: authors, users: users}
}

// ════════════════════════════════════════════════════════════════
// CREATE
// ════════════════════════════════════════════════════════════════

func (s *bookService) Create(ctx context.Context, in CreateBookInput) (either.Either[apperr.UseCaseError, *model.Book], error) {
	type result = either.Either[apperr.UseCaseError, *model.Book]

	// 1. referenced author
	missing, err := s.requireAuthor(ctx, in.Book.AuthorID)
	if err != nil {
		return result{}, err
	}
	if missing != nil {
		return either.Left[apperr.UseCaseError, *model.Book](missing), nil
	}

	// 2. actor
	denied, err := authz.EnsureAdmin(ctx, s.users, in.ActorID)
	if err != nil {
		return result{}, err
	}
	if denied != nil {
		return either.Left[apperr.UseCaseError, *model.Book](denied), nil
	}

	// 3. write
	book := model.NewBook(in.Book)
	if err := s.books.Create(ctx, book); err != nil {
		return result{}, fmt.Errorf("create book: %w", err)
	}

	logger.Info("book created", map[string]interface{}{"book_id": book.ID().String(), "actor_id": in.ActorID.String()})
	return either.Right[apperr.UseCaseError](book), nil
}

// ════════════════════════════════════════════════════════════════
// EDIT (full overwrite)
// ════════════════════════════════════════════════════════════════

func (s *bookService) Edit(ctx context.Context, in EditBookInput) (either.Either[apperr.UseCaseError, *model.Book], error) {
	type result = either.Either[apperr.UseCaseError, *model.Book]

	missing, err := s.requireAuthor(ctx, in.Book.AuthorID)
	if err != nil {
		return result{}, err
	}
	if missing != nil {
		return either.Left[apperr.UseCaseError, *model.Book](missing), nil
	}

	book, err := s.books.FindByID(ctx, in.BookID)
	if err != nil {
		return result{}, fmt.Errorf("find book: %w", err)
	}
	if book == nil {
		return either.Left[apperr.UseCaseError, *model.Book](apperr.NotFound("book")), nil
	}

	denied, err := authz.EnsureAdmin(ctx, s.users, in.ActorID)
	if err != nil {
		return result{}, err
	}
	if denied != nil {
		return either.Left[apperr.UseCaseError, *model.Book](denied), nil
	}

	book.Replace(in.Book)
	if err := s.books.Update(ctx, book); err != nil {
		return result{}, fmt.Errorf("update book: %w", err)
	}

	return either.Right[apperr.UseCaseError](book), nil
}

// ════════════════════════════════════════════════════════════════
// DELETE
// ════════════════════════════════════════════════════════════════

func (s *bookService) Delete(ctx context.Context, in DeleteBookInput) (either.Either[apperr.UseCaseError, struct{}], error) {
	type result = either.Either[apperr.UseCaseError, struct{}]

	book, err := s.books.FindByID(ctx, in.BookID)
	if err != nil {
		return result{}, fmt.Errorf("find book: %w", err)
	}
	if book == nil {
		return either.Left[apperr.UseCaseError, struct{}](apperr.NotFound("book")), nil
	}

	denied, err := authz.EnsureAdmin(ctx, s.users, in.ActorID)
	if err != nil {
		return result{}, err
	}
	if denied != nil {
		return either.Left[apperr.UseCaseError, struct{}](denied), nil
	}

	if err := s.books.Delete(ctx, book); err != nil {
		return result{}, fmt.Errorf("delete book: %w", err)
	}

	logger.Info("book deleted", map[string]interface{}{"book_id": book.ID().String(), "actor_id": in.ActorID.String()})
	return either.Right[apperr.UseCaseError](struct{}{}), nil
}

// ════════════════════════════════════════════════════════════════
// READ
// ════════════════════════════════════════════════════════════════

func (s *bookService) Fetch(ctx context.Context, params pagination.Params) (either.Either[apperr.UseCaseError, []*model.Book], error) {
	books, err := s.books.FetchBooks(ctx, params.Normalize(model.SortableFields...))
	if err != nil {
		return either.Either[apperr.UseCaseError, []*model.Book]{}, fmt.Errorf("fetch books: %w", err)
	}
	return either.Right[apperr.UseCaseError](books), nil
}

func (s *bookService) GetByID(ctx context.Context, id identity.UniqueID) (either.Either[apperr.UseCaseError, *model.Book], error) {
	book, err := s.books.FindByID(ctx, id)
	if err != nil {
		return either.Either[apperr.UseCaseError, *model.Book]{}, fmt.Errorf("find book: %w", err)
	}
	if book == nil {
		return either.Left[apperr.UseCaseError, *model.Book](apperr.NotFound("book")), nil
	}
	return either.Right[apperr.UseCaseError](book), nil
}

// requireAuthor returns ResourceNotFoundError when authorID does not resolve
func (s *bookService) requireAuthor(ctx context.Context, authorID identity.UniqueID) (apperr.UseCaseError, error) {
	author, err := s.authors.FindByID(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("find author: %w", err)
	}
	if author == nil {
		return apperr.NotFound("author"), nil
	}
	return nil, nil
}
