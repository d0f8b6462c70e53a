package service

import (
	"context"
	"fmt"

	"library-backend/internal/domains/author/model"
	"library-backend/internal/domains/author/repository"
	bookrepo "library-backend/internal/domains/book/repository"
	userrepo "library-backend/internal/domains/user/repository"
	"library-backend/internal/shared/apperr"
	"library-backend/internal/shared/authz"
	"library-backend/internal/shared/pagination"
	"library-backend/pkg/either"
	"library-backend/pkg/identity"
	"library-backend/pkg/logger"
)

type authorService struct {
	authors repository.AuthorsRepository
	books   bookrepo.BooksRepository
	users   userrepo.UsersRepository
}

func NewAuthorService(
	authors repository.AuthorsRepository,
	books bookrepo.BooksRepository,
	users userrepo.UsersRepository,
) Service {
	return &authorService{authors: authors, books: books, users: users}
}

// Every mutation checks, in order: the target author, the actor, business
// rules, and only then writes once.

// ════════════════════════════════════════════════════════════════
// CREATE
// ════════════════════════════════════════════════════════════════

func (s *authorService) Create(ctx context.Context, in CreateAuthorInput) (either.Either[apperr.UseCaseError, *model.Author], error) {
	type result = either.Either[apperr.UseCaseError, *model.Author]

	denied, err := authz.EnsureAdmin(ctx, s.users, in.ActorID)
	if err != nil {
		return result{}, err
	}
	if denied != nil {
		return either.Left[apperr.UseCaseError, *model.Author](denied), nil
	}

	author := model.NewAuthor(in.Author)
	if err := s.authors.Create(ctx, author); err != nil {
		return result{}, fmt.Errorf("create author: %w", err)
	}

	logger.Info("author created", map[string]interface{}{"author_id": author.ID().String(), "actor_id": in.ActorID.String()})
	return either.Right[apperr.UseCaseError](author), nil
}

// ════════════════════════════════════════════════════════════════
// EDIT (full overwrite)
// ════════════════════════════════════════════════════════════════

func (s *authorService) Edit(ctx context.Context, in EditAuthorInput) (either.Either[apperr.UseCaseError, *model.Author], error) {
	type result = either.Either[apperr.UseCaseError, *model.Author]

	author, err := s.authors.FindByID(ctx, in.AuthorID)
	if err != nil {
		return result{}, fmt.Errorf("find author: %w", err)
	}
	if author == nil {
		return either.Left[apperr.UseCaseError, *model.Author](apperr.NotFound("author")), nil
	}

	denied, err := authz.EnsureAdmin(ctx, s.users, in.ActorID)
	if err != nil {
		return result{}, err
	}
	if denied != nil {
		return either.Left[apperr.UseCaseError, *model.Author](denied), nil
	}

	author.Replace(in.Author)
	if err := s.authors.Update(ctx, author); err != nil {
		return result{}, fmt.Errorf("update author: %w", err)
	}

	return either.Right[apperr.UseCaseError](author), nil
}

// ════════════════════════════════════════════════════════════════
// DELETE
// ════════════════════════════════════════════════════════════════

func (s *authorService) Delete(ctx context.Context, in DeleteAuthorInput) (either.Either[apperr.UseCaseError, struct{}], error) {
	type result = either.Either[apperr.UseCaseError, struct{}]

	author, err := s.authors.FindByID(ctx, in.AuthorID)
	if err != nil {
		return result{}, fmt.Errorf("find author: %w", err)
	}
	if author == nil {
		return either.Left[apperr.UseCaseError, struct{}](apperr.NotFound("author")), nil
	}

	denied, err := authz.EnsureAdmin(ctx, s.users, in.ActorID)
	if err != nil {
		return result{}, err
	}
	if denied != nil {
		return either.Left[apperr.UseCaseError, struct{}](denied), nil
	}

	linked, err := s.books.FindByAuthorID(ctx, author.ID())
	if err != nil {
		return result{}, fmt.Errorf("find books of author: %w", err)
	}
	if len(linked) > 0 {
		return either.Left[apperr.UseCaseError, struct{}](&apperr.AuthorHasLinkedBooksError{AuthorName: author.Name()}), nil
	}

	if err := s.authors.Delete(ctx, author); err != nil {
		return result{}, fmt.Errorf("delete author: %w", err)
	}

	logger.Info("author deleted", map[string]interface{}{"author_id": author.ID().String(), "actor_id": in.ActorID.String()})
	return either.Right[apperr.UseCaseError](struct{}{}), nil
}

// ════════════════════════════════════════════════════════════════
// READ
// ════════════════════════════════════════════════════════════════

func (s *authorService) Fetch(ctx context.Context, params pagination.Params) (either.Either[apperr.UseCaseError, []*model.Author], error) {
	authors, err := s.authors.FetchAuthors(ctx, params.Normalize(model.SortableFields...))
	if err != nil {
		return either.Either[apperr.UseCaseError, []*model.Author]{}, fmt.Errorf("fetch authors: %w", err)
	}
	return either.Right[apperr.UseCaseError](authors), nil
}

func (s *authorService) GetByID(ctx context.Context, id identity.UniqueID) (either.Either[apperr.UseCaseError, *model.Author], error) {
	author, err := s.authors.FindByID(ctx, id)
	if err != nil {
		return either.Either[apperr.UseCaseError, *model.Author]{}, fmt.Errorf("find author: %w", err)
	}
	if author == nil {
		return either.Left[apperr.UseCaseError, *model.Author](apperr.NotFound("author")), nil
	}
	return either.Right[apperr.UseCaseError](author), nil
}
