package service

import (
	"context"

	"library-backend/internal/domains/book/model"
	"library-backend/internal/shared/apperr"
	"library-backend/internal/shared/pagination"
	"library-backend/pkg/either"
	"library-backend/pkg/identity"
)

type CreateBookInput struct {
	ActorID identity.UniqueID
	Book    model.BookProps
}

type EditBookInput struct {
	ActorID identity.UniqueID
	BookID  identity.UniqueID
	Book    model.BookProps
}

type DeleteBookInput struct {
	ActorID identity.UniqueID
	BookID  identity.UniqueID
}

type Service interface {
	Create(ctx context.Context, in CreateBookInput) (either.Either[apperr.UseCaseError, *model.Book], error)
	Edit(ctx context.Context, in EditBookInput) (either.Either[apperr.UseCaseError, *model.Book], error)
	Delete(ctx context.Context, in DeleteBookInput) (either.Either[apperr.UseCaseError, struct{}], error)
	// Fetch filters by Title and AuthorName when set
	Fetch(ctx context.Context, params pagination.Params) (either.Either[apperr.UseCaseError, []*model.Book], error)
	GetByID(ctx context.Context, id identity.UniqueID) (either.Either[apperr.UseCaseError, *model.Book], error)
}
