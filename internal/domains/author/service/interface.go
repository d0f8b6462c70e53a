package service

import (
	"context"

	"library-backend/internal/domains/author/model"
	"library-backend/internal/shared/apperr"
	"library-backend/internal/shared/pagination"
	"library-backend/pkg/either"
	"library-backend/pkg/identity"
)

type CreateAuthorInput struct {
	ActorID identity.UniqueID
	Author  model.AuthorProps
}

type EditAuthorInput struct {
	ActorID  identity.UniqueID
	AuthorID identity.UniqueID
	Author   model.AuthorProps
}

type DeleteAuthorInput struct {
	ActorID  identity.UniqueID
	AuthorID identity.UniqueID
}

// Service is the author use case set. Mutations require an ADMIN actor.
type Service interface {
	Create(ctx context.Context, in CreateAuthorInput) (either.Either[apperr.UseCaseError, *model.Author], error)
	Edit(ctx context.Context, in EditAuthorInput) (either.Either[apperr.UseCaseError, *model.Author], error)
	Delete(ctx context.Context, in DeleteAuthorInput) (either.Either[apperr.UseCaseError, struct{}], error)
	Fetch(ctx context.Context, params pagination.Params) (either.Either[apperr.UseCaseError, []*model.Author], error)
	GetByID(ctx context.Context, id identity.UniqueID) (either.Either[apperr.UseCaseError, *model.Author], error)
}
