package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-backend/internal/domains/author/model"
	"library-backend/internal/domains/author/service"
	"library-backend/internal/shared/apperr"
	"library-backend/internal/shared/middleware"
	"library-backend/internal/shared/response"
	"library-backend/pkg/either"
	"library-backend/pkg/identity"
	"library-backend/pkg/logger"
)

type AuthorHandler struct {
	service service.Service
}

func NewAuthorHandler(service service.Service) *AuthorHandler {
	return &AuthorHandler{service: service}
}

// ════════════════════════════════════════════
// QUERIES
// ════════════════════════════════════════════

// ListAuthors handles GET /authors
func (h *AuthorHandler) ListAuthors(c *gin.Context) {
	var query model.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}
	if err := query.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	params := query.Params().Normalize(model.SortableFields...)
	result, err := h.service.Fetch(c.Request.Context(), params)
	if !handleResult(c, "list authors", result, err) {
		return
	}

	authors := result.RightValue()
	out := model.AuthorListResponse{
		Authors: make([]model.AuthorResponse, 0, len(authors)),
		Page:    params.Page,
		Limit:   params.Limit,
	}
	for _, a := range authors {
		out.Authors = append(out.Authors, a.ToResponse())
	}

	response.Success(c, http.StatusOK, "Authors retrieved successfully", out)
}

// GetAuthor handles GET /authors/:id
func (h *AuthorHandler) GetAuthor(c *gin.Context) {
	result, err := h.service.GetByID(c.Request.Context(), authorID(c))
	if !handleResult(c, "get author", result, err) {
		return
	}

	response.Success(c, http.StatusOK, "Author retrieved successfully", result.RightValue().ToResponse())
}

// ════════════════════════════════════════════
// MUTATIONS
// ════════════════════════════════════════════

// CreateAuthor handles POST /authors
func (h *AuthorHandler) CreateAuthor(c *gin.Context) {
	props, ok := bindAuthor(c)
	if !ok {
		return
	}

	result, err := h.service.Create(c.Request.Context(), service.CreateAuthorInput{
		ActorID: middleware.ActorID(c),
		Author:  props,
	})
	if !handleResult(c, "create author", result, err) {
		return
	}

	response.Success(c, http.StatusCreated, "Author created successfully", result.RightValue().ToResponse())
}

// EditAuthor handles PUT /authors/:id
func (h *AuthorHandler) EditAuthor(c *gin.Context) {
	props, ok := bindAuthor(c)
	if !ok {
		return
	}

	result, err := h.service.Edit(c.Request.Context(), service.EditAuthorInput{
		ActorID:  middleware.ActorID(c),
		AuthorID: authorID(c),
		Author:   props,
	})
	if !handleResult(c, "edit author", result, err) {
		return
	}

	response.NoContent(c)
}

// DeleteAuthor handles DELETE /authors/:id
func (h *AuthorHandler) DeleteAuthor(c *gin.Context) {
	result, err := h.service.Delete(c.Request.Context(), service.DeleteAuthorInput{
		ActorID:  middleware.ActorID(c),
		AuthorID: authorID(c),
	})
	if !handleResult(c, "delete author", result, err) {
		return
	}

	response.NoContent(c)
}

// ════════════════════════════════════════════
// HELPERS
// ════════════════════════════════════════════

func authorID(c *gin.Context) identity.UniqueID {
	return identity.From(c.Param("id"))
}

func bindAuthor(c *gin.Context) (model.AuthorProps, bool) {
	var req model.AuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return model.AuthorProps{}, false
	}
	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return model.AuthorProps{}, false
	}

	props, err := req.Props()
	if err != nil {
		response.BadRequest(c, err.Error())
		return model.AuthorProps{}, false
	}
	return props, true
}

func handleResult[T any](c *gin.Context, op string, result either.Either[apperr.UseCaseError, T], err error) bool {
	if err != nil {
		logger.ErrorFields("author handler failed", err, map[string]interface{}{
			"op":         op,
			"request_id": c.GetString(middleware.RequestIDKey),
		})
		response.InternalServerError(c)
		return false
	}
	if result.IsLeft() {
		response.UseCaseError(c, result.LeftValue())
		return false
	}
	return true
}
