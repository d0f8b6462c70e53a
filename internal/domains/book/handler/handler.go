package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-backend/internal/domains/book/model"
	"library-backend/internal/domains/book/service"
	"library-backend/internal/shared/apperr"
	"library-backend/internal/shared/middleware"
	"library-backend/internal/shared/response"
	"library-backend/pkg/either"
	"library-backend/pkg/identity"
	"library-backend/pkg/logger"
)

type BookHandler struct {
	service service.Service
}

func NewBookHandler(service service.Service) *BookHandler {
	return &BookHandler{service: service}
}

// ListBooks handles GET /books
func (h *BookHandler) ListBooks(c *gin.Context) {
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
	if !handleResult(c, "list books", result, err) {
		return
	}

	books := result.RightValue()
	out := model.BookListResponse{
		Books: make([]model.BookResponse, 0, len(books)),
		Page:  params.Page,
		Limit: params.Limit,
	}
	for _, b := range books {
		out.Books = append(out.Books, b.ToResponse())
	}

	response.Success(c, http.StatusOK, "Books retrieved successfully", out)
}

// GetBook handles GET /books/:id
func (h *BookHandler) GetBook(c *gin.Context) {
	result, err := h.service.GetByID(c.Request.Context(), identity.From(c.Param("id")))
	if !handleResult(c, "get book", result, err) {
		return
	}

	response.Success(c, http.StatusOK, "Book retrieved successfully", result.RightValue().ToResponse())
}

// CreateBook handles POST /books
func (h *BookHandler) CreateBook(c *gin.Context) {
	props, ok := bindBook(c)
	if !ok {
		return
	}

	result, err := h.service.Create(c.Request.Context(), service.CreateBookInput{
		ActorID: middleware.ActorID(c),
		Book:    props,
	})
	if !handleResult(c, "create book", result, err) {
		return
	}

	response.Success(c, http.StatusCreated, "Book created successfully", result.RightValue().ToResponse())
}

// EditBook handles PUT /books/:id
func (h *BookHandler) EditBook(c *gin.Context) {
	props, ok := bindBook(c)
	if !ok {
		return
	}

	result, err := h.service.Edit(c.Request.Context(), service.EditBookInput{
		ActorID: middleware.ActorID(c),
		BookID:  identity.From(c.Param("id")),
		Book:    props,
	})
	if !handleResult(c, "edit book", result, err) {
		return
	}

	response.NoContent(c)
}

// DeleteBook handles DELETE /books/:id
func (h *BookHandler) DeleteBook(c *gin.Context) {
	result, err := h.service.Delete(c.Request.Context(), service.DeleteBookInput{
		ActorID: middleware.ActorID(c),
		BookID:  identity.From(c.Param("id")),
	})
	if !handleResult(c, "delete book", result, err) {
		return
	}

	response.NoContent(c)
}

func bindBook(c *gin.Context) (model.BookProps, bool) {
	var req model.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return model.BookProps{}, false
	}
	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return model.BookProps{}, false
	}

	props, err := req.Props()
	if err != nil {
		response.BadRequest(c, err.Error())
		return model.BookProps{}, false
	}
	return props, true
}

// handleResult logs and hides faults and maps Left values onto their status.
// It reports whether the call produced a Right value.
func handleResult[T any](c *gin.Context, op string, result either.Either[apperr.UseCaseError, T], err error) bool {
	if err != nil {
		logger.ErrorFields("book handler failed", err, map[string]interface{}{
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
