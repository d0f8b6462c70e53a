package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-backend/internal/shared/pagination"
	"library-backend/pkg/identity"
)

const DateLayout = "2006-01-02"

// SortableFields is the whitelist accepted by FetchBooks
var SortableFields = []string{"createdAt", "updatedAt", "title", "publishDate"}

// ========================================
// REQUEST DTOs
// ========================================

// BookRequest - POST /api/v1/books and PUT /api/v1/books/:id
type BookRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	PublishDate string `json:"publishDate"`
	AuthorID    string `json:"authorId"`
}

func (r BookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 500),
		),
		validation.Field(&r.Description,
			validation.Length(0, 10000),
		),
		validation.Field(&r.PublishDate,
			validation.Required.Error("publishDate is required"),
			validation.Date(DateLayout).Error("publishDate must be YYYY-MM-DD"),
		),
		validation.Field(&r.AuthorID,
			validation.Required.Error("authorId is required"),
		),
	)
}

func (r BookRequest) Props() (BookProps, error) {
	publishDate, err := time.Parse(DateLayout, r.PublishDate)
	if err != nil {
		return BookProps{}, err
	}
	return BookProps{
		Title:       r.Title,
		Description: r.Description,
		PublishDate: publishDate,
		AuthorID:    identity.From(r.AuthorID),
	}, nil
}

// ListQuery - GET /api/v1/books?page=2&limit=10&title=dom&authorName=assis
type ListQuery struct {
	Page       int    `form:"page"`
	Limit      int    `form:"limit"`
	SortBy     string `form:"sortBy"`
	Order      string `form:"order"`
	Title      string `form:"title"`
	AuthorName string `form:"authorName"`
}

func (q ListQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Page, validation.Min(0)),
		validation.Field(&q.Limit, validation.Min(0)),
		validation.Field(&q.Title, validation.Length(0, 255)),
		validation.Field(&q.AuthorName, validation.Length(0, 255)),
	)
}

func (q ListQuery) Params() pagination.Params {
	return pagination.Params{
		Page:       q.Page,
		Limit:      q.Limit,
		SortBy:     q.SortBy,
		Order:      q.Order,
		Title:      q.Title,
		AuthorName: q.AuthorName,
	}
}

// ========================================
// RESPONSE DTOs
// ========================================

type BookResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	PublishDate string `json:"publishDate"`
	AuthorID    string `json:"authorId"`
}

type BookListResponse struct {
	Books []BookResponse `json:"books"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

func (b *Book) ToResponse() BookResponse {
	return BookResponse{
		ID:          b.ID().String(),
		Title:       b.Title(),
		Description: b.Description(),
		PublishDate: b.PublishDate().Format(DateLayout),
		AuthorID:    b.AuthorID().String(),
	}
}
