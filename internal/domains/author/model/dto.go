package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-backend/internal/shared/pagination"
)

// DateLayout is the wire format of every calendar date (YYYY-MM-DD)
const DateLayout = "2006-01-02"

// SortableFields is the whitelist accepted by FetchAuthors
var SortableFields = []string{"createdAt", "updatedAt", "name", "birthDate"}

// ========================================
// REQUEST DTOs
// ========================================

// AuthorRequest - POST /api/v1/authors and PUT /api/v1/authors/:id
// Edit is a full overwrite, so both operations share the same body.
type AuthorRequest struct {
	Name      string `json:"name"`
	Bio       string `json:"bio"`
	BirthDate string `json:"birthDate"`
}

func (r AuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Bio,
			validation.Length(0, 5000),
		),
		validation.Field(&r.BirthDate,
			validation.Required.Error("birthDate is required"),
			validation.Date(DateLayout).Error("birthDate must be YYYY-MM-DD"),
		),
	)
}

// Props converts a validated request into entity props
func (r AuthorRequest) Props() (AuthorProps, error) {
	birthDate, err := time.Parse(DateLayout, r.BirthDate)
	if err != nil {
		return AuthorProps{}, err
	}
	return AuthorProps{Name: r.Name, Bio: r.Bio, BirthDate: birthDate}, nil
}

// ListQuery - GET /api/v1/authors?page=1&limit=10&sortBy=name&order=desc
type ListQuery struct {
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
	SortBy string `form:"sortBy"`
	Order  string `form:"order"`
}

func (q ListQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Page, validation.Min(0)),
		validation.Field(&q.Limit, validation.Min(0)),
	)
}

func (q ListQuery) Params() pagination.Params {
	return pagination.Params{Page: q.Page, Limit: q.Limit, SortBy: q.SortBy, Order: q.Order}
}

// ========================================
// RESPONSE DTOs
// ========================================

type AuthorResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Bio       string `json:"bio"`
	BirthDate string `json:"birthDate"`
}

type AuthorListResponse struct {
	Authors []AuthorResponse `json:"authors"`
	Page    int              `json:"page"`
	Limit   int              `json:"limit"`
}

// ToResponse converts Author to AuthorResponse
func (a *Author) ToResponse() AuthorResponse {
	return AuthorResponse{
		ID:        a.ID().String(),
		Name:      a.Name(),
		Bio:       a.Bio(),
		BirthDate: a.BirthDate().Format(DateLayout),
	}
}
