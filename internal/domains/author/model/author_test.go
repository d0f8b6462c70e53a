package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/author/model"
)

func TestAuthorReplace(t *testing.T) {
	a := model.NewAuthor(model.AuthorProps{
		Name:      "Machado de Assis",
		Bio:       "Brazilian writer",
		BirthDate: time.Date(1839, 6, 21, 0, 0, 0, 0, time.UTC),
	})
	id := a.ID()
	created := a.CreatedAt()

	a.Replace(model.AuthorProps{
		Name:      "Joaquim Maria Machado de Assis",
		Bio:       "Founder of the Brazilian Academy of Letters",
		BirthDate: time.Date(1839, 6, 22, 0, 0, 0, 0, time.UTC),
	})

	assert.True(t, id.Equals(a.ID()))
	assert.Equal(t, created, a.CreatedAt())
	assert.Equal(t, "Joaquim Maria Machado de Assis", a.Name())
	assert.Equal(t, 22, a.BirthDate().Day())
	assert.False(t, a.UpdatedAt().Before(created))
}

func TestAuthorRequestValidate(t *testing.T) {
	req := model.AuthorRequest{Name: "Clarice Lispector", BirthDate: "1920-12-10"}
	require.NoError(t, req.Validate())

	props, err := req.Props()
	require.NoError(t, err)
	assert.Equal(t, time.December, props.BirthDate.Month())

	bad := req
	bad.BirthDate = "10/12/1920"
	assert.Error(t, bad.Validate())

	noName := req
	noName.Name = ""
	assert.Error(t, noName.Validate())
}

func TestAuthorToResponseFormatsDate(t *testing.T) {
	a := model.NewAuthor(model.AuthorProps{Name: "Cecília Meireles", BirthDate: time.Date(1901, 11, 7, 0, 0, 0, 0, time.UTC)})

	resp := a.ToResponse()

	assert.Equal(t, "1901-11-07", resp.BirthDate)
	assert.Equal(t, a.ID().String(), resp.ID)
}

func TestListQueryValidate(t *testing.T) {
	assert.NoError(t, model.ListQuery{Page: 2, Limit: 20}.Validate())
	assert.Error(t, model.ListQuery{Page: -1}.Validate())
}
