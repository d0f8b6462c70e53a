package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/shared/apperr"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err  apperr.UseCaseError
		want int
	}{
		{apperr.WrongCredentialsError{}, http.StatusUnauthorized},
		{&apperr.InvalidTokenError{Reason: "expired"}, http.StatusUnauthorized},
		{apperr.NotAllowedError{}, http.StatusForbidden},
		{apperr.NotFound("book"), http.StatusNotFound},
		{&apperr.UserAlreadyExistsError{Email: "a@x.io"}, http.StatusConflict},
		{&apperr.AuthorHasLinkedBooksError{AuthorName: "X"}, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.err.Code(), func(t *testing.T) {
			assert.Equal(t, tt.want, StatusOf(tt.err))
		})
	}
}

func TestUseCaseErrorEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	UseCaseError(c, apperr.NotFound("author"))

	require.Equal(t, http.StatusNotFound, w.Code)
	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "RESOURCE_NOT_FOUND", body.Error.Code)
	assert.Equal(t, "author not found", body.Error.Message)
}

func TestInvalidTokenHidesDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	UseCaseError(c, &apperr.InvalidTokenError{Reason: "bad_signature"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotContains(t, w.Body.String(), "bad_signature")
}
