package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-backend/internal/shared/apperr"
)

// StatusOf maps a use case failure onto its HTTP status
func StatusOf(err apperr.UseCaseError) int {
	switch err.(type) {
	case apperr.WrongCredentialsError, *apperr.InvalidTokenError:
		return http.StatusUnauthorized
	case apperr.NotAllowedError:
		return http.StatusForbidden
	case *apperr.ResourceNotFoundError:
		return http.StatusNotFound
	case *apperr.UserAlreadyExistsError, *apperr.AuthorHasLinkedBooksError:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// UseCaseError writes the envelope for a Left value.
// Token failures keep their detail out of the body.
func UseCaseError(c *gin.Context, err apperr.UseCaseError) {
	message := err.Error()
	if _, ok := err.(*apperr.InvalidTokenError); ok {
		message = "invalid token"
	}
	ErrorResponse(c, StatusOf(err), err.Code(), message)
}
