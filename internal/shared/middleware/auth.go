package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"library-backend/internal/domains/user/model"
	"library-backend/internal/shared/apperr"
	"library-backend/internal/shared/authz"
	"library-backend/internal/shared/response"
	"library-backend/pkg/either"
	"library-backend/pkg/identity"
	"library-backend/pkg/jwt"
)

const (
	UserIDKey = "userID"
	RoleKey   = "role"
)

var errMissingBearer = errors.New("missing bearer token")

// TokenVerifier is the access-token half of the Encrypter port
type TokenVerifier interface {
	ValidateAccessToken(token string) either.Either[apperr.UseCaseError, *jwt.Claims]
}

// Guard enforces route on every request: 401 without a valid access token,
// 403 when the verified role is not allowed. Verified subject and role are
// stored in the gin context.
func Guard(verifier TokenVerifier, route authz.Route) gin.HandlerFunc {
	return func(c *gin.Context) {
		if route.Public {
			c.Next()
			return
		}

		claims, verifyErr := verify(verifier, c.GetHeader("Authorization"))

		switch authz.Decide(route, claims, verifyErr) {
		case authz.DenyUnauthenticated:
			response.AbortWithError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing or invalid access token")
			return
		case authz.DenyUnauthorized:
			response.AbortWithError(c, http.StatusForbidden, "FORBIDDEN", "role not allowed")
			return
		}

		c.Set(UserIDKey, claims.UserID())
		c.Set(RoleKey, claims.Role)
		c.Next()
	}
}

// RequireRoles is Guard for an authenticated route limited to roles
func RequireRoles(verifier TokenVerifier, roles ...model.Role) gin.HandlerFunc {
	return Guard(verifier, authz.RequireRoles(roles...))
}

func verify(verifier TokenVerifier, header string) (*jwt.Claims, error) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return nil, errMissingBearer
	}

	result := verifier.ValidateAccessToken(strings.TrimSpace(parts[1]))
	if result.IsLeft() {
		return nil, result.LeftValue()
	}
	return result.RightValue(), nil
}

// ActorID returns the verified subject set by Guard
func ActorID(c *gin.Context) identity.UniqueID {
	return identity.From(c.GetString(UserIDKey))
}
