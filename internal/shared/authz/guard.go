package authz

import (
	"library-backend/internal/domains/user/model"
	"library-backend/pkg/jwt"
)

// Decision is the outcome of the role guard
type Decision int

const (
	Allow Decision = iota
	DenyUnauthenticated
	DenyUnauthorized
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case DenyUnauthenticated:
		return "unauthenticated"
	case DenyUnauthorized:
		return "unauthorized"
	default:
		return "unknown"
	}
}

// Route is the access metadata attached to an endpoint.
// Empty Roles means any authenticated role.
type Route struct {
	Public bool
	Roles  []model.Role
}

// Public routes skip token checks entirely
func Public() Route {
	return Route{Public: true}
}

func RequireRoles(roles ...model.Role) Route {
	return Route{Roles: roles}
}

// Decide is the pure access decision. claims and verifyErr come from the
// access token verification of the current request.
func Decide(route Route, claims *jwt.Claims, verifyErr error) Decision {
	if route.Public {
		return Allow
	}
	if verifyErr != nil || claims == nil {
		return DenyUnauthenticated
	}

	required := route.Roles
	if len(required) == 0 {
		required = model.AllRoles()
	}

	role, err := model.ParseRole(claims.Role)
	if err != nil {
		return DenyUnauthorized
	}
	for _, r := range required {
		if r == role {
			return Allow
		}
	}
	return DenyUnauthorized
}
