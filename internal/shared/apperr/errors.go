package apperr

import (
	"errors"
	"fmt"
)

// UseCaseError is an expected business failure returned in the Left side of a
// use case result. Infrastructure faults are never UseCaseErrors.
type UseCaseError interface {
	error
	Code() string
}

// ========================================
// AUTHENTICATION
// ========================================

type WrongCredentialsError struct{}

func (WrongCredentialsError) Error() string { return "credentials are not valid" }
func (WrongCredentialsError) Code() string  { return "WRONG_CREDENTIALS" }

// InvalidTokenError covers signature, expiry, type and revocation failures
type InvalidTokenError struct {
	Reason string
	Err    error
}

func (e *InvalidTokenError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid token (%s): %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid token (%s)", e.Reason)
}

func (e *InvalidTokenError) Code() string  { return "INVALID_TOKEN" }
func (e *InvalidTokenError) Unwrap() error { return e.Err }

// ========================================
// RESOURCES
// ========================================

type UserAlreadyExistsError struct {
	Email string
}

func (e *UserAlreadyExistsError) Error() string {
	return fmt.Sprintf("user %q already exists", e.Email)
}

func (e *UserAlreadyExistsError) Code() string { return "USER_ALREADY_EXISTS" }

// ResourceNotFoundError names the missing resource kind ("author", "book", "user")
type ResourceNotFoundError struct {
	Resource string
}

func (e *ResourceNotFoundError) Error() string {
	if e.Resource == "" {
		return "resource not found"
	}
	return e.Resource + " not found"
}

func (e *ResourceNotFoundError) Code() string { return "RESOURCE_NOT_FOUND" }

type AuthorHasLinkedBooksError struct {
	AuthorName string
}

func (e *AuthorHasLinkedBooksError) Error() string {
	return fmt.Sprintf("cannot delete author %q because there are books linked to this author", e.AuthorName)
}

func (e *AuthorHasLinkedBooksError) Code() string { return "AUTHOR_HAS_LINKED_BOOKS" }

// ========================================
// AUTHORIZATION
// ========================================

type NotAllowedError struct{}

func (NotAllowedError) Error() string { return "not allowed" }
func (NotAllowedError) Code() string  { return "NOT_ALLOWED" }

// NotFound is a shorthand used by the services
func NotFound(resource string) UseCaseError {
	return &ResourceNotFoundError{Resource: resource}
}

// Is reports whether err is a UseCaseError of the same concrete type as target
func Is[T UseCaseError](err error) bool {
	var target T
	return errors.As(err, &target)
}
