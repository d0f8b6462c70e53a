package model

import "errors"

var (
	ErrInvalidRole = errors.New("invalid user role")
)
