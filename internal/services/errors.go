package services

import "errors"

// Domain failures surfaced to callers. Handlers map them to HTTP statuses.
var (
	ErrValidation         = errors.New("validation failed")
	ErrAlreadyExists      = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUnauthorized       = errors.New("invalid authentication credentials")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
)
