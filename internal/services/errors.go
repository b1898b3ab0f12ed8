package services

import (
	"errors"

	"logistics_dashboard/internal/repository"
)

var (
	ErrNotFound           = repository.ErrNotFound
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("not signed in")
)

// ValidationError lists the rejected fields of a request, keyed by JSON name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "invalid input"
}
