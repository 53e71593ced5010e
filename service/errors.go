package service

import "errors"

// Client-visible failure taxonomy. Handlers map these onto HTTP statuses;
// anything else degrades to a generic 500.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
)
