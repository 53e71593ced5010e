package repository

import "errors"

var (
	// ErrNotFound is returned when a row does not exist. For files the
	// ownership check is folded into the lookup, so a record owned by
	// another user surfaces as ErrNotFound too.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateUsername is returned when a username unique constraint
	// is violated on insert.
	ErrDuplicateUsername = errors.New("username already exists")
)
