package database

import "errors"

var (
	// ErrNotFound is returned when no record matches the identifier.
	ErrNotFound = errors.New("record not found")

	// ErrSettingsExists is returned when a settings record already
	// exists; at most one may ever be created.
	ErrSettingsExists = errors.New("only one site settings record is allowed")

	// ErrUsernameTaken is returned when creating a user whose username
	// already exists.
	ErrUsernameTaken = errors.New("username already taken")
)
