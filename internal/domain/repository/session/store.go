package session

import (
	"context"
	"errors"
)

// ErrNotFound is returned for an unknown or expired token.
var ErrNotFound = errors.New("session not found")

// Store maps opaque session tokens to user identifiers with a TTL.
type Store interface {
	// Create establishes a session for userID and returns its token.
	Create(ctx context.Context, userID string) (string, error)

	// Get resolves a token to its user id, ErrNotFound on miss.
	Get(ctx context.Context, token string) (string, error)

	Delete(ctx context.Context, token string) error
}
