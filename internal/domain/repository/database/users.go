package database

import (
	"context"

	"memoria/internal/domain/model"
)

// UserStore persists accounts. Usernames are unique; Create fails with
// ErrUsernameTaken on a duplicate.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}
