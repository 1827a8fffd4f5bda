package abstraction

import (
	"context"

	"memoria/internal/domain/dto"
	"memoria/internal/domain/model"
)

type Auth interface {
	Login(ctx context.Context, username, password string) (string, *dto.UserProfile, int, error)
	Logout(ctx context.Context, token string) error
	ResolveSession(ctx context.Context, token string) (*model.User, error)
	CreateAdmin(ctx context.Context, username, password, email string) (string, int, error)
}
