package abstraction

import (
	"context"

	"memoria/internal/domain/dto"
)

type Settings interface {
	Get(ctx context.Context) (*dto.SettingsResponse, int, error)
	Update(ctx context.Context, req *dto.SettingsUpdateRequest) (*dto.SettingsResponse, int, error)
}
