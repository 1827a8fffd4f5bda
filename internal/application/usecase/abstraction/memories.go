package abstraction

import (
	"context"

	"memoria/internal/application/usecase"
	"memoria/internal/domain/dto"
)

type Memories interface {
	List(ctx context.Context, viewer usecase.Viewer) ([]dto.MemoryResponse, int, error)
	Featured(ctx context.Context, viewer usecase.Viewer) ([]dto.MemoryResponse, int, error)
	ByCategory(ctx context.Context, viewer usecase.Viewer, category string) ([]dto.MemoryResponse, int, error)
	Get(ctx context.Context, viewer usecase.Viewer, id string) (*dto.MemoryResponse, int, error)
	Create(ctx context.Context, req *dto.MemoryCreateRequest) (*dto.MemoryResponse, int, error)
	Update(ctx context.Context, id string, req *dto.MemoryUpdateRequest) (*dto.MemoryResponse, int, error)
	Delete(ctx context.Context, id string) (int, error)
	RevealSecrets(ctx context.Context, key string) ([]dto.MemoryResponse, int, error)
}
