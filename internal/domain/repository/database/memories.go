package database

import (
	"context"

	"memoria/internal/domain/model"
)

// MemoryFilter narrows a memory listing. The zero value is the anonymous
// view: public records only, no category or featured restriction.
type MemoryFilter struct {
	// IncludeSecret widens the listing to secret records; set for
	// authenticated callers.
	IncludeSecret bool
	// OnlySecret restricts the listing to secret records (reveal path).
	OnlySecret bool
	Featured   *bool
	Category   *string
}

// MemoryStore persists memory records. Listings are ordered by display
// order ascending, then date ascending.
type MemoryStore interface {
	Create(ctx context.Context, memory *model.Memory) error
	GetByID(ctx context.Context, id string) (*model.Memory, error)
	List(ctx context.Context, filter MemoryFilter) ([]model.Memory, error)
	Update(ctx context.Context, memory *model.Memory) error
	Delete(ctx context.Context, id string) error
}
