package usecase

import (
	"context"
	"errors"
	"net/http"

	"memoria/internal/domain/dto"
	"memoria/internal/domain/model"
	dbRepository "memoria/internal/domain/repository/database"
	"memoria/pkg/logger"
)

// Memories implements the memory read and write pipeline: visibility
// filtering on reads, position reconciliation and normalization on
// writes.
type Memories struct {
	store dbRepository.MemoryStore
}

func NewMemories(store dbRepository.MemoryStore) *Memories {
	return &Memories{store: store}
}

func (m *Memories) List(ctx context.Context, viewer Viewer) ([]dto.MemoryResponse, int, error) {
	return m.list(ctx, viewer.filter())
}

func (m *Memories) Featured(ctx context.Context, viewer Viewer) ([]dto.MemoryResponse, int, error) {
	filter := viewer.filter()
	featured := true
	filter.Featured = &featured

	return m.list(ctx, filter)
}

// ByCategory lists memories of one category. The token is uppercased
// before matching; an unknown category simply yields an empty list.
func (m *Memories) ByCategory(ctx context.Context, viewer Viewer, category string) ([]dto.MemoryResponse, int, error) {
	filter := viewer.filter()
	normalized := model.NormalizeCategory(category)
	filter.Category = &normalized

	return m.list(ctx, filter)
}

// Get returns one memory. A secret record reads as absent for an
// anonymous viewer rather than revealing that it exists.
func (m *Memories) Get(ctx context.Context, viewer Viewer, id string) (*dto.MemoryResponse, int, error) {
	memory, err := m.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, dbRepository.ErrNotFound) {
			return nil, http.StatusNotFound, errors.New("memory not found")
		}
		logger.Error("memory fetch failed", "id", id, "err", err)

		return nil, http.StatusInternalServerError, errors.New("failed to retrieve memory")
	}

	if !viewer.CanSee(memory.IsSecret) {
		return nil, http.StatusNotFound, errors.New("memory not found")
	}

	resp := dto.NewMemoryResponse(memory)

	return &resp, http.StatusOK, nil
}

// Create stores a new memory. A client-supplied position is taken
// verbatim and then normalized on save; an absent one is replaced by a
// random point on the unit sphere, for which normalization is a no-op.
func (m *Memories) Create(ctx context.Context, req *dto.MemoryCreateRequest) (*dto.MemoryResponse, int, error) {
	memory := req.ToModel()
	memory.NormalizePosition()

	if err := m.store.Create(ctx, memory); err != nil {
		logger.Error("memory create failed", "err", err)

		return nil, http.StatusInternalServerError, errors.New("failed to create memory")
	}

	resp := dto.NewMemoryResponse(memory)

	return &resp, http.StatusCreated, nil
}

func (m *Memories) Update(ctx context.Context, id string, req *dto.MemoryUpdateRequest) (*dto.MemoryResponse, int, error) {
	memory, err := m.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, dbRepository.ErrNotFound) {
			return nil, http.StatusNotFound, errors.New("memory not found")
		}
		logger.Error("memory fetch failed", "id", id, "err", err)

		return nil, http.StatusInternalServerError, errors.New("failed to update memory")
	}

	req.Apply(memory)
	memory.NormalizePosition()

	if err := m.store.Update(ctx, memory); err != nil {
		if errors.Is(err, dbRepository.ErrNotFound) {
			return nil, http.StatusNotFound, errors.New("memory not found")
		}
		logger.Error("memory update failed", "id", id, "err", err)

		return nil, http.StatusInternalServerError, errors.New("failed to update memory")
	}

	resp := dto.NewMemoryResponse(memory)

	return &resp, http.StatusOK, nil
}

func (m *Memories) Delete(ctx context.Context, id string) (int, error) {
	if err := m.store.Delete(ctx, id); err != nil {
		if errors.Is(err, dbRepository.ErrNotFound) {
			return http.StatusNotFound, errors.New("memory not found")
		}
		logger.Error("memory delete failed", "id", id, "err", err)

		return http.StatusInternalServerError, errors.New("failed to delete memory")
	}

	return http.StatusNoContent, nil
}

// RevealSecrets returns every secret memory. The key parameter is
// accepted and ignored: the frontend sends one, but no key has ever
// been provisioned and existing callers rely on the endpoint working
// without it. Verifying the key is a known gap.
func (m *Memories) RevealSecrets(ctx context.Context, _ string) ([]dto.MemoryResponse, int, error) {
	memories, err := m.store.List(ctx, dbRepository.MemoryFilter{OnlySecret: true})
	if err != nil {
		logger.Error("secret listing failed", "err", err)

		return nil, http.StatusInternalServerError, errors.New("failed to retrieve memories")
	}

	return dto.NewMemoryResponses(memories), http.StatusOK, nil
}

func (m *Memories) list(ctx context.Context, filter dbRepository.MemoryFilter) ([]dto.MemoryResponse, int, error) {
	memories, err := m.store.List(ctx, filter)
	if err != nil {
		logger.Error("memory listing failed", "err", err)

		return nil, http.StatusInternalServerError, errors.New("failed to retrieve memories")
	}

	return dto.NewMemoryResponses(memories), http.StatusOK, nil
}
