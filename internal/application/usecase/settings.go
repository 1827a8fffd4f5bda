package usecase

import (
	"context"
	"errors"
	"net/http"

	"memoria/internal/domain/dto"
	dbRepository "memoria/internal/domain/repository/database"
	"memoria/pkg/logger"
)

// Settings serves the global configuration singleton.
type Settings struct {
	store dbRepository.SettingsStore
}

func NewSettings(store dbRepository.SettingsStore) *Settings {
	return &Settings{store: store}
}

// Get returns the settings record, provisioning defaults on first read.
func (s *Settings) Get(ctx context.Context) (*dto.SettingsResponse, int, error) {
	settings, err := s.store.GetOrCreate(ctx)
	if err != nil {
		logger.Error("settings fetch failed", "err", err)

		return nil, http.StatusInternalServerError, errors.New("failed to retrieve settings")
	}

	resp := dto.NewSettingsResponse(settings)

	return &resp, http.StatusOK, nil
}

func (s *Settings) Update(ctx context.Context, req *dto.SettingsUpdateRequest) (*dto.SettingsResponse, int, error) {
	settings, err := s.store.GetOrCreate(ctx)
	if err != nil {
		logger.Error("settings fetch failed", "err", err)

		return nil, http.StatusInternalServerError, errors.New("failed to update settings")
	}

	req.Apply(settings)

	if err := s.store.Update(ctx, settings); err != nil {
		logger.Error("settings update failed", "err", err)

		return nil, http.StatusInternalServerError, errors.New("failed to update settings")
	}

	resp := dto.NewSettingsResponse(settings)

	return &resp, http.StatusOK, nil
}
