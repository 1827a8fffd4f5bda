package database

import (
	"context"

	"memoria/internal/domain/model"
)

// SettingsStore persists the singleton site settings record. The store,
// not process memory, owns the single-instance invariant: concurrent
// first creations must yield one winner and ErrSettingsExists for the
// loser.
type SettingsStore interface {
	// GetOrCreate returns the singleton, inserting defaults when absent.
	// This is the only implicit-creation path in the system.
	GetOrCreate(ctx context.Context) (*model.SiteSettings, error)

	// Create inserts a settings record, failing with ErrSettingsExists
	// when one already exists.
	Create(ctx context.Context, settings *model.SiteSettings) error

	Update(ctx context.Context, settings *model.SiteSettings) error
}
