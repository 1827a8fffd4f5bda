package database

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"memoria/internal/domain/model"
	dbRepository "memoria/internal/domain/repository/database"
)

// SettingsStore is the Mongo-backed site settings store. The unique
// index on the singleton field (see initSettingsCollection) enforces the
// at-most-one invariant under concurrent writers.
type SettingsStore struct {
	db *Database
}

func NewSettingsStore(db *Database) *SettingsStore {
	return &SettingsStore{db: db}
}

func (s *SettingsStore) collection() *mongo.Collection {
	return s.db.Client.Database(s.db.DBName).Collection(SettingsCollection)
}

// GetOrCreate returns the singleton, provisioning defaults on first
// read. When two first-reads race, the duplicate-key loser re-fetches
// and returns the winner's record, so every caller sees one identity.
func (s *SettingsStore) GetOrCreate(ctx context.Context) (*model.SiteSettings, error) {
	settings, err := s.get(ctx)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, dbRepository.ErrNotFound) {
		return nil, err
	}

	defaults := model.DefaultSiteSettings()
	if err := s.Create(ctx, defaults); err != nil {
		if errors.Is(err, dbRepository.ErrSettingsExists) {
			return s.get(ctx)
		}

		return nil, err
	}

	return defaults, nil
}

func (s *SettingsStore) Create(ctx context.Context, settings *model.SiteSettings) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	if settings.ID == "" {
		settings.ID = uuid.NewString()
	}
	settings.Singleton = true
	now := time.Now().UTC()
	settings.CreatedAt = now
	settings.UpdatedAt = now

	_, err := s.collection().InsertOne(ctx, settings)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return dbRepository.ErrSettingsExists
		}

		return err
	}

	return nil
}

func (s *SettingsStore) Update(ctx context.Context, settings *model.SiteSettings) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	settings.UpdatedAt = time.Now().UTC()

	result, err := s.collection().ReplaceOne(ctx, bson.M{"_id": settings.ID}, settings)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return dbRepository.ErrNotFound
	}

	return nil
}

func (s *SettingsStore) get(ctx context.Context) (*model.SiteSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	var settings model.SiteSettings
	err := s.collection().FindOne(ctx, bson.M{"singleton": true}).Decode(&settings)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, dbRepository.ErrNotFound
		}

		return nil, err
	}

	return &settings, nil
}
