package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"memoria/internal/domain/model"
	dbRepository "memoria/internal/domain/repository/database"
)

// MemoryStore is the Mongo-backed memory record store.
type MemoryStore struct {
	db *Database
}

func NewMemoryStore(db *Database) *MemoryStore {
	return &MemoryStore{db: db}
}

func (s *MemoryStore) collection() *mongo.Collection {
	return s.db.Client.Database(s.db.DBName).Collection(MemoryCollection)
}

func (s *MemoryStore) Create(ctx context.Context, memory *model.Memory) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	now := time.Now().UTC()
	memory.CreatedAt = now
	memory.UpdatedAt = now

	_, err := s.collection().InsertOne(ctx, memory)

	return err
}

func (s *MemoryStore) GetByID(ctx context.Context, id string) (*model.Memory, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	var memory model.Memory
	err := s.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&memory)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, dbRepository.ErrNotFound
		}

		return nil, err
	}

	return &memory, nil
}

func (s *MemoryStore) List(ctx context.Context, filter dbRepository.MemoryFilter) ([]model.Memory, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	query := bson.M{}
	switch {
	case filter.OnlySecret:
		query["is_secret"] = true
	case !filter.IncludeSecret:
		query["is_secret"] = false
	}
	if filter.Featured != nil {
		query["is_featured"] = *filter.Featured
	}
	if filter.Category != nil {
		query["category"] = *filter.Category
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "order", Value: 1},
		{Key: "date", Value: 1},
	})

	cursor, err := s.collection().Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var memories []model.Memory
	if err := cursor.All(ctx, &memories); err != nil {
		return nil, err
	}

	return memories, nil
}

// Update replaces the record and refreshes updated_at. created_at keeps
// its original value since the whole record is written back.
func (s *MemoryStore) Update(ctx context.Context, memory *model.Memory) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	memory.UpdatedAt = time.Now().UTC()

	result, err := s.collection().ReplaceOne(ctx, bson.M{"_id": memory.ID}, memory)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return dbRepository.ErrNotFound
	}

	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	result, err := s.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return dbRepository.ErrNotFound
	}

	return nil
}
