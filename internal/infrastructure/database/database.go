package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	MemoryCollection   = "memories"
	SettingsCollection = "settings"
	UserCollection     = "users"
)

type Database struct {
	DBName       string
	QueryTimeout time.Duration
	Client       *mongo.Client
}

func Connect(cfg Config) (*Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ConnectionTimeout)*time.Millisecond)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(time.Duration(cfg.ConnectionTimeout) * time.Millisecond).
		SetBSONOptions(&options.BSONOptions{
			NilSliceAsEmpty: true,
		})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	qCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.QueryTimeout)*time.Millisecond)
	defer cancel()

	if err := client.Ping(qCtx, nil); err != nil {
		return nil, err
	}

	db := &Database{
		Client:       client,
		DBName:       cfg.DBName,
		QueryTimeout: time.Duration(cfg.QueryTimeout) * time.Millisecond,
	}

	if err := initMemoryCollection(db); err != nil {
		return nil, err
	}
	if err := initSettingsCollection(db); err != nil {
		return nil, err
	}
	if err := initUserCollection(db); err != nil {
		return nil, err
	}

	return db, nil
}

func initMemoryCollection(db *Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	exists, err := collectionExists(ctx, db, MemoryCollection)
	if err != nil || exists {
		return err
	}

	collOpts := options.CreateCollection().SetValidator(bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{"_id", "title", "media_url", "category", "date"},
			"properties": bson.M{
				"_id":        bson.M{"bsonType": "string"},
				"title":      bson.M{"bsonType": "string", "minLength": 1, "maxLength": 200},
				"caption":    bson.M{"bsonType": "string"},
				"media_url":  bson.M{"bsonType": "string", "minLength": 1, "maxLength": 500},
				"position_x": bson.M{"bsonType": "double"},
				"position_y": bson.M{"bsonType": "double"},
				"position_z": bson.M{"bsonType": "double"},
				"orbit_radius": bson.M{
					"bsonType":         "double",
					"exclusiveMinimum": true,
					"minimum":          0,
				},
				"is_secret":   bson.M{"bsonType": "bool"},
				"is_featured": bson.M{"bsonType": "bool"},
				"category": bson.M{
					"enum": []string{"PHOTO", "VIDEO", "AUDIO"},
				},
				"date": bson.M{"bsonType": "date"},
				"order": bson.M{
					"bsonType": []string{"int", "long"},
					"minimum":  0,
				},
			},
		},
	})

	if err := db.Client.Database(db.DBName).CreateCollection(ctx, MemoryCollection, collOpts); err != nil {
		return err
	}

	coll := db.Client.Database(db.DBName).Collection(MemoryCollection)
	_, err = coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "is_secret", Value: 1}, {Key: "is_featured", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "date", Value: 1}}},
	})

	return err
}

// initSettingsCollection creates the settings collection with a unique
// index on the singleton sentinel. The index, not application code,
// turns a concurrent second creation into a duplicate-key conflict.
func initSettingsCollection(db *Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	exists, err := collectionExists(ctx, db, SettingsCollection)
	if err != nil || exists {
		return err
	}

	if err := db.Client.Database(db.DBName).CreateCollection(ctx, SettingsCollection); err != nil {
		return err
	}

	coll := db.Client.Database(db.DBName).Collection(SettingsCollection)
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "singleton", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	return err
}

func initUserCollection(db *Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	exists, err := collectionExists(ctx, db, UserCollection)
	if err != nil || exists {
		return err
	}

	if err := db.Client.Database(db.DBName).CreateCollection(ctx, UserCollection); err != nil {
		return err
	}

	coll := db.Client.Database(db.DBName).Collection(UserCollection)
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	return err
}

func collectionExists(ctx context.Context, db *Database, name string) (bool, error) {
	collections, err := db.Client.Database(db.DBName).ListCollectionNames(ctx, bson.M{"name": name})
	if err != nil {
		return false, err
	}

	return len(collections) > 0, nil
}

func (db *Database) Stop() error {
	return db.Client.Disconnect(context.Background())
}
