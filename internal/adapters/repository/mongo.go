package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ExercisesCollection is the default catalog collection. Databases written by
// the earlier deployment keep records in "excercises"; point
// MONGO_EXERCISES_COLLECTION at that name instead of backfilling.
const (
	SessionsCollection  = "sessions"
	ExercisesCollection = "exercises"
)

func exercisesCollection(name string) string {
	if name == "" {
		return ExercisesCollection
	}
	return name
}

// OpenMongo connects and pings the primary.
func OpenMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

// EnsureMongoIndexes creates the indexes the session and catalog queries rely on.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database, catalog string) error {
	_, err := db.Collection(SessionsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "workout.name", Value: 1}}},
		{Keys: bson.D{{Key: "workoutType", Value: 1}, {Key: "date", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("session indexes: %w", err)
	}

	_, err = db.Collection(exercisesCollection(catalog)).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "maxWeight", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("exercise indexes: %w", err)
	}
	return nil
}
