package repository

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/comitanigiacomo/progress-tracker/internal/core/domain"
)

var _ domain.ExerciseCatalog = (*MongoExerciseCatalog)(nil)

type exerciseRecordDocument struct {
	Name      string    `bson:"name"`
	MaxWeight float64   `bson:"maxWeight"`
	MaxReps   int       `bson:"maxReps"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

type MongoExerciseCatalog struct {
	coll *mongo.Collection
}

// NewMongoExerciseCatalog reads from the named collection, or
// ExercisesCollection when name is empty.
func NewMongoExerciseCatalog(db *mongo.Database, name string) *MongoExerciseCatalog {
	return &MongoExerciseCatalog{coll: db.Collection(exercisesCollection(name))}
}

func (c *MongoExerciseCatalog) Names(ctx context.Context) ([]string, error) {
	values, err := c.coll.Distinct(ctx, "name", bson.D{})
	if err != nil {
		return nil, domain.StoreError("distinct exercise names", err)
	}

	names := make([]string, 0, len(values))
	for _, v := range values {
		if name, ok := v.(string); ok && name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (c *MongoExerciseCatalog) Top(ctx context.Context, limit int) ([]*domain.ExerciseRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "maxWeight", Value: -1}, {Key: "name", Value: 1}}).
		SetLimit(int64(limit))

	cur, err := c.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, domain.StoreError("top exercises", err)
	}

	var docs []exerciseRecordDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, domain.StoreError("decode exercises", err)
	}

	records := make([]*domain.ExerciseRecord, 0, len(docs))
	for _, d := range docs {
		records = append(records, &domain.ExerciseRecord{
			Name:      d.Name,
			MaxWeight: d.MaxWeight,
			MaxReps:   d.MaxReps,
			UpdatedAt: d.UpdatedAt.UTC(),
		})
	}
	return records, nil
}

func (c *MongoExerciseCatalog) Upsert(ctx context.Context, rec *domain.ExerciseRecord) error {
	update := bson.M{"$set": bson.M{
		"maxWeight": rec.MaxWeight,
		"maxReps":   rec.MaxReps,
		"updatedAt": rec.UpdatedAt,
	}}

	_, err := c.coll.UpdateOne(ctx, bson.M{"name": rec.Name}, update, options.Update().SetUpsert(true))
	if err != nil {
		return domain.StoreError("upsert exercise", err)
	}
	return nil
}
