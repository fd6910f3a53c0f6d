package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/comitanigiacomo/progress-tracker/internal/core/domain"
)

var _ domain.SessionRepository = (*MongoSessionRepository)(nil)

type setDocument struct {
	Weight float64 `bson:"weight"`
	Reps   int     `bson:"reps"`
}

type exerciseDocument struct {
	Name string        `bson:"name"`
	Sets []setDocument `bson:"sets"`
}

type sessionDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Date        time.Time          `bson:"date"`
	BodyWeight  *float64           `bson:"bodyWeight"`
	WorkoutType string             `bson:"workoutType"`
	Workout     []exerciseDocument `bson:"workout"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func newSessionDocument(s *domain.Session) sessionDocument {
	doc := sessionDocument{
		Date:        s.Date.UTC(),
		BodyWeight:  s.BodyWeight,
		WorkoutType: s.WorkoutType,
		Workout:     make([]exerciseDocument, 0, len(s.Workout)),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
	for _, ex := range s.Workout {
		sets := make([]setDocument, 0, len(ex.Sets))
		for _, set := range ex.Sets {
			sets = append(sets, setDocument{Weight: set.Weight, Reps: set.Reps})
		}
		doc.Workout = append(doc.Workout, exerciseDocument{Name: ex.Name, Sets: sets})
	}
	return doc
}

func (d sessionDocument) toDomain() *domain.Session {
	s := &domain.Session{
		ID:          d.ID.Hex(),
		Date:        d.Date.UTC(),
		BodyWeight:  d.BodyWeight,
		WorkoutType: d.WorkoutType,
		Workout:     make([]domain.SessionExercise, 0, len(d.Workout)),
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
	for _, ex := range d.Workout {
		sets := make([]domain.Set, 0, len(ex.Sets))
		for _, set := range ex.Sets {
			sets = append(sets, domain.Set{Weight: set.Weight, Reps: set.Reps})
		}
		s.Workout = append(s.Workout, domain.SessionExercise{Name: ex.Name, Sets: sets})
	}
	return s
}

type MongoSessionRepository struct {
	coll *mongo.Collection
}

func NewMongoSessionRepository(db *mongo.Database) *MongoSessionRepository {
	return &MongoSessionRepository{coll: db.Collection(SessionsCollection)}
}

var newestFirst = bson.D{{Key: "date", Value: -1}, {Key: "createdAt", Value: -1}}

func (r *MongoSessionRepository) Create(ctx context.Context, s *domain.Session) error {
	doc := newSessionDocument(s)
	if s.ID != "" {
		oid, err := primitive.ObjectIDFromHex(s.ID)
		if err != nil {
			return domain.ErrInvalidInput
		}
		doc.ID = oid
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrInvalidInput
		}
		return domain.StoreError("insert session", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		s.ID = oid.Hex()
	}
	return nil
}

func (r *MongoSessionRepository) Update(ctx context.Context, s *domain.Session) error {
	oid, err := primitive.ObjectIDFromHex(s.ID)
	if err != nil {
		return domain.ErrSessionNotFound
	}

	doc := newSessionDocument(s)
	update := bson.M{"$set": bson.M{
		"date":        doc.Date,
		"bodyWeight":  doc.BodyWeight,
		"workoutType": doc.WorkoutType,
		"workout":     doc.Workout,
		"updatedAt":   doc.UpdatedAt,
	}}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return domain.StoreError("update session", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

func (r *MongoSessionRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrSessionNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return domain.StoreError("delete session", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

func (r *MongoSessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSessionNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid}, nil)
}

func (r *MongoSessionRepository) ListAll(ctx context.Context) ([]*domain.Session, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoSessionRepository) ListByExercise(ctx context.Context, name string) ([]*domain.Session, error) {
	return r.find(ctx, bson.M{"workout.name": name})
}

func (r *MongoSessionRepository) LastByWorkoutType(ctx context.Context, workoutType string) (*domain.Session, error) {
	return r.findOne(ctx, bson.M{"workoutType": workoutType}, options.FindOne().SetSort(newestFirst))
}

func (r *MongoSessionRepository) findOne(ctx context.Context, filter bson.M, opts *options.FindOneOptions) (*domain.Session, error) {
	var doc sessionDocument
	var err error
	if opts != nil {
		err = r.coll.FindOne(ctx, filter, opts).Decode(&doc)
	} else {
		err = r.coll.FindOne(ctx, filter).Decode(&doc)
	}
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, domain.StoreError("find session", err)
	}
	return doc.toDomain(), nil
}

func (r *MongoSessionRepository) find(ctx context.Context, filter bson.M) ([]*domain.Session, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, domain.StoreError("list sessions", err)
	}

	var docs []sessionDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, domain.StoreError("decode sessions", err)
	}

	sessions := make([]*domain.Session, 0, len(docs))
	for _, d := range docs {
		sessions = append(sessions, d.toDomain())
	}
	return sessions, nil
}
