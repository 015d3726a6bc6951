package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/common/db"
	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/common/mongodb"
	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/exercise/domain"
)

type exerciseDocument struct {
	ID          primitive.ObjectID `bson:"_id"`
	Username    string             `bson:"username"`
	Description string             `bson:"description"`
	Duration    int                `bson:"duration"`
	Date        time.Time          `bson:"date"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

func (d exerciseDocument) toDomain() domain.Exercise {
	return domain.Exercise{
		ID:          domain.ID(d.ID.Hex()),
		Username:    d.Username,
		Description: d.Description,
		Duration:    d.Duration,
		Date:        domain.CalendarDate(d.Date.UTC()),
		CreatedAt:   d.CreatedAt,
	}
}

type MongoRepository struct {
	exercises *mongo.Collection
}

func NewMongoRepository(database *mongo.Database) *MongoRepository {
	return &MongoRepository{exercises: database.Collection(mongodb.ExercisesCollection)}
}

func (r *MongoRepository) Create(ctx context.Context, exercise domain.Exercise) (domain.Exercise, error) {
	oid, ok := mongodb.ParseID(string(exercise.ID))
	if !ok {
		return domain.Exercise{}, errors.New("exercise id is not an ObjectID")
	}
	if exercise.CreatedAt.IsZero() {
		exercise.CreatedAt = time.Now().UTC()
	}
	exercise.Date = domain.CalendarDate(exercise.Date)

	start := time.Now()
	_, err := r.exercises.InsertOne(ctx, exerciseDocument{
		ID:          oid,
		Username:    exercise.Username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.Date,
		CreatedAt:   exercise.CreatedAt,
	})
	if err := r.handle(err, "insert exercise", start); err != nil {
		return domain.Exercise{}, err
	}
	return exercise, nil
}

func (r *MongoRepository) ListByUsername(ctx context.Context, username string) ([]domain.Exercise, error) {
	start := time.Now()
	cursor, err := r.exercises.Find(
		ctx,
		bson.M{"username": username},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}),
	)
	if err := r.handle(err, "list exercises", start); err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []exerciseDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, r.handle(err, "decode exercises", start)
	}

	exercises := make([]domain.Exercise, 0, len(docs))
	for _, d := range docs {
		exercises = append(exercises, d.toDomain())
	}
	return exercises, nil
}

func (r *MongoRepository) handle(err error, operation string, start time.Time) error {
	db.ObserveQuery(mongodb.DriverName, operation, mongodb.ExercisesCollection, start)
	if err == nil {
		return nil
	}
	db.CountQueryError(mongodb.DriverName, operation, mongodb.ExercisesCollection, err)
	return fmt.Errorf("failed to %s: %w", operation, err)
}
