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
	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/user/domain"
)

type userDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Username  string             `bson:"username"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (d userDocument) toDomain() domain.User {
	return domain.User{
		ID:        domain.ID(d.ID.Hex()),
		Username:  d.Username,
		CreatedAt: d.CreatedAt,
	}
}

type MongoRepository struct {
	users *mongo.Collection
}

func NewMongoRepository(database *mongo.Database) *MongoRepository {
	return &MongoRepository{users: database.Collection(mongodb.UsersCollection)}
}

func (r *MongoRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	oid, ok := mongodb.ParseID(string(user.ID))
	if !ok {
		return domain.User{}, errors.New("user id is not an ObjectID")
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	start := time.Now()
	_, err := r.users.InsertOne(ctx, userDocument{
		ID:        oid,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	})
	if err := r.handle(err, "insert user", start); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (r *MongoRepository) FindByID(ctx context.Context, id domain.ID) (domain.User, error) {
	oid, ok := mongodb.ParseID(string(id))
	if !ok {
		return domain.User{}, ErrUserNotFound
	}

	start := time.Now()
	var doc userDocument
	err := r.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		db.ObserveQuery(mongodb.DriverName, "find user by id", mongodb.UsersCollection, start)
		return domain.User{}, ErrUserNotFound
	}
	if err := r.handle(err, "find user by id", start); err != nil {
		return domain.User{}, err
	}
	return doc.toDomain(), nil
}

func (r *MongoRepository) List(ctx context.Context) ([]domain.User, error) {
	start := time.Now()
	cursor, err := r.users.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err := r.handle(err, "list users", start); err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, r.handle(err, "decode users", start)
	}

	users := make([]domain.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, d.toDomain())
	}
	return users, nil
}

func (r *MongoRepository) handle(err error, operation string, start time.Time) error {
	db.ObserveQuery(mongodb.DriverName, operation, mongodb.UsersCollection, start)
	if err == nil {
		return nil
	}
	db.CountQueryError(mongodb.DriverName, operation, mongodb.UsersCollection, err)
	return fmt.Errorf("failed to %s: %w", operation, err)
}
