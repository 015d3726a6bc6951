package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/common/constants"
	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/common/logger"
)

const (
	DriverName          = "mongo"
	UsersCollection     = "users"
	ExercisesCollection = "exercises"
)

// Connect opens a client against uri and verifies the primary is reachable.
func Connect(ctx context.Context, log *logger.Logger, uri, applicationName string) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, constants.MongoConnectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(uri).
		SetAppName(applicationName).
		SetConnectTimeout(constants.MongoConnectTimeout)

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	log.Infof("mongo client connected: app=%s", applicationName)
	return client, nil
}

// EnsureIndexes creates the index backing the username join on exercises.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(ExercisesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}, {Key: "_id", Value: 1}},
		Options: options.Index().SetName("exercises_username_id"),
	})
	if err != nil {
		return fmt.Errorf("failed to create exercises index: %w", err)
	}
	return nil
}
