// Package db manages the MongoDB connection and collection indexes.
package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/vinculatec/backend/internal/pkg/logger"
)

// Connect establishes the MongoDB connection and verifies it with a ping
func Connect(uri, database string, timeout time.Duration) (*mongo.Client, *mongo.Database, error) {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	logger.Info().Str("database", database).Msg("connected to MongoDB")
	return client, client.Database(database), nil
}

// EnsureIndexes creates the indexes the application relies on. Uniqueness
// of usernames, emails and student IDs is enforced here rather than in
// application code alone.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	users := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			// Sparse: only egresado accounts carry a student ID
			Keys:    bson.D{{Key: "studentId", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
	}
	if _, err := db.Collection("users").Indexes().CreateMany(ctx, users); err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}

	bans := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "studentId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := db.Collection("banned_users").Indexes().CreateMany(ctx, bans); err != nil {
		return fmt.Errorf("failed to create ban ledger indexes: %w", err)
	}

	jobPosts := []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "applicationDeadline", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}
	if _, err := db.Collection("job_posts").Indexes().CreateMany(ctx, jobPosts); err != nil {
		return fmt.Errorf("failed to create job post indexes: %w", err)
	}

	projectPosts := []mongo.IndexModel{
		// Serves both the lazy expiration update and the sweeper's purge
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "expirationDate", Value: 1}}},
		{Keys: bson.D{{Key: "author", Value: 1}}},
		{Keys: bson.D{{Key: "interestedUsers.user", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}
	if _, err := db.Collection("project_posts").Indexes().CreateMany(ctx, projectPosts); err != nil {
		return fmt.Errorf("failed to create project post indexes: %w", err)
	}

	notifications := []mongo.IndexModel{
		{Keys: bson.D{{Key: "recipient", Value: 1}, {Key: "createdAt", Value: -1}}},
	}
	if _, err := db.Collection("notifications").Indexes().CreateMany(ctx, notifications); err != nil {
		return fmt.Errorf("failed to create notification indexes: %w", err)
	}

	return nil
}
