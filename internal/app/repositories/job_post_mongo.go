package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/vinculatec/backend/internal/app/lifecycle"
	"github.com/vinculatec/backend/internal/app/models"
	"github.com/vinculatec/backend/internal/pkg/apperrors"
	"github.com/vinculatec/backend/internal/pkg/dberrors"
)

// MongoJobPostRepository implements JobPostRepository over the job_posts
// collection
type MongoJobPostRepository struct {
	coll *mongo.Collection
}

// NewMongoJobPostRepository creates a MongoJobPostRepository
func NewMongoJobPostRepository(db *mongo.Database) *MongoJobPostRepository {
	return &MongoJobPostRepository{coll: db.Collection("job_posts")}
}

// Create inserts a new job posting
func (r *MongoJobPostRepository) Create(ctx context.Context, post *models.JobPost) (*models.JobPost, error) {
	now := time.Now()
	post.ID = bson.NewObjectID().Hex()
	post.CreatedAt = now
	post.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to insert job post: %w", err)
	}
	return post, nil
}

// FindByID returns the job posting with the given id
func (r *MongoJobPostRepository) FindByID(ctx context.Context, id string) (*models.JobPost, error) {
	var post models.JobPost
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err != nil {
		if dberrors.IsNoDocuments(err) {
			return nil, apperrors.ErrJobPostNotFound
		}
		return nil, fmt.Errorf("failed to find job post: %w", err)
	}
	return &post, nil
}

// GetAll returns job postings newest-first, optionally filtered by status
func (r *MongoJobPostRepository) GetAll(ctx context.Context, status string) ([]models.JobPost, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list job posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []models.JobPost
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode job posts: %w", err)
	}
	return posts, nil
}

// Update replaces the stored job posting document
func (r *MongoJobPostRepository) Update(ctx context.Context, post *models.JobPost) error {
	post.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": post.ID}, post)
	if err != nil {
		return fmt.Errorf("failed to update job post: %w", err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrJobPostNotFound
	}
	return nil
}

// Delete removes a job posting
func (r *MongoJobPostRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete job post: %w", err)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrJobPostNotFound
	}
	return nil
}

// ExpireDue transitions active postings whose deadline has passed. The
// status condition makes concurrent runs converge without double-firing.
func (r *MongoJobPostRepository) ExpireDue(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.coll.UpdateMany(ctx,
		bson.M{
			"status":              lifecycle.StatusActive,
			"applicationDeadline": bson.M{"$lt": now},
		},
		bson.M{"$set": bson.M{
			"status":    lifecycle.StatusExpired,
			"updatedAt": now,
		}},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to expire job posts: %w", err)
	}
	return res.ModifiedCount, nil
}

// ExpireByID conditionally expires one posting. The status and deadline
// guards keep a concurrent close by the author from being overwritten.
func (r *MongoJobPostRepository) ExpireByID(ctx context.Context, id string, now time.Time) (bool, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{
			"_id":                 id,
			"status":              lifecycle.StatusActive,
			"applicationDeadline": bson.M{"$lt": now},
		},
		bson.M{"$set": bson.M{
			"status":    lifecycle.StatusExpired,
			"updatedAt": now,
		}},
	)
	if err != nil {
		return false, fmt.Errorf("failed to expire job post: %w", err)
	}
	return res.ModifiedCount > 0, nil
}
