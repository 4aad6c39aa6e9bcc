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

// MongoProjectPostRepository implements ProjectPostRepository over the
// project_posts collection
type MongoProjectPostRepository struct {
	coll *mongo.Collection
}

// NewMongoProjectPostRepository creates a MongoProjectPostRepository
func NewMongoProjectPostRepository(db *mongo.Database) *MongoProjectPostRepository {
	return &MongoProjectPostRepository{coll: db.Collection("project_posts")}
}

// Create inserts a new project posting
func (r *MongoProjectPostRepository) Create(ctx context.Context, post *models.ProjectPost) (*models.ProjectPost, error) {
	now := time.Now()
	post.ID = bson.NewObjectID().Hex()
	post.CreatedAt = now
	post.UpdatedAt = now
	if post.Likes == nil {
		post.Likes = []string{}
	}
	if post.Comments == nil {
		post.Comments = []models.ProjectComment{}
	}
	if post.InterestedUsers == nil {
		post.InterestedUsers = []models.ProjectInterest{}
	}

	if _, err := r.coll.InsertOne(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to insert project post: %w", err)
	}
	return post, nil
}

// FindByID returns the project posting with the given id
func (r *MongoProjectPostRepository) FindByID(ctx context.Context, id string) (*models.ProjectPost, error) {
	var post models.ProjectPost
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err != nil {
		if dberrors.IsNoDocuments(err) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project post: %w", err)
	}
	return &post, nil
}

// GetAll returns project postings newest-first matching the filter
func (r *MongoProjectPostRepository) GetAll(ctx context.Context, filter ProjectFilter) ([]models.ProjectPost, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.InterestedUser != "" {
		query["interestedUsers.user"] = filter.InterestedUser
	}
	if filter.Author != "" {
		query["author"] = filter.Author
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list project posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []models.ProjectPost
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode project posts: %w", err)
	}
	return posts, nil
}

// Update replaces the stored project posting document
func (r *MongoProjectPostRepository) Update(ctx context.Context, post *models.ProjectPost) error {
	post.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": post.ID}, post)
	if err != nil {
		return fmt.Errorf("failed to update project post: %w", err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrProjectNotFound
	}
	return nil
}

// Delete removes a project posting
func (r *MongoProjectPostRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete project post: %w", err)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrProjectNotFound
	}
	return nil
}

// ExpireDue transitions active postings past their expiration date. The
// status condition makes concurrent runs converge without double-firing.
func (r *MongoProjectPostRepository) ExpireDue(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.coll.UpdateMany(ctx,
		bson.M{
			"status":         lifecycle.StatusActive,
			"expirationDate": bson.M{"$lt": now},
		},
		bson.M{"$set": bson.M{
			"status":    lifecycle.StatusExpired,
			"updatedAt": now,
		}},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to expire project posts: %w", err)
	}
	return res.ModifiedCount, nil
}

// ExpireByID conditionally expires one posting. The status and date guards
// keep a concurrent completion by the author, or interactions landing
// between the caller's read and this write, from being overwritten.
func (r *MongoProjectPostRepository) ExpireByID(ctx context.Context, id string, now time.Time) (bool, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{
			"_id":            id,
			"status":         lifecycle.StatusActive,
			"expirationDate": bson.M{"$lt": now},
		},
		bson.M{"$set": bson.M{
			"status":    lifecycle.StatusExpired,
			"updatedAt": now,
		}},
	)
	if err != nil {
		return false, fmt.Errorf("failed to expire project post: %w", err)
	}
	return res.ModifiedCount > 0, nil
}

func purgeFilter(threshold time.Time) bson.M {
	return bson.M{
		"status":         lifecycle.StatusExpired,
		"expirationDate": bson.M{"$lt": threshold},
	}
}

// FindPurgeable returns expired postings older than threshold
func (r *MongoProjectPostRepository) FindPurgeable(ctx context.Context, threshold time.Time) ([]models.ProjectPost, error) {
	cursor, err := r.coll.Find(ctx, purgeFilter(threshold))
	if err != nil {
		return nil, fmt.Errorf("failed to find purgeable project posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []models.ProjectPost
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode purgeable project posts: %w", err)
	}
	return posts, nil
}

// DeletePurgeable removes expired postings older than threshold
func (r *MongoProjectPostRepository) DeletePurgeable(ctx context.Context, threshold time.Time) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, purgeFilter(threshold))
	if err != nil {
		return 0, fmt.Errorf("failed to purge project posts: %w", err)
	}
	return res.DeletedCount, nil
}
