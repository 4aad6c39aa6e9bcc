package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/vinculatec/backend/internal/app/models"
	"github.com/vinculatec/backend/internal/pkg/apperrors"
	"github.com/vinculatec/backend/internal/pkg/dberrors"
)

// MongoAnnouncementRepository implements AnnouncementRepository over the
// announcements collection
type MongoAnnouncementRepository struct {
	coll *mongo.Collection
}

// NewMongoAnnouncementRepository creates a MongoAnnouncementRepository
func NewMongoAnnouncementRepository(db *mongo.Database) *MongoAnnouncementRepository {
	return &MongoAnnouncementRepository{coll: db.Collection("announcements")}
}

// Create inserts an announcement
func (r *MongoAnnouncementRepository) Create(ctx context.Context, a *models.Announcement) (*models.Announcement, error) {
	now := time.Now()
	a.ID = bson.NewObjectID().Hex()
	a.CreatedAt = now
	a.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to insert announcement: %w", err)
	}
	return a, nil
}

// FindByID returns the announcement with the given id
func (r *MongoAnnouncementRepository) FindByID(ctx context.Context, id string) (*models.Announcement, error) {
	var a models.Announcement
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if err != nil {
		if dberrors.IsNoDocuments(err) {
			return nil, apperrors.ErrAnnouncementNotFound
		}
		return nil, fmt.Errorf("failed to find announcement: %w", err)
	}
	return &a, nil
}

// GetAll returns every announcement, newest first
func (r *MongoAnnouncementRepository) GetAll(ctx context.Context) ([]models.Announcement, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	defer cursor.Close(ctx)

	var announcements []models.Announcement
	if err := cursor.All(ctx, &announcements); err != nil {
		return nil, fmt.Errorf("failed to decode announcements: %w", err)
	}
	return announcements, nil
}

// Delete removes an announcement
func (r *MongoAnnouncementRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete announcement: %w", err)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrAnnouncementNotFound
	}
	return nil
}
