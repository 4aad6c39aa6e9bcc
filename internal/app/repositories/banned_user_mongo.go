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

// MongoBannedUserRepository implements BannedUserRepository over the
// banned_users collection. The unique index on studentId enforces the
// one-ban-per-ID invariant.
type MongoBannedUserRepository struct {
	coll *mongo.Collection
}

// NewMongoBannedUserRepository creates a MongoBannedUserRepository
func NewMongoBannedUserRepository(db *mongo.Database) *MongoBannedUserRepository {
	return &MongoBannedUserRepository{coll: db.Collection("banned_users")}
}

// Create appends a ban ledger entry
func (r *MongoBannedUserRepository) Create(ctx context.Context, ban *models.BannedUser) (*models.BannedUser, error) {
	ban.ID = bson.NewObjectID().Hex()
	if ban.BannedAt.IsZero() {
		ban.BannedAt = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, ban); err != nil {
		if dberrors.IsDuplicateKey(err) {
			return nil, apperrors.ErrAlreadyBanned
		}
		return nil, fmt.Errorf("failed to insert ban record: %w", err)
	}
	return ban, nil
}

// FindByStudentID returns the ban record for a student ID, nil if absent
func (r *MongoBannedUserRepository) FindByStudentID(ctx context.Context, studentID string) (*models.BannedUser, error) {
	var ban models.BannedUser
	err := r.coll.FindOne(ctx, bson.M{"studentId": studentID}).Decode(&ban)
	if err != nil {
		if dberrors.IsNoDocuments(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find ban record: %w", err)
	}
	return &ban, nil
}

// GetAll returns every ban record, newest first
func (r *MongoBannedUserRepository) GetAll(ctx context.Context) ([]models.BannedUser, error) {
	opts := options.Find().SetSort(bson.D{{Key: "bannedAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list ban records: %w", err)
	}
	defer cursor.Close(ctx)

	var bans []models.BannedUser
	if err := cursor.All(ctx, &bans); err != nil {
		return nil, fmt.Errorf("failed to decode ban records: %w", err)
	}
	return bans, nil
}

// DeleteByStudentID removes a ban record (unban)
func (r *MongoBannedUserRepository) DeleteByStudentID(ctx context.Context, studentID string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"studentId": studentID})
	if err != nil {
		return fmt.Errorf("failed to delete ban record: %w", err)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrBanNotFound
	}
	return nil
}
