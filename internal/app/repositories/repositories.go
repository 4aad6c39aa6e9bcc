package repositories

import (
	"context"
	"time"

	"github.com/vinculatec/backend/internal/app/models"
)

// UserRepository handles account persistence. FindByUsername, FindByEmail
// and FindByStudentID return (nil, nil) when no account matches, so callers
// can use them as existence checks.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByStudentID(ctx context.Context, studentID string) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
}

// BannedUserRepository is the append-only ban ledger keyed by student ID
type BannedUserRepository interface {
	Create(ctx context.Context, ban *models.BannedUser) (*models.BannedUser, error)
	FindByStudentID(ctx context.Context, studentID string) (*models.BannedUser, error)
	GetAll(ctx context.Context) ([]models.BannedUser, error)
	DeleteByStudentID(ctx context.Context, studentID string) error
}

// JobPostRepository handles job posting persistence
type JobPostRepository interface {
	Create(ctx context.Context, post *models.JobPost) (*models.JobPost, error)
	FindByID(ctx context.Context, id string) (*models.JobPost, error)
	// GetAll returns postings newest-first, optionally filtered by status
	GetAll(ctx context.Context, status string) ([]models.JobPost, error)
	Update(ctx context.Context, post *models.JobPost) error
	Delete(ctx context.Context, id string) error
	// ExpireDue transitions every active posting whose deadline has passed
	// to expired. Conditional on status so repeated runs are no-ops.
	ExpireDue(ctx context.Context, now time.Time) (int64, error)
	// ExpireByID applies the same conditional transition to one posting and
	// reports whether it fired. A posting already out of active is left
	// untouched.
	ExpireByID(ctx context.Context, id string, now time.Time) (bool, error)
}

// ProjectFilter narrows project listings
type ProjectFilter struct {
	Status string
	// InterestedUser selects postings where this account has an interest entry
	InterestedUser string
	// Author selects postings created by this account
	Author string
}

// ProjectPostRepository handles project posting persistence
type ProjectPostRepository interface {
	Create(ctx context.Context, post *models.ProjectPost) (*models.ProjectPost, error)
	FindByID(ctx context.Context, id string) (*models.ProjectPost, error)
	// GetAll returns postings newest-first matching the filter
	GetAll(ctx context.Context, filter ProjectFilter) ([]models.ProjectPost, error)
	Update(ctx context.Context, post *models.ProjectPost) error
	Delete(ctx context.Context, id string) error
	// ExpireDue transitions every active posting past its expiration date
	// to expired. Conditional on status so repeated runs are no-ops.
	ExpireDue(ctx context.Context, now time.Time) (int64, error)
	// ExpireByID applies the same conditional transition to one posting and
	// reports whether it fired. A posting already out of active is left
	// untouched.
	ExpireByID(ctx context.Context, id string, now time.Time) (bool, error)
	// FindPurgeable returns expired postings whose expiration date is older
	// than threshold
	FindPurgeable(ctx context.Context, threshold time.Time) ([]models.ProjectPost, error)
	// DeletePurgeable removes the postings FindPurgeable selects and
	// reports how many were deleted
	DeletePurgeable(ctx context.Context, threshold time.Time) (int64, error)
}

// NotificationRepository handles notification persistence
type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) (*models.Notification, error)
	// GetByRecipient returns a user's notifications newest-first
	GetByRecipient(ctx context.Context, userID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, id, userID string) error
	MarkAllRead(ctx context.Context, userID string) error
	Delete(ctx context.Context, id, userID string) error
}

// AnnouncementRepository handles announcement persistence
type AnnouncementRepository interface {
	Create(ctx context.Context, a *models.Announcement) (*models.Announcement, error)
	FindByID(ctx context.Context, id string) (*models.Announcement, error)
	GetAll(ctx context.Context) ([]models.Announcement, error)
	Delete(ctx context.Context, id string) error
}
