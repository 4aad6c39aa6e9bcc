package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/vinculatec/backend/internal/app/models"
	"github.com/vinculatec/backend/internal/app/repositories"
	"github.com/vinculatec/backend/internal/pkg/logger"
)

// NotificationService handles notification emission and inbox management
type NotificationService interface {
	// Emit records a notification for recipient about actor's action.
	// It never fails the caller: emission is fire-and-forget, and an actor
	// acting on their own resource produces nothing.
	Emit(ctx context.Context, recipient, actor string, ntype models.NotificationType, relatedProject string)
	GetForUser(ctx context.Context, userID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, id, userID string) error
	MarkAllRead(ctx context.Context, userID string) error
	Delete(ctx context.Context, id, userID string) error
}

type notificationServiceImpl struct {
	repo   repositories.NotificationRepository
	logger zerolog.Logger
	now    func() time.Time
}

// NewNotificationService creates a new notification service
func NewNotificationService(repo repositories.NotificationRepository) NotificationService {
	return &notificationServiceImpl{
		repo:   repo,
		logger: logger.New("notification_service"),
		now:    time.Now,
	}
}

func (s *notificationServiceImpl) Emit(ctx context.Context, recipient, actor string, ntype models.NotificationType, relatedProject string) {
	if recipient == "" || recipient == actor {
		return
	}

	n := &models.Notification{
		Recipient:      recipient,
		Type:           ntype,
		RelatedUser:    actor,
		RelatedProject: relatedProject,
		CreatedAt:      s.now(),
	}

	if _, err := s.repo.Create(ctx, n); err != nil {
		// The triggering action already succeeded; losing the
		// notification must not fail it.
		s.logger.Warn().Err(err).
			Str("recipient", recipient).
			Str("type", string(ntype)).
			Msg("failed to persist notification")
	}
}

func (s *notificationServiceImpl) GetForUser(ctx context.Context, userID string) ([]models.Notification, error) {
	return s.repo.GetByRecipient(ctx, userID)
}

func (s *notificationServiceImpl) MarkRead(ctx context.Context, id, userID string) error {
	return s.repo.MarkRead(ctx, id, userID)
}

func (s *notificationServiceImpl) MarkAllRead(ctx context.Context, userID string) error {
	return s.repo.MarkAllRead(ctx, userID)
}

func (s *notificationServiceImpl) Delete(ctx context.Context, id, userID string) error {
	return s.repo.Delete(ctx, id, userID)
}
