package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/vinculatec/backend/internal/app/models"
	"github.com/vinculatec/backend/internal/app/repositories"
	"github.com/vinculatec/backend/internal/pkg/apperrors"
	"github.com/vinculatec/backend/internal/pkg/logger"
	"github.com/vinculatec/backend/internal/pkg/mediastore"
)

// AnnouncementService handles institutional announcements
type AnnouncementService interface {
	List(ctx context.Context) ([]models.Announcement, error)
	Create(ctx context.Context, authorID, content, image string) (*models.Announcement, error)
	Delete(ctx context.Context, id string) error
}

type announcementServiceImpl struct {
	repo   repositories.AnnouncementRepository
	media  mediastore.Store
	logger zerolog.Logger
}

// NewAnnouncementService creates a new announcement service
func NewAnnouncementService(repo repositories.AnnouncementRepository, media mediastore.Store) AnnouncementService {
	return &announcementServiceImpl{
		repo:   repo,
		media:  media,
		logger: logger.New("announcement_service"),
	}
}

func (s *announcementServiceImpl) List(ctx context.Context) ([]models.Announcement, error) {
	return s.repo.GetAll(ctx)
}

func (s *announcementServiceImpl) Create(ctx context.Context, authorID, content, image string) (*models.Announcement, error) {
	if content == "" {
		return nil, apperrors.NewValidationError("content", "El contenido es obligatorio")
	}

	a := &models.Announcement{
		Author:  authorID,
		Content: content,
	}

	if image != "" {
		url, err := s.media.Upload(ctx, image)
		if err != nil {
			return nil, err
		}
		a.Image = url
	}

	return s.repo.Create(ctx, a)
}

func (s *announcementServiceImpl) Delete(ctx context.Context, id string) error {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if a.Image != "" {
		if err := s.media.Delete(ctx, mediastore.PublicID(a.Image)); err != nil {
			s.logger.Warn().Err(err).Str("id", a.ID).Msg("failed to delete announcement image")
		}
	}

	return s.repo.Delete(ctx, id)
}
