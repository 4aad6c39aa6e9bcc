package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/vinculatec/backend/internal/app/lifecycle"
	"github.com/vinculatec/backend/internal/app/models"
	"github.com/vinculatec/backend/internal/app/models/dto"
	"github.com/vinculatec/backend/internal/app/repositories"
	"github.com/vinculatec/backend/internal/pkg/apperrors"
	"github.com/vinculatec/backend/internal/pkg/logger"
	"github.com/vinculatec/backend/internal/pkg/mediastore"
)

// Expiration window bounds in days
const (
	DefaultExpirationDays = 30
	MinExpirationDays     = 7
	MaxExpirationDays     = 90
)

// ProjectService handles project posting operations, including the embedded
// like, comment and interest sub-entities. Listings and lookups apply the
// overdue active -> expired transition before returning data.
type ProjectService interface {
	List(ctx context.Context, callerID string, q dto.ProjectListQuery) ([]models.ProjectPost, error)
	GetByID(ctx context.Context, id string) (*models.ProjectPost, error)
	Create(ctx context.Context, authorID string, req dto.CreateProjectRequest) (*models.ProjectPost, error)
	Update(ctx context.Context, id, callerID string, req dto.UpdateProjectRequest) (*models.ProjectPost, error)
	Delete(ctx context.Context, id, callerID string) error
	// ToggleLike adds or removes the caller's like and reports the
	// resulting state
	ToggleLike(ctx context.Context, id, userID string) (*models.ProjectPost, bool, error)
	// ToggleInterest adds or removes the caller's interest entry and
	// reports the resulting state
	ToggleInterest(ctx context.Context, id, userID string) (*models.ProjectPost, bool, error)
	AddComment(ctx context.Context, id, userID, content string) (*models.ProjectPost, error)
}

type projectServiceImpl struct {
	repo          repositories.ProjectPostRepository
	notifications NotificationService
	media         mediastore.Store
	logger        zerolog.Logger
	now           func() time.Time
}

// NewProjectService creates a new project posting service
func NewProjectService(
	repo repositories.ProjectPostRepository,
	notifications NotificationService,
	media mediastore.Store,
) ProjectService {
	return &projectServiceImpl{
		repo:          repo,
		notifications: notifications,
		media:         media,
		logger:        logger.New("project_service"),
		now:           time.Now,
	}
}

// expirationWindow validates days and returns the effective window length.
// Zero means the caller did not choose one, so the default applies.
func expirationWindow(days int) (int, error) {
	if days == 0 {
		return DefaultExpirationDays, nil
	}
	if days < MinExpirationDays || days > MaxExpirationDays {
		return 0, apperrors.NewValidationError("expirationDays",
			fmt.Sprintf("La vigencia debe estar entre %d y %d días", MinExpirationDays, MaxExpirationDays))
	}
	return days, nil
}

func (s *projectServiceImpl) List(ctx context.Context, callerID string, q dto.ProjectListQuery) ([]models.ProjectPost, error) {
	if _, err := s.repo.ExpireDue(ctx, s.now()); err != nil {
		s.logger.Warn().Err(err).Msg("failed to expire overdue projects")
	}

	if q.Status != "" && !lifecycle.ProjectRules.ValidStatus(lifecycle.Status(q.Status)) {
		return nil, apperrors.NewValidationError("status", "Estado de proyecto inválido: "+q.Status)
	}

	filter := repositories.ProjectFilter{Status: q.Status}
	if q.Interested == "true" {
		filter.InterestedUser = callerID
	}
	if q.Created == "true" {
		filter.Author = callerID
	}

	return s.repo.GetAll(ctx, filter)
}

func (s *projectServiceImpl) GetByID(ctx context.Context, id string) (*models.ProjectPost, error) {
	return s.findCurrent(ctx, id)
}

// findCurrent loads a project and applies the lazy expiration transition as
// a conditional write, so callers always observe the current lifecycle state
// and a concurrent completion (or interactions landing after the read) wins
// over the stale snapshot.
func (s *projectServiceImpl) findCurrent(ctx context.Context, id string) (*models.ProjectPost, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if lifecycle.ShouldExpire(post, s.now()) {
		expired, err := s.repo.ExpireByID(ctx, post.ID, s.now())
		switch {
		case err != nil:
			s.logger.Warn().Err(err).Str("id", post.ID).Msg("failed to persist project expiration")
			post.Status = lifecycle.StatusExpired
		case expired:
			post.Status = lifecycle.StatusExpired
		default:
			// Another writer changed the project first; reload it.
			return s.repo.FindByID(ctx, post.ID)
		}
	}

	return post, nil
}

func (s *projectServiceImpl) Create(ctx context.Context, authorID string, req dto.CreateProjectRequest) (*models.ProjectPost, error) {
	switch {
	case req.Title == "":
		return nil, apperrors.NewValidationError("title", "El título es obligatorio")
	case req.Content == "":
		return nil, apperrors.NewValidationError("content", "La descripción es obligatoria")
	}

	days, err := expirationWindow(req.ExpirationDays)
	if err != nil {
		return nil, err
	}

	post := &models.ProjectPost{
		Author:              authorID,
		Title:               req.Title,
		Content:             req.Content,
		ProjectRequirements: req.ProjectRequirements,
		ProjectGoals:        req.ProjectGoals,
		Status:              lifecycle.StatusActive,
		ExpirationDate:      s.now().AddDate(0, 0, days),
	}

	if req.Image != "" {
		url, err := s.media.Upload(ctx, req.Image)
		if err != nil {
			return nil, err
		}
		post.Image = url
	}

	return s.repo.Create(ctx, post)
}

func (s *projectServiceImpl) Update(ctx context.Context, id, callerID string, req dto.UpdateProjectRequest) (*models.ProjectPost, error) {
	post, err := s.findCurrent(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.Author != callerID {
		return nil, apperrors.ErrNotAuthor
	}
	if lifecycle.ProjectRules.IsTerminal(post.Status) {
		return nil, apperrors.NewStateError("Un proyecto expirado ya no admite cambios")
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.ProjectRequirements != nil {
		post.ProjectRequirements = *req.ProjectRequirements
	}
	if req.ProjectGoals != nil {
		post.ProjectGoals = *req.ProjectGoals
	}
	if req.Status != nil {
		status := lifecycle.Status(*req.Status)
		if !lifecycle.ProjectRules.ValidStatus(status) {
			return nil, apperrors.NewValidationError("status", "Estado de proyecto inválido: "+*req.Status)
		}
		post.Status = status
	}
	if req.ExpirationDays != nil {
		days, err := expirationWindow(*req.ExpirationDays)
		if err != nil {
			return nil, err
		}
		// The window restarts from now, not from the original creation
		// date.
		post.ExpirationDate = s.now().AddDate(0, 0, days)
	}

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *projectServiceImpl) Delete(ctx context.Context, id, callerID string) error {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if post.Author != callerID {
		return apperrors.ErrNotAuthor
	}

	if post.Image != "" {
		if err := s.media.Delete(ctx, mediastore.PublicID(post.Image)); err != nil {
			s.logger.Warn().Err(err).Str("id", post.ID).Msg("failed to delete project image")
		}
	}

	return s.repo.Delete(ctx, id)
}

func (s *projectServiceImpl) ToggleLike(ctx context.Context, id, userID string) (*models.ProjectPost, bool, error) {
	post, err := s.findCurrent(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if !lifecycle.ProjectRules.CanInteract(post.Status) {
		return nil, false, apperrors.NewStateError("No se puede interactuar con un proyecto expirado")
	}

	liked := post.HasLiked(userID)
	if liked {
		kept := post.Likes[:0]
		for _, uid := range post.Likes {
			if uid != userID {
				kept = append(kept, uid)
			}
		}
		post.Likes = kept
	} else {
		post.Likes = append(post.Likes, userID)
	}

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, false, err
	}

	if !liked {
		s.notifications.Emit(ctx, post.Author, userID, models.NotificationProjectLike, post.ID)
	}

	return post, !liked, nil
}

func (s *projectServiceImpl) ToggleInterest(ctx context.Context, id, userID string) (*models.ProjectPost, bool, error) {
	post, err := s.findCurrent(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if !lifecycle.ProjectRules.CanInteract(post.Status) {
		return nil, false, apperrors.NewStateError("No se puede interactuar con un proyecto expirado")
	}

	interested := post.IsInterested(userID)
	if interested {
		kept := post.InterestedUsers[:0]
		for _, entry := range post.InterestedUsers {
			if entry.User != userID {
				kept = append(kept, entry)
			}
		}
		post.InterestedUsers = kept
	} else {
		post.InterestedUsers = append(post.InterestedUsers, models.ProjectInterest{
			User:      userID,
			CreatedAt: s.now(),
		})
	}

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, false, err
	}

	if !interested {
		s.notifications.Emit(ctx, post.Author, userID, models.NotificationProjectInterest, post.ID)
	}

	return post, !interested, nil
}

func (s *projectServiceImpl) AddComment(ctx context.Context, id, userID, content string) (*models.ProjectPost, error) {
	if content == "" {
		return nil, apperrors.NewValidationError("content", "El comentario no puede estar vacío")
	}

	post, err := s.findCurrent(ctx, id)
	if err != nil {
		return nil, err
	}
	if !lifecycle.ProjectRules.CanInteract(post.Status) {
		return nil, apperrors.NewStateError("No se puede comentar en un proyecto expirado")
	}

	post.Comments = append(post.Comments, models.ProjectComment{
		User:      userID,
		Content:   content,
		CreatedAt: s.now(),
	})

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, err
	}

	s.notifications.Emit(ctx, post.Author, userID, models.NotificationProjectComment, post.ID)

	return post, nil
}
