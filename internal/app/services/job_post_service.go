package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/vinculatec/backend/internal/app/lifecycle"
	"github.com/vinculatec/backend/internal/app/models"
	"github.com/vinculatec/backend/internal/app/models/dto"
	"github.com/vinculatec/backend/internal/app/repositories"
	"github.com/vinculatec/backend/internal/pkg/apperrors"
	"github.com/vinculatec/backend/internal/pkg/logger"
)

// JobPostService handles job posting operations. Listings and lookups apply
// the overdue active -> expired transition before returning data.
type JobPostService interface {
	List(ctx context.Context, status string) ([]models.JobPost, error)
	GetByID(ctx context.Context, id string) (*models.JobPost, error)
	Create(ctx context.Context, authorID string, req dto.CreateJobPostRequest) (*models.JobPost, error)
	Update(ctx context.Context, id, callerID string, req dto.UpdateJobPostRequest) (*models.JobPost, error)
	ChangeStatus(ctx context.Context, id, callerID, status string) (*models.JobPost, error)
	Delete(ctx context.Context, id, callerID string) error
}

type jobPostServiceImpl struct {
	repo   repositories.JobPostRepository
	logger zerolog.Logger
	now    func() time.Time
}

// NewJobPostService creates a new job posting service
func NewJobPostService(repo repositories.JobPostRepository) JobPostService {
	return &jobPostServiceImpl{
		repo:   repo,
		logger: logger.New("job_post_service"),
		now:    time.Now,
	}
}

func (s *jobPostServiceImpl) List(ctx context.Context, status string) ([]models.JobPost, error) {
	if _, err := s.repo.ExpireDue(ctx, s.now()); err != nil {
		s.logger.Warn().Err(err).Msg("failed to expire overdue job postings")
	}

	if status != "" && !lifecycle.JobRules.ValidStatus(lifecycle.Status(status)) {
		return nil, apperrors.NewValidationError("status", "Estado de vacante inválido: "+status)
	}

	return s.repo.GetAll(ctx, status)
}

func (s *jobPostServiceImpl) GetByID(ctx context.Context, id string) (*models.JobPost, error) {
	return s.findCurrent(ctx, id)
}

// findCurrent loads a posting and applies the lazy expiration transition as
// a conditional write, so a concurrent status change by the author wins over
// the stale snapshot read here.
func (s *jobPostServiceImpl) findCurrent(ctx context.Context, id string) (*models.JobPost, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if lifecycle.ShouldExpire(post, s.now()) {
		expired, err := s.repo.ExpireByID(ctx, post.ID, s.now())
		switch {
		case err != nil:
			s.logger.Warn().Err(err).Str("id", post.ID).Msg("failed to persist job expiration")
			post.Status = lifecycle.StatusExpired
		case expired:
			post.Status = lifecycle.StatusExpired
		default:
			// Another writer changed the posting first; reload it.
			return s.repo.FindByID(ctx, post.ID)
		}
	}

	return post, nil
}

func (s *jobPostServiceImpl) Create(ctx context.Context, authorID string, req dto.CreateJobPostRequest) (*models.JobPost, error) {
	switch {
	case req.Title == "":
		return nil, apperrors.NewValidationError("title", "El título es obligatorio")
	case req.Company == "":
		return nil, apperrors.NewValidationError("company", "La empresa es obligatoria")
	case req.Location == "":
		return nil, apperrors.NewValidationError("location", "La ubicación es obligatoria")
	case req.Description == "":
		return nil, apperrors.NewValidationError("description", "La descripción es obligatoria")
	}

	jobType := models.JobType(req.JobType)
	if req.JobType == "" {
		jobType = models.JobTypeFullTime
	} else if !jobType.Valid() {
		return nil, apperrors.NewValidationError("jobType", "Tipo de empleo inválido: "+req.JobType)
	}

	if req.ApplicationDeadline != nil && !req.ApplicationDeadline.After(s.now()) {
		return nil, apperrors.NewValidationError("applicationDeadline", "La fecha límite debe ser futura")
	}

	post := &models.JobPost{
		Author:              authorID,
		Title:               req.Title,
		Company:             req.Company,
		Location:            req.Location,
		Description:         req.Description,
		Requirements:        req.Requirements,
		Salary:              req.Salary,
		ContactEmail:        req.ContactEmail,
		ApplicationDeadline: req.ApplicationDeadline,
		Status:              lifecycle.StatusActive,
		JobType:             jobType,
	}

	return s.repo.Create(ctx, post)
}

func (s *jobPostServiceImpl) Update(ctx context.Context, id, callerID string, req dto.UpdateJobPostRequest) (*models.JobPost, error) {
	post, err := s.findCurrent(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.Author != callerID {
		return nil, apperrors.ErrNotAuthor
	}
	if lifecycle.JobRules.IsTerminal(post.Status) {
		return nil, apperrors.NewStateError("Una vacante cerrada o expirada ya no admite cambios")
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Company != nil {
		post.Company = *req.Company
	}
	if req.Location != nil {
		post.Location = *req.Location
	}
	if req.Description != nil {
		post.Description = *req.Description
	}
	if req.Requirements != nil {
		post.Requirements = *req.Requirements
	}
	if req.Salary != nil {
		post.Salary = *req.Salary
	}
	if req.ContactEmail != nil {
		post.ContactEmail = *req.ContactEmail
	}
	if req.ApplicationDeadline != nil {
		post.ApplicationDeadline = req.ApplicationDeadline
	}
	if req.JobType != nil {
		jobType := models.JobType(*req.JobType)
		if !jobType.Valid() {
			return nil, apperrors.NewValidationError("jobType", "Tipo de empleo inválido: "+*req.JobType)
		}
		post.JobType = jobType
	}
	if req.Status != nil {
		status := lifecycle.Status(*req.Status)
		if !lifecycle.JobRules.ValidStatus(status) {
			return nil, apperrors.NewValidationError("status", "Estado de vacante inválido: "+*req.Status)
		}
		post.Status = status
	}

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *jobPostServiceImpl) ChangeStatus(ctx context.Context, id, callerID, status string) (*models.JobPost, error) {
	newStatus := lifecycle.Status(status)
	if !lifecycle.JobRules.ValidStatus(newStatus) {
		return nil, apperrors.NewValidationError("status", "Estado de vacante inválido: "+status)
	}

	post, err := s.findCurrent(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.Author != callerID {
		return nil, apperrors.ErrNotAuthor
	}
	if lifecycle.JobRules.IsTerminal(post.Status) {
		return nil, apperrors.NewStateError("Una vacante cerrada o expirada ya no admite cambios")
	}

	post.Status = newStatus
	if err := s.repo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *jobPostServiceImpl) Delete(ctx context.Context, id, callerID string) error {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if post.Author != callerID {
		return apperrors.ErrNotAuthor
	}
	return s.repo.Delete(ctx, id)
}
