package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/vinculatec/backend/internal/app/models"
	"github.com/vinculatec/backend/internal/app/models/dto"
	"github.com/vinculatec/backend/internal/app/repositories"
	"github.com/vinculatec/backend/internal/pkg/apperrors"
	"github.com/vinculatec/backend/internal/pkg/logger"
	"github.com/vinculatec/backend/internal/pkg/mediastore"
)

// UserService handles public profiles and profile editing
type UserService interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	// UpdateProfile applies partial profile edits. Image fields given as
	// base64 data URIs are uploaded to the media store first; completing
	// company info clears an empresario's first-login flag.
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*models.User, error)
}

type userServiceImpl struct {
	userRepo repositories.UserRepository
	media    mediastore.Store
	logger   zerolog.Logger
}

// NewUserService creates a new user profile service
func NewUserService(userRepo repositories.UserRepository, media mediastore.Store) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		media:    media,
		logger:   logger.New("user_service"),
	}
}

func (s *userServiceImpl) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (s *userServiceImpl) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Headline != nil {
		user.Headline = *req.Headline
	}
	if req.Location != nil {
		user.Location = *req.Location
	}
	if req.About != nil {
		user.About = *req.About
	}
	if req.Skills != nil {
		user.Skills = *req.Skills
	}
	if req.Experience != nil {
		user.Experience = *req.Experience
	}
	if req.Education != nil {
		user.Education = *req.Education
	}

	if err := s.applyImage(ctx, req.ProfilePicture, &user.ProfilePicture); err != nil {
		return nil, err
	}
	if err := s.applyImage(ctx, req.BannerImg, &user.BannerImg); err != nil {
		return nil, err
	}
	if err := s.applyImage(ctx, req.CurriculumImg, &user.CurriculumImg); err != nil {
		return nil, err
	}

	if req.CompanyInfo != nil {
		if user.Role != models.RoleEmpresario {
			return nil, apperrors.NewValidationError("companyInfo",
				"Solo las cuentas de empresario tienen perfil de empresa")
		}
		user.CompanyInfo = req.CompanyInfo
		user.IsFirstLogin = false
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// applyImage uploads a new data URI and replaces the stored asset URL,
// removing the previous asset best-effort. Non-data values pass through.
func (s *userServiceImpl) applyImage(ctx context.Context, incoming *string, current *string) error {
	if incoming == nil {
		return nil
	}

	if strings.HasPrefix(*incoming, "data:") {
		url, err := s.media.Upload(ctx, *incoming)
		if err != nil {
			return err
		}
		if *current != "" {
			if err := s.media.Delete(ctx, mediastore.PublicID(*current)); err != nil {
				s.logger.Warn().Err(err).Str("asset", *current).Msg("failed to delete replaced asset")
			}
		}
		*current = url
		return nil
	}

	*current = *incoming
	return nil
}
