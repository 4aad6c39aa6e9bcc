package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/vinculatec/backend/internal/app/models"
	"github.com/vinculatec/backend/internal/app/models/dto"
	"github.com/vinculatec/backend/internal/app/repositories"
	"github.com/vinculatec/backend/internal/pkg/apperrors"
	"github.com/vinculatec/backend/internal/pkg/auth"
	"github.com/vinculatec/backend/internal/pkg/email"
	"github.com/vinculatec/backend/internal/pkg/logger"
	"github.com/vinculatec/backend/internal/pkg/validation"
)

// AdminService handles administrator account management and the ban ledger
type AdminService interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	UpdateRole(ctx context.Context, userID, role string) (*models.User, error)
	ResetPassword(ctx context.Context, userID, newPassword string) error
	DeleteUser(ctx context.Context, userID string) error
	// BanUser records the account's student ID in the ban ledger and then
	// deletes the account. The ledger entry outlives the account.
	BanUser(ctx context.Context, userID, reason, bannedBy string) (*models.BannedUser, error)
	UnbanUser(ctx context.Context, studentID string) error
	GetBannedUsers(ctx context.Context) ([]models.BannedUser, error)
}

type adminServiceImpl struct {
	userRepo     repositories.UserRepository
	bannedRepo   repositories.BannedUserRepository
	emailService email.EmailService
	frontendURL  string
	logger       zerolog.Logger
	now          func() time.Time
}

// NewAdminService creates a new admin service
func NewAdminService(
	userRepo repositories.UserRepository,
	bannedRepo repositories.BannedUserRepository,
	emailService email.EmailService,
	frontendURL string,
) AdminService {
	return &adminServiceImpl{
		userRepo:     userRepo,
		bannedRepo:   bannedRepo,
		emailService: emailService,
		frontendURL:  frontendURL,
		logger:       logger.New("admin_service"),
		now:          time.Now,
	}
}

func (s *adminServiceImpl) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*models.User, error) {
	switch {
	case req.Name == "":
		return nil, apperrors.NewValidationError("name", "El nombre es obligatorio")
	case req.Username == "":
		return nil, apperrors.NewValidationError("username", "El nombre de usuario es obligatorio")
	case req.Email == "":
		return nil, apperrors.NewValidationError("email", "El correo es obligatorio")
	case req.Password == "":
		return nil, apperrors.NewValidationError("password", "La contraseña es obligatoria")
	}

	role := models.Role(req.Role)
	if !role.Valid() {
		return nil, apperrors.ErrInvalidRole
	}

	if role == models.RoleEgresado {
		if req.StudentID == "" {
			return nil, apperrors.NewValidationError("studentId", "El número de control es obligatorio para egresados")
		}
		if !validation.IsValidStudentID(req.StudentID) {
			return nil, apperrors.ErrInvalidStudentID
		}
		if !validation.MatchesInstitutionalEmail(req.StudentID, req.Email) {
			return nil, apperrors.NewValidationError("email",
				"El correo debe ser el institucional "+validation.InstitutionalEmail(req.StudentID))
		}

		ban, err := s.bannedRepo.FindByStudentID(ctx, req.StudentID)
		if err != nil {
			return nil, err
		}
		if ban != nil {
			return nil, apperrors.ErrStudentIDBanned
		}

		if existing, err := s.userRepo.FindByStudentID(ctx, req.StudentID); err != nil {
			return nil, err
		} else if existing != nil {
			return nil, apperrors.ErrStudentIDExists
		}
	}

	if existing, err := s.userRepo.FindByEmail(ctx, req.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	if existing, err := s.userRepo.FindByUsername(ctx, req.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, apperrors.ErrUsernameExists
	}

	if !validation.IsValidPassword(req.Password) {
		return nil, apperrors.NewValidationError("password", "La contraseña debe tener al menos 6 caracteres")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
		Role:     role,
	}
	if role == models.RoleEgresado {
		user.StudentID = req.StudentID
	}
	if role == models.RoleEmpresario {
		user.IsFirstLogin = true
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	profileURL := s.frontendURL + "/profile/" + created.Username
	if err := s.emailService.SendWelcomeEmail(created.Email, created.Name, profileURL, string(created.Role)); err != nil {
		s.logger.Warn().Err(err).Str("email", created.Email).Msg("failed to send welcome email")
	}

	return created, nil
}

func (s *adminServiceImpl) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.GetAll(ctx)
}

func (s *adminServiceImpl) UpdateRole(ctx context.Context, userID, role string) (*models.User, error) {
	newRole := models.Role(role)
	if !newRole.Valid() {
		return nil, apperrors.ErrInvalidRole
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Role = newRole
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *adminServiceImpl) ResetPassword(ctx context.Context, userID, newPassword string) error {
	if !validation.IsValidPassword(newPassword) {
		return apperrors.NewValidationError("newPassword", "La contraseña debe tener al menos 6 caracteres")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	hashed, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.Password = hashed
	return s.userRepo.Update(ctx, user)
}

func (s *adminServiceImpl) DeleteUser(ctx context.Context, userID string) error {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, userID)
}

func (s *adminServiceImpl) BanUser(ctx context.Context, userID, reason, bannedBy string) (*models.BannedUser, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Only egresado accounts carry a student ID; nothing else can be
	// entered in the ledger.
	if user.Role != models.RoleEgresado || user.StudentID == "" {
		return nil, apperrors.NewValidationError("studentId",
			"Solo se pueden vetar cuentas de egresado con número de control")
	}

	ban := &models.BannedUser{
		StudentID: user.StudentID,
		Email:     user.Email,
		Reason:    reason,
		BannedBy:  bannedBy,
		BannedAt:  s.now(),
	}

	created, err := s.bannedRepo.Create(ctx, ban)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("studentId", user.StudentID).
		Str("bannedBy", bannedBy).
		Msg("account banned and removed")

	return created, nil
}

func (s *adminServiceImpl) UnbanUser(ctx context.Context, studentID string) error {
	return s.bannedRepo.DeleteByStudentID(ctx, studentID)
}

func (s *adminServiceImpl) GetBannedUsers(ctx context.Context) ([]models.BannedUser, error) {
	return s.bannedRepo.GetAll(ctx)
}
