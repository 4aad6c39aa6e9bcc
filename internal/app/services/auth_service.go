package services

import (
	"context"

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

// AuthService handles self-registration and authentication
type AuthService interface {
	// Signup registers a new egresado account. The ban ledger is consulted
	// before any other validation runs.
	Signup(ctx context.Context, req dto.SignupRequest) (*models.User, error)
	Login(ctx context.Context, username, password string) (*dto.AuthResponse, error)
	GetCurrentUser(ctx context.Context, userID string) (*models.User, error)
}

type authServiceImpl struct {
	userRepo     repositories.UserRepository
	bannedRepo   repositories.BannedUserRepository
	jwtService   *auth.JWTService
	emailService email.EmailService
	frontendURL  string
	logger       zerolog.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo repositories.UserRepository,
	bannedRepo repositories.BannedUserRepository,
	jwtService *auth.JWTService,
	emailService email.EmailService,
	frontendURL string,
) AuthService {
	return &authServiceImpl{
		userRepo:     userRepo,
		bannedRepo:   bannedRepo,
		jwtService:   jwtService,
		emailService: emailService,
		frontendURL:  frontendURL,
		logger:       logger.New("auth_service"),
	}
}

func (s *authServiceImpl) Signup(ctx context.Context, req dto.SignupRequest) (*models.User, error) {
	// Ban check comes first: a banned student ID is rejected before the
	// request is validated any further.
	if req.StudentID != "" {
		ban, err := s.bannedRepo.FindByStudentID(ctx, req.StudentID)
		if err != nil {
			return nil, err
		}
		if ban != nil {
			return nil, apperrors.ErrStudentIDBanned
		}
	}

	switch {
	case req.Name == "":
		return nil, apperrors.NewValidationError("name", "El nombre es obligatorio")
	case req.Username == "":
		return nil, apperrors.NewValidationError("username", "El nombre de usuario es obligatorio")
	case req.Email == "":
		return nil, apperrors.NewValidationError("email", "El correo es obligatorio")
	case req.Password == "":
		return nil, apperrors.NewValidationError("password", "La contraseña es obligatoria")
	case req.StudentID == "":
		return nil, apperrors.NewValidationError("studentId", "El número de control es obligatorio")
	}

	if !validation.IsValidStudentID(req.StudentID) {
		return nil, apperrors.ErrInvalidStudentID
	}

	if !validation.MatchesInstitutionalEmail(req.StudentID, req.Email) {
		return nil, apperrors.NewValidationError("email",
			"El correo debe ser el institucional "+validation.InstitutionalEmail(req.StudentID))
	}

	if existing, err := s.userRepo.FindByStudentID(ctx, req.StudentID); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, apperrors.ErrStudentIDExists
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
		Name:      req.Name,
		Username:  req.Username,
		Email:     req.Email,
		Password:  hashed,
		StudentID: req.StudentID,
		Role:      models.RoleEgresado,
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

func (s *authServiceImpl) Login(ctx context.Context, username, password string) (*dto.AuthResponse, error) {
	if username == "" || password == "" {
		return nil, apperrors.NewValidationError("", "Usuario y contraseña son obligatorios")
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user.ID, user.Username, string(user.Role))
	if err != nil {
		return nil, err
	}

	resp := &dto.AuthResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		User:      user,
	}

	// Empresario accounts carry a first-login flag so the client can walk
	// them through company profile setup.
	if user.Role == models.RoleEmpresario {
		firstLogin := user.IsFirstLogin
		resp.IsFirstLogin = &firstLogin
	}

	return resp, nil
}

func (s *authServiceImpl) GetCurrentUser(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}
