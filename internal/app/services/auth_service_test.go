package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinculatec/backend/internal/app/models"
	"github.com/vinculatec/backend/internal/app/models/dto"
	"github.com/vinculatec/backend/internal/app/repositories"
	"github.com/vinculatec/backend/internal/pkg/apperrors"
	"github.com/vinculatec/backend/internal/pkg/auth"
)

func newTestJWT() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExpiry: time.Hour,
		TokenIssuer: "vinculatec-test",
	})
}

type authFixture struct {
	service    AuthService
	userRepo   *repositories.MemoryUserRepository
	bannedRepo *repositories.MemoryBannedUserRepository
	email      *stubEmail
}

func newAuthFixture() *authFixture {
	userRepo := repositories.NewMemoryUserRepository()
	bannedRepo := repositories.NewMemoryBannedUserRepository()
	mail := &stubEmail{}
	return &authFixture{
		service:    NewAuthService(userRepo, bannedRepo, newTestJWT(), mail, "https://vinculatec.test"),
		userRepo:   userRepo,
		bannedRepo: bannedRepo,
		email:      mail,
	}
}

func validSignup() dto.SignupRequest {
	return dto.SignupRequest{
		Name:      "Ana Gómez",
		Username:  "anagomez",
		Email:     "L20270806@tuxtla.tecnm.mx",
		Password:  "secret123",
		StudentID: "20270806",
	}
}

func TestSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an egresado account and sends the welcome email", func(t *testing.T) {
		f := newAuthFixture()

		user, err := f.service.Signup(ctx, validSignup())
		require.NoError(t, err)

		assert.NotEmpty(t, user.ID)
		assert.Equal(t, models.RoleEgresado, user.Role)
		assert.Equal(t, "20270806", user.StudentID)
		assert.NotEqual(t, "secret123", user.Password, "password must be stored hashed")
		assert.Equal(t, []string{"L20270806@tuxtla.tecnm.mx"}, f.email.sent)
	})

	t.Run("accepts the institutional email case-insensitively", func(t *testing.T) {
		f := newAuthFixture()
		req := validSignup()
		req.Email = "l20270806@TUXTLA.TECNM.MX"

		_, err := f.service.Signup(ctx, req)
		assert.NoError(t, err)
	})

	t.Run("rejects a banned student ID before any other validation", func(t *testing.T) {
		f := newAuthFixture()
		_, err := f.bannedRepo.Create(ctx, &models.BannedUser{StudentID: "20270806", Reason: "conducta"})
		require.NoError(t, err)

		// Every other field is invalid too; the ban must win.
		_, err = f.service.Signup(ctx, dto.SignupRequest{StudentID: "20270806"})
		assert.ErrorIs(t, err, apperrors.ErrStudentIDBanned)
	})

	t.Run("rejects a malformed student ID", func(t *testing.T) {
		f := newAuthFixture()
		req := validSignup()
		req.StudentID = "2027080"
		req.Email = "L2027080@tuxtla.tecnm.mx"

		_, err := f.service.Signup(ctx, req)
		assert.ErrorIs(t, err, apperrors.ErrInvalidStudentID)
	})

	t.Run("rejects an email that does not match the student ID", func(t *testing.T) {
		f := newAuthFixture()
		req := validSignup()
		req.Email = "L99999999@tuxtla.tecnm.mx"

		_, err := f.service.Signup(ctx, req)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		assert.Equal(t, "email", apperrors.Field(err))
	})

	t.Run("rejects duplicate student ID, email and username in that order", func(t *testing.T) {
		f := newAuthFixture()
		_, err := f.service.Signup(ctx, validSignup())
		require.NoError(t, err)

		dup := validSignup()
		_, err = f.service.Signup(ctx, dup)
		assert.ErrorIs(t, err, apperrors.ErrStudentIDExists)

		other := dto.SignupRequest{
			Name:      "Otro Egresado",
			Username:  "anagomez",
			Email:     "L20270807@tuxtla.tecnm.mx",
			Password:  "secret123",
			StudentID: "20270807",
		}
		_, err = f.service.Signup(ctx, other)
		assert.ErrorIs(t, err, apperrors.ErrUsernameExists)
	})

	t.Run("rejects a short password after the identity checks", func(t *testing.T) {
		f := newAuthFixture()
		req := validSignup()
		req.Password = "abc"

		_, err := f.service.Signup(ctx, req)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		assert.Equal(t, "password", apperrors.Field(err))
	})

	t.Run("requires every field", func(t *testing.T) {
		f := newAuthFixture()
		req := validSignup()
		req.Name = ""

		_, err := f.service.Signup(ctx, req)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		assert.Equal(t, "name", apperrors.Field(err))
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("returns a token for valid credentials", func(t *testing.T) {
		f := newAuthFixture()
		_, err := f.service.Signup(ctx, validSignup())
		require.NoError(t, err)

		resp, err := f.service.Login(ctx, "anagomez", "secret123")
		require.NoError(t, err)

		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "anagomez", resp.User.Username)
		assert.Nil(t, resp.IsFirstLogin, "first-login flag is empresario-only")
	})

	t.Run("rejects a wrong password and an unknown user alike", func(t *testing.T) {
		f := newAuthFixture()
		_, err := f.service.Signup(ctx, validSignup())
		require.NoError(t, err)

		_, err = f.service.Login(ctx, "anagomez", "wrong-pass")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

		_, err = f.service.Login(ctx, "nobody", "secret123")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("reports the first-login flag for empresario accounts", func(t *testing.T) {
		f := newAuthFixture()
		hashed, err := auth.HashPassword("secret123")
		require.NoError(t, err)

		_, err = f.userRepo.Create(ctx, &models.User{
			Name:         "Empresa SA",
			Username:     "empresa",
			Email:        "contacto@empresa.mx",
			Password:     hashed,
			Role:         models.RoleEmpresario,
			IsFirstLogin: true,
		})
		require.NoError(t, err)

		resp, err := f.service.Login(ctx, "empresa", "secret123")
		require.NoError(t, err)
		require.NotNil(t, resp.IsFirstLogin)
		assert.True(t, *resp.IsFirstLogin)
	})
}

func TestGetCurrentUser(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()

	created, err := f.service.Signup(ctx, validSignup())
	require.NoError(t, err)

	user, err := f.service.GetCurrentUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Username, user.Username)

	_, err = f.service.GetCurrentUser(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
