package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinculatec/backend/internal/app/models"
	"github.com/vinculatec/backend/internal/app/models/dto"
	"github.com/vinculatec/backend/internal/app/repositories"
	"github.com/vinculatec/backend/internal/pkg/apperrors"
	"github.com/vinculatec/backend/internal/pkg/auth"
)

type adminFixture struct {
	service    AdminService
	authSvc    AuthService
	userRepo   *repositories.MemoryUserRepository
	bannedRepo *repositories.MemoryBannedUserRepository
}

func newAdminFixture() *adminFixture {
	userRepo := repositories.NewMemoryUserRepository()
	bannedRepo := repositories.NewMemoryBannedUserRepository()
	mail := &stubEmail{}
	return &adminFixture{
		service:    NewAdminService(userRepo, bannedRepo, mail, "https://vinculatec.test"),
		authSvc:    NewAuthService(userRepo, bannedRepo, newTestJWT(), mail, "https://vinculatec.test"),
		userRepo:   userRepo,
		bannedRepo: bannedRepo,
	}
}

func TestAdminCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an empresario without a student ID", func(t *testing.T) {
		f := newAdminFixture()

		user, err := f.service.CreateUser(ctx, dto.CreateUserRequest{
			Name:     "Empresa SA",
			Username: "empresa",
			Email:    "contacto@empresa.mx",
			Password: "secret123",
			Role:     "empresario",
		})
		require.NoError(t, err)

		assert.Equal(t, models.RoleEmpresario, user.Role)
		assert.Empty(t, user.StudentID)
		assert.True(t, user.IsFirstLogin)
	})

	t.Run("rejects an unknown role", func(t *testing.T) {
		f := newAdminFixture()

		_, err := f.service.CreateUser(ctx, dto.CreateUserRequest{
			Name:     "X",
			Username: "x",
			Email:    "x@y.mx",
			Password: "secret123",
			Role:     "superuser",
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidRole)
	})

	t.Run("requires a student ID and matching email for egresados", func(t *testing.T) {
		f := newAdminFixture()

		_, err := f.service.CreateUser(ctx, dto.CreateUserRequest{
			Name:     "Ana",
			Username: "ana",
			Email:    "L20270806@tuxtla.tecnm.mx",
			Password: "secret123",
			Role:     "egresado",
		})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		assert.Equal(t, "studentId", apperrors.Field(err))

		_, err = f.service.CreateUser(ctx, dto.CreateUserRequest{
			Name:      "Ana",
			Username:  "ana",
			Email:     "ana@gmail.com",
			Password:  "secret123",
			Role:      "egresado",
			StudentID: "20270806",
		})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		assert.Equal(t, "email", apperrors.Field(err))
	})

	t.Run("refuses an egresado whose student ID is in the ban ledger", func(t *testing.T) {
		f := newAdminFixture()
		_, err := f.bannedRepo.Create(ctx, &models.BannedUser{StudentID: "20270806"})
		require.NoError(t, err)

		_, err = f.service.CreateUser(ctx, dto.CreateUserRequest{
			Name:      "Ana",
			Username:  "ana",
			Email:     "L20270806@tuxtla.tecnm.mx",
			Password:  "secret123",
			Role:      "egresado",
			StudentID: "20270806",
		})
		assert.ErrorIs(t, err, apperrors.ErrStudentIDBanned)
	})
}

func TestBanUnbanFlow(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture()

	egresado, err := f.authSvc.Signup(ctx, validSignup())
	require.NoError(t, err)

	t.Run("banning records the ledger entry and deletes the account", func(t *testing.T) {
		ban, err := f.service.BanUser(ctx, egresado.ID, "conducta inapropiada", "admin-1")
		require.NoError(t, err)

		assert.Equal(t, "20270806", ban.StudentID)
		assert.Equal(t, "conducta inapropiada", ban.Reason)
		assert.Equal(t, "admin-1", ban.BannedBy)
		assert.False(t, ban.BannedAt.IsZero())

		_, err = f.userRepo.FindByID(ctx, egresado.ID)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

		bans, err := f.service.GetBannedUsers(ctx)
		require.NoError(t, err)
		assert.Len(t, bans, 1)
	})

	t.Run("the ledger blocks re-registration of the banned student ID", func(t *testing.T) {
		_, err := f.authSvc.Signup(ctx, validSignup())
		assert.ErrorIs(t, err, apperrors.ErrStudentIDBanned)
	})

	t.Run("unbanning reopens registration", func(t *testing.T) {
		require.NoError(t, f.service.UnbanUser(ctx, "20270806"))

		_, err := f.authSvc.Signup(ctx, validSignup())
		assert.NoError(t, err)
	})

	t.Run("unbanning an unknown student ID fails", func(t *testing.T) {
		err := f.service.UnbanUser(ctx, "00000000")
		assert.ErrorIs(t, err, apperrors.ErrBanNotFound)
	})
}

func TestBanUserRejectsNonEgresado(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture()

	empresario, err := f.service.CreateUser(ctx, dto.CreateUserRequest{
		Name:     "Empresa SA",
		Username: "empresa",
		Email:    "contacto@empresa.mx",
		Password: "secret123",
		Role:     "empresario",
	})
	require.NoError(t, err)

	_, err = f.service.BanUser(ctx, empresario.ID, "spam", "admin-1")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	// The account must survive a rejected ban.
	_, err = f.userRepo.FindByID(ctx, empresario.ID)
	assert.NoError(t, err)
}

func TestUpdateRole(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture()

	user, err := f.authSvc.Signup(ctx, validSignup())
	require.NoError(t, err)

	updated, err := f.service.UpdateRole(ctx, user.ID, "administrador")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdministrador, updated.Role)

	_, err = f.service.UpdateRole(ctx, user.ID, "rector")
	assert.ErrorIs(t, err, apperrors.ErrInvalidRole)

	_, err = f.service.UpdateRole(ctx, "missing", "egresado")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestResetPassword(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture()

	user, err := f.authSvc.Signup(ctx, validSignup())
	require.NoError(t, err)

	require.NoError(t, f.service.ResetPassword(ctx, user.ID, "nuevaclave"))

	stored, err := f.userRepo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(stored.Password, "nuevaclave"))

	err = f.service.ResetPassword(ctx, user.ID, "abc")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture()

	user, err := f.authSvc.Signup(ctx, validSignup())
	require.NoError(t, err)

	require.NoError(t, f.service.DeleteUser(ctx, user.ID))

	// Plain deletion leaves no ledger entry, so the ID can register again.
	bans, err := f.service.GetBannedUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, bans)

	_, err = f.authSvc.Signup(ctx, validSignup())
	assert.NoError(t, err)
}
