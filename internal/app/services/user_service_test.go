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
)

type userFixture struct {
	service  UserService
	userRepo *repositories.MemoryUserRepository
	media    *stubMedia
}

func newUserFixture() *userFixture {
	userRepo := repositories.NewMemoryUserRepository()
	media := &stubMedia{}
	return &userFixture{
		service:  NewUserService(userRepo, media),
		userRepo: userRepo,
		media:    media,
	}
}

func (f *userFixture) addUser(t *testing.T, user models.User) *models.User {
	t.Helper()
	created, err := f.userRepo.Create(context.Background(), &user)
	require.NoError(t, err)
	return created
}

func TestGetByUsername(t *testing.T) {
	ctx := context.Background()
	f := newUserFixture()

	f.addUser(t, models.User{Name: "Ana", Username: "ana", Email: "a@b.mx", Role: models.RoleEgresado})

	user, err := f.service.GetByUsername(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Name)

	_, err = f.service.GetByUsername(ctx, "nadie")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("applies partial text edits", func(t *testing.T) {
		f := newUserFixture()
		user := f.addUser(t, models.User{Name: "Ana", Username: "ana", Email: "a@b.mx", Role: models.RoleEgresado})

		headline := "Ingeniera en sistemas"
		skills := []string{"Go", "MongoDB"}
		updated, err := f.service.UpdateProfile(ctx, user.ID, dto.UpdateProfileRequest{
			Headline: &headline,
			Skills:   &skills,
		})
		require.NoError(t, err)

		assert.Equal(t, "Ingeniera en sistemas", updated.Headline)
		assert.Equal(t, skills, updated.Skills)
		assert.Equal(t, "Ana", updated.Name, "untouched fields survive")
	})

	t.Run("uploads data URI images and removes the replaced asset", func(t *testing.T) {
		f := newUserFixture()
		user := f.addUser(t, models.User{
			Name:           "Ana",
			Username:       "ana",
			Email:          "a@b.mx",
			Role:           models.RoleEgresado,
			ProfilePicture: "https://media.test/assets/old-avatar.png",
		})

		img := "data:image/png;base64,aGVsbG8="
		updated, err := f.service.UpdateProfile(ctx, user.ID, dto.UpdateProfileRequest{ProfilePicture: &img})
		require.NoError(t, err)

		assert.Equal(t, "https://media.test/assets/img-1.png", updated.ProfilePicture)
		assert.Equal(t, []string{"old-avatar"}, f.media.deleted())
	})

	t.Run("completing company info clears the first-login flag", func(t *testing.T) {
		f := newUserFixture()
		user := f.addUser(t, models.User{
			Name:         "Empresa SA",
			Username:     "empresa",
			Email:        "c@e.mx",
			Role:         models.RoleEmpresario,
			IsFirstLogin: true,
		})

		updated, err := f.service.UpdateProfile(ctx, user.ID, dto.UpdateProfileRequest{
			CompanyInfo: &models.CompanyInfo{CompanyName: "Empresa SA", Industry: "Software"},
		})
		require.NoError(t, err)

		assert.False(t, updated.IsFirstLogin)
		require.NotNil(t, updated.CompanyInfo)
		assert.Equal(t, "Empresa SA", updated.CompanyInfo.CompanyName)
	})

	t.Run("rejects company info on non-empresario accounts", func(t *testing.T) {
		f := newUserFixture()
		user := f.addUser(t, models.User{Name: "Ana", Username: "ana", Email: "a@b.mx", Role: models.RoleEgresado})

		_, err := f.service.UpdateProfile(ctx, user.ID, dto.UpdateProfileRequest{
			CompanyInfo: &models.CompanyInfo{CompanyName: "X"},
		})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
}
