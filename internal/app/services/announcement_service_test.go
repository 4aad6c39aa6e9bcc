package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinculatec/backend/internal/app/repositories"
	"github.com/vinculatec/backend/internal/pkg/apperrors"
)

func TestAnnouncements(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryAnnouncementRepository()
	media := &stubMedia{}
	svc := NewAnnouncementService(repo, media)

	t.Run("requires content", func(t *testing.T) {
		_, err := svc.Create(ctx, "admin-1", "", "")
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("creates with an uploaded image", func(t *testing.T) {
		a, err := svc.Create(ctx, "admin-1", "Feria del empleo el 15 de abril", "data:image/png;base64,aGVsbG8=")
		require.NoError(t, err)

		assert.Equal(t, "admin-1", a.Author)
		assert.Equal(t, "https://media.test/assets/img-1.png", a.Image)

		list, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("deleting removes the media asset too", func(t *testing.T) {
		list, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)

		require.NoError(t, svc.Delete(ctx, list[0].ID))
		assert.Equal(t, []string{"img-1"}, media.deleted())

		err = svc.Delete(ctx, list[0].ID)
		assert.ErrorIs(t, err, apperrors.ErrAnnouncementNotFound)
	})
}
