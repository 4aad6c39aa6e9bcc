package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinculatec/backend/internal/app/models"
	"github.com/vinculatec/backend/internal/app/repositories"
	"github.com/vinculatec/backend/internal/pkg/apperrors"
)

func TestNotificationEmit(t *testing.T) {
	ctx := context.Background()

	t.Run("persists a notification for another account", func(t *testing.T) {
		repo := repositories.NewMemoryNotificationRepository()
		svc := NewNotificationService(repo)

		svc.Emit(ctx, "recipient-1", "actor-1", models.NotificationProjectLike, "project-1")

		inbox, err := svc.GetForUser(ctx, "recipient-1")
		require.NoError(t, err)
		require.Len(t, inbox, 1)
		assert.Equal(t, models.NotificationProjectLike, inbox[0].Type)
		assert.Equal(t, "actor-1", inbox[0].RelatedUser)
		assert.Equal(t, "project-1", inbox[0].RelatedProject)
		assert.False(t, inbox[0].Read)
	})

	t.Run("drops self-notifications", func(t *testing.T) {
		repo := repositories.NewMemoryNotificationRepository()
		svc := NewNotificationService(repo)

		svc.Emit(ctx, "actor-1", "actor-1", models.NotificationProjectComment, "project-1")

		inbox, err := svc.GetForUser(ctx, "actor-1")
		require.NoError(t, err)
		assert.Empty(t, inbox)
	})

	t.Run("drops notifications without a recipient", func(t *testing.T) {
		repo := repositories.NewMemoryNotificationRepository()
		svc := NewNotificationService(repo)

		svc.Emit(ctx, "", "actor-1", models.NotificationProjectComment, "project-1")

		inbox, err := svc.GetForUser(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, inbox)
	})
}

func TestNotificationInbox(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryNotificationRepository()
	svc := NewNotificationService(repo)

	svc.Emit(ctx, "user-1", "actor-1", models.NotificationProjectLike, "project-1")
	svc.Emit(ctx, "user-1", "actor-2", models.NotificationProjectComment, "project-1")
	svc.Emit(ctx, "user-2", "actor-1", models.NotificationProjectInterest, "project-2")

	inbox, err := svc.GetForUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, inbox, 2)

	t.Run("marks one notification read for its owner only", func(t *testing.T) {
		err := svc.MarkRead(ctx, inbox[0].ID, "user-2")
		assert.ErrorIs(t, err, apperrors.ErrNotificationNotFound)

		require.NoError(t, svc.MarkRead(ctx, inbox[0].ID, "user-1"))

		refreshed, err := svc.GetForUser(ctx, "user-1")
		require.NoError(t, err)
		read := 0
		for _, n := range refreshed {
			if n.Read {
				read++
			}
		}
		assert.Equal(t, 1, read)
	})

	t.Run("marks everything read at once", func(t *testing.T) {
		require.NoError(t, svc.MarkAllRead(ctx, "user-1"))

		refreshed, err := svc.GetForUser(ctx, "user-1")
		require.NoError(t, err)
		for _, n := range refreshed {
			assert.True(t, n.Read)
		}

		// Other inboxes are untouched.
		others, err := svc.GetForUser(ctx, "user-2")
		require.NoError(t, err)
		require.Len(t, others, 1)
		assert.False(t, others[0].Read)
	})

	t.Run("deletes only for the owner", func(t *testing.T) {
		err := svc.Delete(ctx, inbox[0].ID, "user-2")
		assert.ErrorIs(t, err, apperrors.ErrNotificationNotFound)

		require.NoError(t, svc.Delete(ctx, inbox[0].ID, "user-1"))

		refreshed, err := svc.GetForUser(ctx, "user-1")
		require.NoError(t, err)
		assert.Len(t, refreshed, 1)
	})
}
