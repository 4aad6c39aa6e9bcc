package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinculatec/backend/internal/app/lifecycle"
	"github.com/vinculatec/backend/internal/app/models"
)

func TestJobPostExpireByID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryJobPostRepository()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	deadline := now.Add(-time.Hour)

	overdue, err := repo.Create(ctx, &models.JobPost{
		Author:              "admin-1",
		Title:               "Vacante vencida",
		Status:              lifecycle.StatusActive,
		ApplicationDeadline: &deadline,
	})
	require.NoError(t, err)

	closed, err := repo.Create(ctx, &models.JobPost{
		Author:              "admin-1",
		Title:               "Vacante cerrada",
		Status:              lifecycle.StatusClosed,
		ApplicationDeadline: &deadline,
	})
	require.NoError(t, err)

	fired, err := repo.ExpireByID(ctx, overdue.ID, now)
	require.NoError(t, err)
	assert.True(t, fired)

	stored, err := repo.FindByID(ctx, overdue.ID)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StatusExpired, stored.Status)

	// Already expired, so a second call is a no-op.
	fired, err = repo.ExpireByID(ctx, overdue.ID, now)
	require.NoError(t, err)
	assert.False(t, fired)

	// The transition is conditional on active: a posting the author closed
	// is never flipped, even with a past deadline.
	fired, err = repo.ExpireByID(ctx, closed.ID, now)
	require.NoError(t, err)
	assert.False(t, fired)

	stored, err = repo.FindByID(ctx, closed.ID)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StatusClosed, stored.Status)

	fired, err = repo.ExpireByID(ctx, "missing", now)
	require.NoError(t, err)
	assert.False(t, fired)
}

func TestProjectPostExpireByID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProjectPostRepository()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	overdue, err := repo.Create(ctx, &models.ProjectPost{
		Author:         "author-1",
		Title:          "Proyecto vencido",
		Content:        "x",
		Status:         lifecycle.StatusActive,
		ExpirationDate: now.Add(-time.Hour),
	})
	require.NoError(t, err)

	completed, err := repo.Create(ctx, &models.ProjectPost{
		Author:         "author-1",
		Title:          "Proyecto concluido",
		Content:        "x",
		Status:         lifecycle.StatusCompleted,
		ExpirationDate: now.Add(-time.Hour),
	})
	require.NoError(t, err)

	fired, err := repo.ExpireByID(ctx, overdue.ID, now)
	require.NoError(t, err)
	assert.True(t, fired)

	stored, err := repo.FindByID(ctx, overdue.ID)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StatusExpired, stored.Status)

	// A project the author completed keeps its state; only active
	// postings expire.
	fired, err = repo.ExpireByID(ctx, completed.ID, now)
	require.NoError(t, err)
	assert.False(t, fired)

	stored, err = repo.FindByID(ctx, completed.ID)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StatusCompleted, stored.Status)
}
