package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinculatec/backend/internal/app/lifecycle"
	"github.com/vinculatec/backend/internal/app/models"
	"github.com/vinculatec/backend/internal/app/models/dto"
	"github.com/vinculatec/backend/internal/app/repositories"
	"github.com/vinculatec/backend/internal/pkg/apperrors"
)

type jobFixture struct {
	service JobPostService
	repo    *repositories.MemoryJobPostRepository
	clock   *testClock
}

func newJobFixture(t *testing.T) *jobFixture {
	t.Helper()

	repo := repositories.NewMemoryJobPostRepository()
	clock := newTestClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	service := NewJobPostService(repo)
	service.(*jobPostServiceImpl).now = clock.Now

	return &jobFixture{service: service, repo: repo, clock: clock}
}

func validJobPost() dto.CreateJobPostRequest {
	return dto.CreateJobPostRequest{
		Title:       "Desarrollador Backend",
		Company:     "Grupo Karims",
		Location:    "Tuxtla Gutiérrez",
		Description: "Desarrollo de servicios internos",
		JobType:     "full-time",
	}
}

func TestJobPostCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an active posting", func(t *testing.T) {
		f := newJobFixture(t)

		post, err := f.service.Create(ctx, "admin-1", validJobPost())
		require.NoError(t, err)

		assert.Equal(t, lifecycle.StatusActive, post.Status)
		assert.Equal(t, models.JobTypeFullTime, post.JobType)
		assert.Nil(t, post.ApplicationDeadline)
	})

	t.Run("defaults the job type when omitted", func(t *testing.T) {
		f := newJobFixture(t)
		req := validJobPost()
		req.JobType = ""

		post, err := f.service.Create(ctx, "admin-1", req)
		require.NoError(t, err)
		assert.Equal(t, models.JobTypeFullTime, post.JobType)
	})

	t.Run("rejects an unknown job type", func(t *testing.T) {
		f := newJobFixture(t)
		req := validJobPost()
		req.JobType = "freelance"

		_, err := f.service.Create(ctx, "admin-1", req)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("rejects a past application deadline", func(t *testing.T) {
		f := newJobFixture(t)
		req := validJobPost()
		past := f.clock.Now().Add(-time.Hour)
		req.ApplicationDeadline = &past

		_, err := f.service.Create(ctx, "admin-1", req)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		assert.Equal(t, "applicationDeadline", apperrors.Field(err))
	})

	t.Run("requires the core fields", func(t *testing.T) {
		f := newJobFixture(t)
		req := validJobPost()
		req.Company = ""

		_, err := f.service.Create(ctx, "admin-1", req)
		assert.Equal(t, "company", apperrors.Field(err))
	})
}

func TestJobPostDeadlineExpiration(t *testing.T) {
	ctx := context.Background()
	f := newJobFixture(t)

	req := validJobPost()
	deadline := f.clock.Now().Add(48 * time.Hour)
	req.ApplicationDeadline = &deadline

	withDeadline, err := f.service.Create(ctx, "admin-1", req)
	require.NoError(t, err)

	open, err := f.service.Create(ctx, "admin-1", validJobPost())
	require.NoError(t, err)

	f.clock.Advance(72 * time.Hour)

	current, err := f.service.GetByID(ctx, withDeadline.ID)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StatusExpired, current.Status)

	// A posting without a deadline never expires on its own.
	current, err = f.service.GetByID(ctx, open.ID)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StatusActive, current.Status)

	expired, err := f.service.List(ctx, "expired")
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, withDeadline.ID, expired[0].ID)

	_, err = f.service.List(ctx, "completed")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestJobPostAuthorOnlyMutations(t *testing.T) {
	ctx := context.Background()
	f := newJobFixture(t)

	post, err := f.service.Create(ctx, "admin-1", validJobPost())
	require.NoError(t, err)

	title := "Otro puesto"

	_, err = f.service.Update(ctx, post.ID, "admin-2", dto.UpdateJobPostRequest{Title: &title})
	assert.ErrorIs(t, err, apperrors.ErrNotAuthor)

	_, err = f.service.ChangeStatus(ctx, post.ID, "admin-2", "closed")
	assert.ErrorIs(t, err, apperrors.ErrNotAuthor)

	err = f.service.Delete(ctx, post.ID, "admin-2")
	assert.ErrorIs(t, err, apperrors.ErrNotAuthor)

	// A missing posting reads as not found, not as a permission problem.
	_, err = f.service.Update(ctx, "missing", "admin-2", dto.UpdateJobPostRequest{Title: &title})
	assert.ErrorIs(t, err, apperrors.ErrJobPostNotFound)

	updated, err := f.service.Update(ctx, post.ID, "admin-1", dto.UpdateJobPostRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Otro puesto", updated.Title)
}

func TestJobPostChangeStatus(t *testing.T) {
	ctx := context.Background()
	f := newJobFixture(t)

	post, err := f.service.Create(ctx, "admin-1", validJobPost())
	require.NoError(t, err)

	_, err = f.service.ChangeStatus(ctx, post.ID, "admin-1", "completed")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	closed, err := f.service.ChangeStatus(ctx, post.ID, "admin-1", "closed")
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StatusClosed, closed.Status)

	// Closed is terminal: the only way out is deletion.
	_, err = f.service.ChangeStatus(ctx, post.ID, "admin-1", "active")
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)

	title := "Otro puesto"
	_, err = f.service.Update(ctx, post.ID, "admin-1", dto.UpdateJobPostRequest{Title: &title})
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)
}

func TestJobPostExpiredStaysExpired(t *testing.T) {
	ctx := context.Background()
	f := newJobFixture(t)

	req := validJobPost()
	deadline := f.clock.Now().Add(time.Hour)
	req.ApplicationDeadline = &deadline

	post, err := f.service.Create(ctx, "admin-1", req)
	require.NoError(t, err)

	f.clock.Advance(2 * time.Hour)

	current, err := f.service.GetByID(ctx, post.ID)
	require.NoError(t, err)
	require.Equal(t, lifecycle.StatusExpired, current.Status)

	// Not even the author can revive an expired posting.
	_, err = f.service.ChangeStatus(ctx, post.ID, "admin-1", "active")
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)

	status := "active"
	_, err = f.service.Update(ctx, post.ID, "admin-1", dto.UpdateJobPostRequest{Status: &status})
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)

	stored, err := f.repo.FindByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StatusExpired, stored.Status)

	// Deletion remains open to the author.
	require.NoError(t, f.service.Delete(ctx, post.ID, "admin-1"))
}

func TestJobPostOverdueMutationExpiresFirst(t *testing.T) {
	ctx := context.Background()
	f := newJobFixture(t)

	req := validJobPost()
	deadline := f.clock.Now().Add(time.Hour)
	req.ApplicationDeadline = &deadline

	post, err := f.service.Create(ctx, "admin-1", req)
	require.NoError(t, err)

	// The mutation path applies the overdue transition itself, so an
	// author writing before any read still hits the terminal guard.
	f.clock.Advance(2 * time.Hour)
	_, err = f.service.ChangeStatus(ctx, post.ID, "admin-1", "active")
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)

	stored, err := f.repo.FindByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StatusExpired, stored.Status)
}

func TestJobPostDelete(t *testing.T) {
	ctx := context.Background()
	f := newJobFixture(t)

	post, err := f.service.Create(ctx, "admin-1", validJobPost())
	require.NoError(t, err)

	require.NoError(t, f.service.Delete(ctx, post.ID, "admin-1"))

	_, err = f.service.GetByID(ctx, post.ID)
	assert.ErrorIs(t, err, apperrors.ErrJobPostNotFound)
}
