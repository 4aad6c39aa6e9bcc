package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/vinculatec/backend/internal/app/lifecycle"
	"github.com/vinculatec/backend/internal/app/models"
	"github.com/vinculatec/backend/internal/app/repositories"
	"github.com/vinculatec/backend/internal/pkg/logger"
	"github.com/vinculatec/backend/internal/pkg/mediastore"
)

// DefaultPurgeAfter is how long an expired project is retained before the
// sweeper removes it. Job postings are never purged: they stay visible as
// expired history.
const DefaultPurgeAfter = 7 * 24 * time.Hour

// CleanupStats reports what one sweep did
type CleanupStats struct {
	JobsExpired     int64
	ProjectsExpired int64
	ProjectsPurged  int64
}

// CleanupService is the retention sweeper. Each sweep expires overdue
// postings of both kinds and purges expired projects past the retention
// window, removing their media assets first.
type CleanupService interface {
	RunOnce(ctx context.Context) (CleanupStats, error)
	// Start runs a sweep immediately and then on every interval tick
	// until ctx is cancelled
	Start(ctx context.Context, interval time.Duration)
}

type cleanupServiceImpl struct {
	jobRepo       repositories.JobPostRepository
	projectRepo   repositories.ProjectPostRepository
	notifications NotificationService
	media         mediastore.Store
	purgeAfter    time.Duration
	logger        zerolog.Logger
	now           func() time.Time
}

// NewCleanupService creates a new retention sweeper. A non-positive
// purgeAfter falls back to the default retention window.
func NewCleanupService(
	jobRepo repositories.JobPostRepository,
	projectRepo repositories.ProjectPostRepository,
	notifications NotificationService,
	media mediastore.Store,
	purgeAfter time.Duration,
) CleanupService {
	if purgeAfter <= 0 {
		purgeAfter = DefaultPurgeAfter
	}
	return &cleanupServiceImpl{
		jobRepo:       jobRepo,
		projectRepo:   projectRepo,
		notifications: notifications,
		media:         media,
		purgeAfter:    purgeAfter,
		logger:        logger.New("cleanup_service"),
		now:           time.Now,
	}
}

func (s *cleanupServiceImpl) RunOnce(ctx context.Context) (CleanupStats, error) {
	var stats CleanupStats
	now := s.now()

	// Authors learn about the expiration before the transition lands, so
	// the due set is collected first. Only postings the sweeper itself
	// flips are notified; one expired earlier by a read-path check has
	// already left the active set.
	due, err := s.projectRepo.GetAll(ctx, repositories.ProjectFilter{Status: string(lifecycle.StatusActive)})
	if err != nil {
		return stats, err
	}
	for i := range due {
		if lifecycle.ShouldExpire(&due[i], now) {
			s.notifications.Emit(ctx, due[i].Author, "", models.NotificationProjectExpired, due[i].ID)
		}
	}

	stats.JobsExpired, err = s.jobRepo.ExpireDue(ctx, now)
	if err != nil {
		return stats, err
	}

	stats.ProjectsExpired, err = s.projectRepo.ExpireDue(ctx, now)
	if err != nil {
		return stats, err
	}

	threshold := now.Add(-s.purgeAfter)

	purgeable, err := s.projectRepo.FindPurgeable(ctx, threshold)
	if err != nil {
		return stats, err
	}
	for _, p := range purgeable {
		if p.Image == "" {
			continue
		}
		if err := s.media.Delete(ctx, mediastore.PublicID(p.Image)); err != nil {
			// Purge anyway; an orphaned asset is better than a
			// project that never goes away.
			s.logger.Warn().Err(err).Str("id", p.ID).Msg("failed to delete image of purged project")
		}
	}

	stats.ProjectsPurged, err = s.projectRepo.DeletePurgeable(ctx, threshold)
	if err != nil {
		return stats, err
	}

	s.logger.Info().
		Int64("jobsExpired", stats.JobsExpired).
		Int64("projectsExpired", stats.ProjectsExpired).
		Int64("projectsPurged", stats.ProjectsPurged).
		Msg("retention sweep finished")

	return stats, nil
}

func (s *cleanupServiceImpl) Start(ctx context.Context, interval time.Duration) {
	if _, err := s.RunOnce(ctx); err != nil {
		s.logger.Error().Err(err).Msg("retention sweep failed")
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("retention sweeper stopped")
			return
		case <-ticker.C:
			if _, err := s.RunOnce(ctx); err != nil {
				s.logger.Error().Err(err).Msg("retention sweep failed")
			}
		}
	}
}
