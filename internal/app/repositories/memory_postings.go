package repositories

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vinculatec/backend/internal/app/lifecycle"
	"github.com/vinculatec/backend/internal/app/models"
	"github.com/vinculatec/backend/internal/pkg/apperrors"
)

// MemoryJobPostRepository implements JobPostRepository in memory
type MemoryJobPostRepository struct {
	mu    sync.RWMutex
	posts map[string]models.JobPost
}

// NewMemoryJobPostRepository creates an empty MemoryJobPostRepository
func NewMemoryJobPostRepository() *MemoryJobPostRepository {
	return &MemoryJobPostRepository{posts: make(map[string]models.JobPost)}
}

// Create inserts a new job posting
func (r *MemoryJobPostRepository) Create(ctx context.Context, post *models.JobPost) (*models.JobPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	post.CreatedAt = now
	post.UpdatedAt = now
	r.posts[post.ID] = *post
	return post, nil
}

// FindByID returns the job posting with the given id
func (r *MemoryJobPostRepository) FindByID(ctx context.Context, id string) (*models.JobPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	post, ok := r.posts[id]
	if !ok {
		return nil, apperrors.ErrJobPostNotFound
	}
	return &post, nil
}

// GetAll returns job postings newest-first, optionally filtered by status
func (r *MemoryJobPostRepository) GetAll(ctx context.Context, status string) ([]models.JobPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var posts []models.JobPost
	for _, p := range r.posts {
		if status != "" && string(p.Status) != status {
			continue
		}
		posts = append(posts, p)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].CreatedAt.After(posts[j].CreatedAt) })
	return posts, nil
}

// Update replaces the stored job posting
func (r *MemoryJobPostRepository) Update(ctx context.Context, post *models.JobPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[post.ID]; !ok {
		return apperrors.ErrJobPostNotFound
	}
	post.UpdatedAt = time.Now()
	r.posts[post.ID] = *post
	return nil
}

// Delete removes a job posting
func (r *MemoryJobPostRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[id]; !ok {
		return apperrors.ErrJobPostNotFound
	}
	delete(r.posts, id)
	return nil
}

// ExpireDue transitions active postings whose deadline has passed
func (r *MemoryJobPostRepository) ExpireDue(ctx context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	for id, p := range r.posts {
		if lifecycle.ShouldExpire(&p, now) {
			p.Status = lifecycle.StatusExpired
			p.UpdatedAt = now
			r.posts[id] = p
			count++
		}
	}
	return count, nil
}

// ExpireByID conditionally expires one posting and reports whether it fired
func (r *MemoryJobPostRepository) ExpireByID(ctx context.Context, id string, now time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.posts[id]
	if !ok || !lifecycle.ShouldExpire(&p, now) {
		return false, nil
	}
	p.Status = lifecycle.StatusExpired
	p.UpdatedAt = now
	r.posts[id] = p
	return true, nil
}

// MemoryProjectPostRepository implements ProjectPostRepository in memory
type MemoryProjectPostRepository struct {
	mu    sync.RWMutex
	posts map[string]models.ProjectPost
}

// NewMemoryProjectPostRepository creates an empty MemoryProjectPostRepository
func NewMemoryProjectPostRepository() *MemoryProjectPostRepository {
	return &MemoryProjectPostRepository{posts: make(map[string]models.ProjectPost)}
}

func cloneProject(p models.ProjectPost) models.ProjectPost {
	p.Likes = slices.Clone(p.Likes)
	p.Comments = slices.Clone(p.Comments)
	p.InterestedUsers = slices.Clone(p.InterestedUsers)
	return p
}

// Create inserts a new project posting
func (r *MemoryProjectPostRepository) Create(ctx context.Context, post *models.ProjectPost) (*models.ProjectPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	post.CreatedAt = now
	post.UpdatedAt = now
	if post.Likes == nil {
		post.Likes = []string{}
	}
	if post.Comments == nil {
		post.Comments = []models.ProjectComment{}
	}
	if post.InterestedUsers == nil {
		post.InterestedUsers = []models.ProjectInterest{}
	}
	r.posts[post.ID] = cloneProject(*post)
	return post, nil
}

// FindByID returns the project posting with the given id
func (r *MemoryProjectPostRepository) FindByID(ctx context.Context, id string) (*models.ProjectPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	post, ok := r.posts[id]
	if !ok {
		return nil, apperrors.ErrProjectNotFound
	}
	clone := cloneProject(post)
	return &clone, nil
}

// GetAll returns project postings newest-first matching the filter
func (r *MemoryProjectPostRepository) GetAll(ctx context.Context, filter ProjectFilter) ([]models.ProjectPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var posts []models.ProjectPost
	for _, p := range r.posts {
		if filter.Status != "" && string(p.Status) != filter.Status {
			continue
		}
		if filter.Author != "" && p.Author != filter.Author {
			continue
		}
		if filter.InterestedUser != "" && !p.IsInterested(filter.InterestedUser) {
			continue
		}
		posts = append(posts, cloneProject(p))
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].CreatedAt.After(posts[j].CreatedAt) })
	return posts, nil
}

// Update replaces the stored project posting
func (r *MemoryProjectPostRepository) Update(ctx context.Context, post *models.ProjectPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[post.ID]; !ok {
		return apperrors.ErrProjectNotFound
	}
	post.UpdatedAt = time.Now()
	r.posts[post.ID] = cloneProject(*post)
	return nil
}

// Delete removes a project posting
func (r *MemoryProjectPostRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[id]; !ok {
		return apperrors.ErrProjectNotFound
	}
	delete(r.posts, id)
	return nil
}

// ExpireDue transitions active postings past their expiration date
func (r *MemoryProjectPostRepository) ExpireDue(ctx context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	for id, p := range r.posts {
		if lifecycle.ShouldExpire(&p, now) {
			p.Status = lifecycle.StatusExpired
			p.UpdatedAt = now
			r.posts[id] = p
			count++
		}
	}
	return count, nil
}

// ExpireByID conditionally expires one posting and reports whether it fired
func (r *MemoryProjectPostRepository) ExpireByID(ctx context.Context, id string, now time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.posts[id]
	if !ok || !lifecycle.ShouldExpire(&p, now) {
		return false, nil
	}
	p.Status = lifecycle.StatusExpired
	p.UpdatedAt = now
	r.posts[id] = p
	return true, nil
}

func isPurgeable(p models.ProjectPost, threshold time.Time) bool {
	return p.Status == lifecycle.StatusExpired && p.ExpirationDate.Before(threshold)
}

// FindPurgeable returns expired postings older than threshold
func (r *MemoryProjectPostRepository) FindPurgeable(ctx context.Context, threshold time.Time) ([]models.ProjectPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var posts []models.ProjectPost
	for _, p := range r.posts {
		if isPurgeable(p, threshold) {
			posts = append(posts, cloneProject(p))
		}
	}
	return posts, nil
}

// DeletePurgeable removes expired postings older than threshold
func (r *MemoryProjectPostRepository) DeletePurgeable(ctx context.Context, threshold time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	for id, p := range r.posts {
		if isPurgeable(p, threshold) {
			delete(r.posts, id)
			count++
		}
	}
	return count, nil
}
