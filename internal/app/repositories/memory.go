package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vinculatec/backend/internal/app/models"
	"github.com/vinculatec/backend/internal/pkg/apperrors"
)

// In-memory repository implementations. They back the service tests and
// small deployments without a MongoDB instance; the mongo implementations
// are the production path.

// MemoryUserRepository implements UserRepository in memory
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

// NewMemoryUserRepository creates an empty MemoryUserRepository
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]models.User)}
}

// Create inserts a new account, enforcing the same uniqueness the mongo
// indexes do
func (r *MemoryUserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return nil, apperrors.ErrConflict
		}
		if user.StudentID != "" && existing.StudentID == user.StudentID {
			return nil, apperrors.ErrConflict
		}
	}

	now := time.Now()
	user.ID = uuid.NewString()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users[user.ID] = *user
	return user, nil
}

// FindByID returns the account with the given id
func (r *MemoryUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return &user, nil
}

func (r *MemoryUserRepository) findOne(match func(models.User) bool) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if match(user) {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

// FindByUsername returns the account with the given username, nil if absent
func (r *MemoryUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.findOne(func(u models.User) bool { return u.Username == username })
}

// FindByEmail returns the account with the given email, nil if absent
func (r *MemoryUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(func(u models.User) bool { return u.Email == email })
}

// FindByStudentID returns the account with the given student ID, nil if absent
func (r *MemoryUserRepository) FindByStudentID(ctx context.Context, studentID string) (*models.User, error) {
	if studentID == "" {
		return nil, nil
	}
	return r.findOne(func(u models.User) bool { return u.StudentID == studentID })
}

// GetAll returns every account, newest first
func (r *MemoryUserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.After(users[j].CreatedAt) })
	return users, nil
}

// Update replaces the stored account
func (r *MemoryUserRepository) Update(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return apperrors.ErrUserNotFound
	}
	user.UpdatedAt = time.Now()
	r.users[user.ID] = *user
	return nil
}

// Delete removes an account
func (r *MemoryUserRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

// MemoryBannedUserRepository implements BannedUserRepository in memory
type MemoryBannedUserRepository struct {
	mu   sync.RWMutex
	bans map[string]models.BannedUser // keyed by studentId
}

// NewMemoryBannedUserRepository creates an empty MemoryBannedUserRepository
func NewMemoryBannedUserRepository() *MemoryBannedUserRepository {
	return &MemoryBannedUserRepository{bans: make(map[string]models.BannedUser)}
}

// Create appends a ban ledger entry
func (r *MemoryBannedUserRepository) Create(ctx context.Context, ban *models.BannedUser) (*models.BannedUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bans[ban.StudentID]; ok {
		return nil, apperrors.ErrAlreadyBanned
	}

	ban.ID = uuid.NewString()
	if ban.BannedAt.IsZero() {
		ban.BannedAt = time.Now()
	}
	r.bans[ban.StudentID] = *ban
	return ban, nil
}

// FindByStudentID returns the ban record for a student ID, nil if absent
func (r *MemoryBannedUserRepository) FindByStudentID(ctx context.Context, studentID string) (*models.BannedUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ban, ok := r.bans[studentID]
	if !ok {
		return nil, nil
	}
	return &ban, nil
}

// GetAll returns every ban record, newest first
func (r *MemoryBannedUserRepository) GetAll(ctx context.Context) ([]models.BannedUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bans := make([]models.BannedUser, 0, len(r.bans))
	for _, b := range r.bans {
		bans = append(bans, b)
	}
	sort.Slice(bans, func(i, j int) bool { return bans[i].BannedAt.After(bans[j].BannedAt) })
	return bans, nil
}

// DeleteByStudentID removes a ban record (unban)
func (r *MemoryBannedUserRepository) DeleteByStudentID(ctx context.Context, studentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bans[studentID]; !ok {
		return apperrors.ErrBanNotFound
	}
	delete(r.bans, studentID)
	return nil
}

// MemoryNotificationRepository implements NotificationRepository in memory
type MemoryNotificationRepository struct {
	mu            sync.RWMutex
	notifications map[string]models.Notification
}

// NewMemoryNotificationRepository creates an empty MemoryNotificationRepository
func NewMemoryNotificationRepository() *MemoryNotificationRepository {
	return &MemoryNotificationRepository{notifications: make(map[string]models.Notification)}
}

// Create inserts a notification record
func (r *MemoryNotificationRepository) Create(ctx context.Context, n *models.Notification) (*models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n.ID = uuid.NewString()
	n.CreatedAt = time.Now()
	r.notifications[n.ID] = *n
	return n, nil
}

// GetByRecipient returns a user's notifications newest-first
func (r *MemoryNotificationRepository) GetByRecipient(ctx context.Context, userID string) ([]models.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []models.Notification
	for _, n := range r.notifications {
		if n.Recipient == userID {
			result = append(result, n)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

// MarkRead flags one of the user's notifications as read
func (r *MemoryNotificationRepository) MarkRead(ctx context.Context, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notifications[id]
	if !ok || n.Recipient != userID {
		return apperrors.ErrNotificationNotFound
	}
	n.Read = true
	r.notifications[id] = n
	return nil
}

// MarkAllRead flags all of the user's notifications as read
func (r *MemoryNotificationRepository) MarkAllRead(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, n := range r.notifications {
		if n.Recipient == userID && !n.Read {
			n.Read = true
			r.notifications[id] = n
		}
	}
	return nil
}

// Delete removes one of the user's notifications
func (r *MemoryNotificationRepository) Delete(ctx context.Context, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notifications[id]
	if !ok || n.Recipient != userID {
		return apperrors.ErrNotificationNotFound
	}
	delete(r.notifications, id)
	return nil
}

// MemoryAnnouncementRepository implements AnnouncementRepository in memory
type MemoryAnnouncementRepository struct {
	mu            sync.RWMutex
	announcements map[string]models.Announcement
}

// NewMemoryAnnouncementRepository creates an empty MemoryAnnouncementRepository
func NewMemoryAnnouncementRepository() *MemoryAnnouncementRepository {
	return &MemoryAnnouncementRepository{announcements: make(map[string]models.Announcement)}
}

// Create inserts an announcement
func (r *MemoryAnnouncementRepository) Create(ctx context.Context, a *models.Announcement) (*models.Announcement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	a.ID = uuid.NewString()
	a.CreatedAt = now
	a.UpdatedAt = now
	r.announcements[a.ID] = *a
	return a, nil
}

// FindByID returns the announcement with the given id
func (r *MemoryAnnouncementRepository) FindByID(ctx context.Context, id string) (*models.Announcement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.announcements[id]
	if !ok {
		return nil, apperrors.ErrAnnouncementNotFound
	}
	return &a, nil
}

// GetAll returns every announcement, newest first
func (r *MemoryAnnouncementRepository) GetAll(ctx context.Context) ([]models.Announcement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	announcements := make([]models.Announcement, 0, len(r.announcements))
	for _, a := range r.announcements {
		announcements = append(announcements, a)
	}
	sort.Slice(announcements, func(i, j int) bool {
		return announcements[i].CreatedAt.After(announcements[j].CreatedAt)
	})
	return announcements, nil
}

// Delete removes an announcement
func (r *MemoryAnnouncementRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.announcements[id]; !ok {
		return apperrors.ErrAnnouncementNotFound
	}
	delete(r.announcements, id)
	return nil
}
