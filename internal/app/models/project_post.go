package models

import (
	"time"

	"github.com/vinculatec/backend/internal/app/lifecycle"
)

// ProjectComment is a comment embedded in a project posting
type ProjectComment struct {
	User      string    `bson:"user" json:"user"`
	Content   string    `bson:"content" json:"content"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// ProjectInterest records one account's expressed interest in a project.
// At most one entry per account; a second toggle removes it.
type ProjectInterest struct {
	User      string    `bson:"user" json:"user"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// ProjectPost is a collaboration posting with an expiration window.
// Likes, comments and interested parties are embedded in the document.
type ProjectPost struct {
	ID                  string            `bson:"_id,omitempty" json:"id"`
	Author              string            `bson:"author" json:"author"`
	Title               string            `bson:"title" json:"title"`
	Content             string            `bson:"content" json:"content"`
	Image               string            `bson:"image,omitempty" json:"image,omitempty"`
	Likes               []string          `bson:"likes" json:"likes"`
	Comments            []ProjectComment  `bson:"comments" json:"comments"`
	InterestedUsers     []ProjectInterest `bson:"interestedUsers" json:"interestedUsers"`
	ExpirationDate      time.Time         `bson:"expirationDate" json:"expirationDate"`
	Status              lifecycle.Status  `bson:"status" json:"status"`
	ProjectRequirements string            `bson:"projectRequirements,omitempty" json:"projectRequirements,omitempty"`
	ProjectGoals        string            `bson:"projectGoals,omitempty" json:"projectGoals,omitempty"`
	CreatedAt           time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// CurrentStatus implements lifecycle.Expirable
func (p *ProjectPost) CurrentStatus() lifecycle.Status { return p.Status }

// TimeBound implements lifecycle.Expirable
func (p *ProjectPost) TimeBound() (time.Time, bool) {
	return p.ExpirationDate, true
}

// HasLiked reports whether userID is in the like set
func (p *ProjectPost) HasLiked(userID string) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// IsInterested reports whether userID has an interest entry
func (p *ProjectPost) IsInterested(userID string) bool {
	for _, entry := range p.InterestedUsers {
		if entry.User == userID {
			return true
		}
	}
	return false
}
