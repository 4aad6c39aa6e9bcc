package models

import "time"

// Announcement is a staff-published notice shown to all users
type Announcement struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Author    string    `bson:"author" json:"author"`
	Content   string    `bson:"content" json:"content"`
	Image     string    `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
