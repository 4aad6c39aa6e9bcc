package models

import "time"

// NotificationType classifies a notification
type NotificationType string

// Notification types
const (
	NotificationLike               NotificationType = "like"
	NotificationComment            NotificationType = "comment"
	NotificationConnectionAccepted NotificationType = "connectionAccepted"
	NotificationProjectInterest    NotificationType = "projectInterest"
	NotificationProjectComment     NotificationType = "projectComment"
	NotificationProjectLike        NotificationType = "projectLike"
	NotificationProjectExpired     NotificationType = "projectExpired"
)

// Notification is created only as a side effect of another account's
// action. An author acting on their own posting never produces one.
type Notification struct {
	ID             string           `bson:"_id,omitempty" json:"id"`
	Recipient      string           `bson:"recipient" json:"recipient"`
	Type           NotificationType `bson:"type" json:"type"`
	RelatedUser    string           `bson:"relatedUser,omitempty" json:"relatedUser,omitempty"`
	RelatedProject string           `bson:"relatedProject,omitempty" json:"relatedProject,omitempty"`
	Read           bool             `bson:"read" json:"read"`
	CreatedAt      time.Time        `bson:"createdAt" json:"createdAt"`
}
