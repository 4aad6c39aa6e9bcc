package models

import "time"

// BannedUser is an entry in the ban ledger. Created when an administrator
// bans an egresado account; the student ID can never sign up again while
// the entry exists. Immutable except for deletion via unban.
type BannedUser struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	StudentID string    `bson:"studentId" json:"studentId"`
	Email     string    `bson:"email" json:"email"`
	Reason    string    `bson:"reason" json:"reason"`
	BannedBy  string    `bson:"bannedBy" json:"bannedBy"`
	BannedAt  time.Time `bson:"bannedAt" json:"bannedAt"`
}
