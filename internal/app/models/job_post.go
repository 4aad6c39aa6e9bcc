package models

import (
	"time"

	"github.com/vinculatec/backend/internal/app/lifecycle"
)

// JobType is the employment type of a job posting
type JobType string

// Job types
const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
	JobTypeTemporary  JobType = "temporary"
)

// Valid reports whether t is in the closed job type set
func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship, JobTypeTemporary:
		return true
	}
	return false
}

// JobPost is a job posting. It expires automatically once the application
// deadline passes; closing and deletion are author-only actions.
type JobPost struct {
	ID                  string           `bson:"_id,omitempty" json:"id"`
	Author              string           `bson:"author" json:"author"`
	Title               string           `bson:"title" json:"title"`
	Company             string           `bson:"company" json:"company"`
	Location            string           `bson:"location" json:"location"`
	Description         string           `bson:"description" json:"description"`
	Requirements        string           `bson:"requirements,omitempty" json:"requirements,omitempty"`
	Salary              string           `bson:"salary,omitempty" json:"salary,omitempty"`
	ContactEmail        string           `bson:"contactEmail,omitempty" json:"contactEmail,omitempty"`
	ApplicationDeadline *time.Time       `bson:"applicationDeadline,omitempty" json:"applicationDeadline,omitempty"`
	Status              lifecycle.Status `bson:"status" json:"status"`
	JobType             JobType          `bson:"jobType" json:"jobType"`
	CreatedAt           time.Time        `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time        `bson:"updatedAt" json:"updatedAt"`
}

// CurrentStatus implements lifecycle.Expirable
func (p *JobPost) CurrentStatus() lifecycle.Status { return p.Status }

// TimeBound implements lifecycle.Expirable. Job posts without a deadline
// never expire automatically.
func (p *JobPost) TimeBound() (time.Time, bool) {
	if p.ApplicationDeadline == nil {
		return time.Time{}, false
	}
	return *p.ApplicationDeadline, true
}
