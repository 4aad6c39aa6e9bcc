package dto

import "time"

// CreateJobPostRequest is the job posting creation payload
type CreateJobPostRequest struct {
	Title               string     `json:"title"`
	Company             string     `json:"company"`
	Location            string     `json:"location"`
	Description         string     `json:"description"`
	Requirements        string     `json:"requirements"`
	Salary              string     `json:"salary"`
	ContactEmail        string     `json:"contactEmail"`
	ApplicationDeadline *time.Time `json:"applicationDeadline"`
	JobType             string     `json:"jobType"`
}

// UpdateJobPostRequest carries partial updates; nil fields are left as-is
type UpdateJobPostRequest struct {
	Title               *string    `json:"title"`
	Company             *string    `json:"company"`
	Location            *string    `json:"location"`
	Description         *string    `json:"description"`
	Requirements        *string    `json:"requirements"`
	Salary              *string    `json:"salary"`
	ContactEmail        *string    `json:"contactEmail"`
	ApplicationDeadline *time.Time `json:"applicationDeadline"`
	Status              *string    `json:"status"`
	JobType             *string    `json:"jobType"`
}

// ChangeJobStatusRequest sets a job posting's status
type ChangeJobStatusRequest struct {
	Status string `json:"status"`
}
