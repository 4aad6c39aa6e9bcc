package dto

import "github.com/vinculatec/backend/internal/app/models"

// CreateProjectRequest is the project posting creation payload. Image, when
// present, is a base64 data URI forwarded to the media host.
// ExpirationDays defaults to 30 and must stay within 7-90 when given.
type CreateProjectRequest struct {
	Title               string `json:"title"`
	Content             string `json:"content"`
	Image               string `json:"image"`
	ProjectRequirements string `json:"projectRequirements"`
	ProjectGoals        string `json:"projectGoals"`
	ExpirationDays      int    `json:"expirationDays"`
}

// UpdateProjectRequest carries partial updates; nil fields are left as-is.
// A non-nil ExpirationDays restarts the expiration window from now.
type UpdateProjectRequest struct {
	Title               *string `json:"title"`
	Content             *string `json:"content"`
	ProjectRequirements *string `json:"projectRequirements"`
	ProjectGoals        *string `json:"projectGoals"`
	Status              *string `json:"status"`
	ExpirationDays      *int    `json:"expirationDays"`
}

// AddCommentRequest is the comment payload
type AddCommentRequest struct {
	Content string `json:"content"`
}

// ToggleInterestResponse reports the resulting interest state after a toggle
type ToggleInterestResponse struct {
	Message    string              `json:"message"`
	Interested bool                `json:"interested"`
	Project    *models.ProjectPost `json:"project"`
}

// ProjectListQuery mirrors the supported list filters
type ProjectListQuery struct {
	Status     string `form:"status"`
	Interested string `form:"interested"`
	Created    string `form:"created"`
}
