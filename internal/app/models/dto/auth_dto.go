package dto

import "github.com/vinculatec/backend/internal/app/models"

// SignupRequest is the self-registration payload. Signup always creates an
// egresado account; other roles are created by administrators.
type SignupRequest struct {
	Name      string `json:"name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	StudentID string `json:"studentId"`
}

// LoginRequest is the credential payload
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse carries the issued token and the authenticated account.
// IsFirstLogin is present only for empresario accounts.
type AuthResponse struct {
	Token        string       `json:"token"`
	ExpiresIn    int          `json:"expiresIn"`
	User         *models.User `json:"user"`
	IsFirstLogin *bool        `json:"isFirstLogin,omitempty"`
}
