package dto

// CreateUserRequest is the admin account-creation payload. StudentID is
// required only for egresado accounts.
type CreateUserRequest struct {
	Name      string `json:"name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	StudentID string `json:"studentId"`
}

// UpdateRoleRequest changes an account's role
type UpdateRoleRequest struct {
	Role string `json:"role"`
}

// BanUserRequest carries the optional reason recorded in the ban ledger
type BanUserRequest struct {
	Reason string `json:"reason"`
}

// ResetPasswordRequest sets a new password for an account
type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword"`
}
