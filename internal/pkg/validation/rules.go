package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Student identifier pattern - exactly 8 decimal digits
	StudentIDPattern = `^\d{8}$`

	// Institutional email domain for egresado accounts
	InstitutionalDomain = "tuxtla.tecnm.mx"

	// Password min length
	PasswordMinLength = 6
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	StudentID *regexp.Regexp
}{
	StudentID: regexp.MustCompile(StudentIDPattern),
}

// IsValidStudentID reports whether id is exactly 8 decimal digits
func IsValidStudentID(id string) bool {
	return CompiledPatterns.StudentID.MatchString(id)
}

// InstitutionalEmail derives the only email address accepted for a student ID
func InstitutionalEmail(studentID string) string {
	return fmt.Sprintf("L%s@%s", studentID, InstitutionalDomain)
}

// MatchesInstitutionalEmail reports whether email is the derived institutional
// address for studentID. Comparison is case-insensitive.
func MatchesInstitutionalEmail(studentID, email string) bool {
	return strings.EqualFold(email, InstitutionalEmail(studentID))
}

// IsValidPassword reports whether the password meets the minimum length
func IsValidPassword(password string) bool {
	return len(password) >= PasswordMinLength
}
