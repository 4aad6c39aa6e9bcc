package models

import "time"

// Role represents the account role
type Role string

// Platform roles
const (
	RoleEgresado      Role = "egresado"
	RoleEmpresario    Role = "empresario"
	RoleAdministrador Role = "administrador"
)

// Valid reports whether r is in the closed role set
func (r Role) Valid() bool {
	switch r {
	case RoleEgresado, RoleEmpresario, RoleAdministrador:
		return true
	}
	return false
}

// Experience represents a work experience entry on a profile
type Experience struct {
	Title       string    `bson:"title" json:"title"`
	Company     string    `bson:"company" json:"company"`
	StartDate   time.Time `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate     time.Time `bson:"endDate,omitempty" json:"endDate,omitempty"`
	Description string    `bson:"description" json:"description"`
}

// Education represents an education entry on a profile
type Education struct {
	School       string `bson:"school" json:"school"`
	FieldOfStudy string `bson:"fieldOfStudy" json:"fieldOfStudy"`
	StartYear    int    `bson:"startYear,omitempty" json:"startYear,omitempty"`
	EndYear      int    `bson:"endYear,omitempty" json:"endYear,omitempty"`
}

// CompanyInfo holds the empresario company profile, filled on first login
type CompanyInfo struct {
	CompanyName  string `bson:"companyName" json:"companyName"`
	Industry     string `bson:"industry" json:"industry"`
	FoundedYear  int    `bson:"foundedYear,omitempty" json:"foundedYear,omitempty"`
	Website      string `bson:"website" json:"website"`
	Employees    string `bson:"employees" json:"employees"`
	Description  string `bson:"description" json:"description"`
	Logo         string `bson:"logo" json:"logo"`
	Location     string `bson:"location" json:"location"`
	ContactEmail string `bson:"contactEmail" json:"contactEmail"`
	ContactPhone string `bson:"contactPhone" json:"contactPhone"`
}

// User represents a platform account. StudentID is set only for egresado
// accounts and is unique among them; IsFirstLogin is meaningful only for
// empresario accounts.
type User struct {
	ID             string       `bson:"_id,omitempty" json:"id"`
	Name           string       `bson:"name" json:"name"`
	Username       string       `bson:"username" json:"username"`
	Email          string       `bson:"email" json:"email"`
	Password       string       `bson:"password" json:"-"`
	StudentID      string       `bson:"studentId,omitempty" json:"studentId,omitempty"`
	Role           Role         `bson:"role" json:"role"`
	IsFirstLogin   bool         `bson:"isFirstLogin" json:"isFirstLogin"`
	ProfilePicture string       `bson:"profilePicture" json:"profilePicture"`
	BannerImg      string       `bson:"bannerImg" json:"bannerImg"`
	CurriculumImg  string       `bson:"curriculumImg" json:"curriculumImg"`
	Headline       string       `bson:"headline" json:"headline"`
	Location       string       `bson:"location" json:"location"`
	About          string       `bson:"about" json:"about"`
	Skills         []string     `bson:"skills" json:"skills"`
	Experience     []Experience `bson:"experience" json:"experience"`
	Education      []Education  `bson:"education" json:"education"`
	Connections    []string     `bson:"connections" json:"connections"`
	CompanyInfo    *CompanyInfo `bson:"companyInfo,omitempty" json:"companyInfo,omitempty"`
	CreatedAt      time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time    `bson:"updatedAt" json:"updatedAt"`
}
