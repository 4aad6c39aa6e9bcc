package dto

import "github.com/vinculatec/backend/internal/app/models"

// UpdateProfileRequest carries partial profile updates. Image fields hold
// base64 data URIs that are uploaded to the media host before persisting.
type UpdateProfileRequest struct {
	Name           *string              `json:"name"`
	Headline       *string              `json:"headline"`
	Location       *string              `json:"location"`
	About          *string              `json:"about"`
	Skills         *[]string            `json:"skills"`
	Experience     *[]models.Experience `json:"experience"`
	Education      *[]models.Education  `json:"education"`
	ProfilePicture *string              `json:"profilePicture"`
	BannerImg      *string              `json:"bannerImg"`
	CurriculumImg  *string              `json:"curriculumImg"`
	CompanyInfo    *models.CompanyInfo  `json:"companyInfo"`
}
