package dto

import "github.com/kemumsa/backend/internal/app/models"

// CommunicationUpdateRequest represents a partial update of the contact
// settings singleton. Nil fields keep their stored value.
type CommunicationUpdateRequest struct {
	Email          *string             `json:"email" binding:"omitempty,email"`
	Phone          *string             `json:"phone"`
	Office         *models.Office      `json:"office"`
	OfficeHours    *models.OfficeHours `json:"officeHours"`
	Address        *models.Address     `json:"address"`
	SocialMedia    *models.SocialLinks `json:"socialMedia"`
	ResponseTime   *string             `json:"responseTime"`
	AdditionalInfo *string             `json:"additionalInfo"`
}

// CommunicationResponse wraps the contact settings
type CommunicationResponse struct {
	Success       bool                  `json:"success" example:"true"`
	Communication *models.Communication `json:"communication"`
}
