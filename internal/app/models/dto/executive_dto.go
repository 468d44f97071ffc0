package dto

import "github.com/kemumsa/backend/internal/app/models"

// ExecutiveCreateRequest represents a new executive submission via
// multipart form, image optional.
type ExecutiveCreateRequest struct {
	FirstName   string `form:"firstName" binding:"required"`
	LastName    string `form:"lastName" binding:"required"`
	Position    string `form:"position" binding:"required"`
	Email       string `form:"email" binding:"omitempty,email"`
	Phone       string `form:"phone"`
	YearOfStudy *int   `form:"yearOfStudy" binding:"omitempty,min=1,max=6"`
	Facebook    string `form:"facebook"`
	Twitter     string `form:"twitter"`
	Instagram   string `form:"instagram"`
	LinkedIn    string `form:"linkedin"`
	WhatsApp    string `form:"whatsapp"`
}

// ExecutiveUpdateRequest represents a partial executive update
type ExecutiveUpdateRequest struct {
	FirstName   *string `form:"firstName"`
	LastName    *string `form:"lastName"`
	Position    *string `form:"position"`
	Email       *string `form:"email" binding:"omitempty,email"`
	Phone       *string `form:"phone"`
	YearOfStudy *int    `form:"yearOfStudy" binding:"omitempty,min=1,max=6"`
	Facebook    *string `form:"facebook"`
	Twitter     *string `form:"twitter"`
	Instagram   *string `form:"instagram"`
	LinkedIn    *string `form:"linkedin"`
	WhatsApp    *string `form:"whatsapp"`
	IsActive    *bool   `form:"isActive"`
}

// ExecutiveListResponse wraps an executive listing
type ExecutiveListResponse struct {
	Success    bool                `json:"success" example:"true"`
	Executives []*models.Executive `json:"executives"`
}

// ExecutiveResponse wraps a single executive record
type ExecutiveResponse struct {
	Success   bool              `json:"success" example:"true"`
	Executive *models.Executive `json:"executive"`
}
