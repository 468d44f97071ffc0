package dto

import "github.com/kemumsa/backend/internal/app/models"

// ClassLeaderCreateRequest represents a new class leader submission via
// multipart form, image optional.
type ClassLeaderCreateRequest struct {
	FirstName   string `form:"firstName" binding:"required"`
	LastName    string `form:"lastName" binding:"required"`
	Position    string `form:"position" binding:"required"`
	YearOfStudy int    `form:"yearOfStudy" binding:"required,min=1,max=6"`
	Email       string `form:"email" binding:"omitempty,email"`
	Phone       string `form:"phone"`
	Bio         string `form:"bio"`
	Facebook    string `form:"facebook"`
	Twitter     string `form:"twitter"`
	Instagram   string `form:"instagram"`
	LinkedIn    string `form:"linkedin"`
	WhatsApp    string `form:"whatsapp"`
}

// ClassLeaderUpdateRequest represents a partial class leader update
type ClassLeaderUpdateRequest struct {
	FirstName   *string `form:"firstName"`
	LastName    *string `form:"lastName"`
	Position    *string `form:"position"`
	YearOfStudy *int    `form:"yearOfStudy" binding:"omitempty,min=1,max=6"`
	Email       *string `form:"email" binding:"omitempty,email"`
	Phone       *string `form:"phone"`
	Bio         *string `form:"bio"`
	Facebook    *string `form:"facebook"`
	Twitter     *string `form:"twitter"`
	Instagram   *string `form:"instagram"`
	LinkedIn    *string `form:"linkedin"`
	WhatsApp    *string `form:"whatsapp"`
	IsActive    *bool   `form:"isActive"`
}

// ClassLeaderListResponse wraps a class leader listing
type ClassLeaderListResponse struct {
	Success bool                  `json:"success" example:"true"`
	Leaders []*models.ClassLeader `json:"leaders"`
}

// ClassLeaderResponse wraps a single class leader record
type ClassLeaderResponse struct {
	Success bool                `json:"success" example:"true"`
	Leader  *models.ClassLeader `json:"leader"`
}

// ClassLeaderStatsResponse reports leader counts per year of study
type ClassLeaderStatsResponse struct {
	Success bool                          `json:"success" example:"true"`
	Total   int64                         `json:"total" example:"12"`
	ByYear  []models.ClassLeaderYearCount `json:"byYear"`
}
