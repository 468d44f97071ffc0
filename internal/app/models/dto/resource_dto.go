package dto

import "github.com/kemumsa/backend/internal/app/models"

// ResourceCreateRequest represents a new academic resource record
type ResourceCreateRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Type        string `json:"type" binding:"required,oneof=exam cat notes"`
	Year        *int   `json:"year" binding:"omitempty,min=1,max=6"`
	Subject     string `json:"subject"`
	FileURL     string `json:"fileUrl" binding:"required"`
	Date        string `json:"date"`
}

// ResourceUpdateRequest represents a partial resource update
type ResourceUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Type        *string `json:"type" binding:"omitempty,oneof=exam cat notes"`
	Year        *int    `json:"year" binding:"omitempty,min=1,max=6"`
	Subject     *string `json:"subject"`
	FileURL     *string `json:"fileUrl"`
	Date        *string `json:"date"`
	IsActive    *bool   `json:"isActive"`
}

// ResourceFilter narrows a resource listing
type ResourceFilter struct {
	Type    string `form:"type" binding:"omitempty,oneof=exam cat notes"`
	Year    *int   `form:"year" binding:"omitempty,min=1,max=6"`
	Subject string `form:"subject"`
}

// ResourceListResponse wraps a resource listing
type ResourceListResponse struct {
	Success   bool               `json:"success" example:"true"`
	Resources []*models.Resource `json:"resources"`
	Total     int64              `json:"total" example:"42"`
}

// ResourceResponse wraps a single resource record
type ResourceResponse struct {
	Success  bool             `json:"success" example:"true"`
	Resource *models.Resource `json:"resource"`
}
