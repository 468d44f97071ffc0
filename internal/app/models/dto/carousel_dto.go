package dto

import "github.com/kemumsa/backend/internal/app/models"

// CarouselCreateRequest represents a new carousel image via multipart form
type CarouselCreateRequest struct {
	Title        string `form:"title" binding:"required"`
	Description  string `form:"description"`
	ImageURL     string `form:"imageUrl"`
	ImageType    string `form:"imageType" binding:"omitempty,oneof=student event activity achievement"`
	DisplayOrder *int   `form:"displayOrder" binding:"omitempty,min=0"`
	AspectRatio  string `form:"aspectRatio" binding:"omitempty,oneof=landscape portrait square"`
}

// CarouselUpdateRequest represents a partial carousel image update
type CarouselUpdateRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	ImageType    *string `json:"imageType" binding:"omitempty,oneof=student event activity achievement"`
	Active       *bool   `json:"active"`
	DisplayOrder *int    `json:"displayOrder" binding:"omitempty,min=0"`
	AspectRatio  *string `json:"aspectRatio" binding:"omitempty,oneof=landscape portrait square"`
}

// CarouselListResponse wraps a carousel image listing
type CarouselListResponse struct {
	Success bool                    `json:"success" example:"true"`
	Images  []*models.CarouselImage `json:"images"`
}

// CarouselResponse wraps a single carousel image
type CarouselResponse struct {
	Success bool                  `json:"success" example:"true"`
	Image   *models.CarouselImage `json:"image"`
}
