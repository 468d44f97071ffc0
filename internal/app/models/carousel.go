package models

import (
	"time"
)

// CarouselImageType categorizes carousel entries shown on the homepage
type CarouselImageType string

const (
	CarouselTypeStudent     CarouselImageType = "student"
	CarouselTypeEvent       CarouselImageType = "event"
	CarouselTypeActivity    CarouselImageType = "activity"
	CarouselTypeAchievement CarouselImageType = "achievement"
)

// CarouselAspectRatio constrains how a carousel image is rendered
type CarouselAspectRatio string

const (
	AspectLandscape CarouselAspectRatio = "landscape"
	AspectPortrait  CarouselAspectRatio = "portrait"
	AspectSquare    CarouselAspectRatio = "square"
)

// CarouselImage defines the carousel image model based on the 'carousel_images' table
type CarouselImage struct {
	ID           int64               `json:"id" db:"id" example:"1"`
	Title        string              `json:"title" db:"title" example:"Annual Medical Camp"`
	Description  string              `json:"description" db:"description" example:"Students volunteering at the Meru medical camp"`
	ImageURL     string              `json:"imageUrl" db:"image_url" example:"/assets/uploads/carousel/9f4c.jpg"`
	ImageType    CarouselImageType   `json:"imageType" db:"image_type" example:"activity"`
	Active       bool                `json:"active" db:"active" example:"true"`
	DisplayOrder int                 `json:"displayOrder" db:"display_order" example:"1"`
	UploadedBy   string              `json:"uploadedBy" db:"uploaded_by" example:"admin"`
	AspectRatio  CarouselAspectRatio `json:"aspectRatio" db:"aspect_ratio" example:"landscape"`
	CreatedAt    time.Time           `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time           `json:"updatedAt" db:"updated_at"`
}
