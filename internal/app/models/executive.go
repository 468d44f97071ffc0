package models

import (
	"time"
)

// SocialLinks holds a person's social media handles, stored as jsonb
type SocialLinks struct {
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	WhatsApp  string `json:"whatsapp,omitempty"`
}

// Executive defines the executive model based on the 'executives' table
type Executive struct {
	ID          int64       `json:"id" db:"id" example:"1"`
	FirstName   string      `json:"firstName" db:"first_name"`
	LastName    string      `json:"lastName" db:"last_name"`
	Position    string      `json:"position" db:"position" example:"Chairperson"`
	Email       string      `json:"email" db:"email"`
	Phone       string      `json:"phone,omitempty" db:"phone"`
	YearOfStudy *int        `json:"yearOfStudy,omitempty" db:"year_of_study" example:"5"`
	ImageURL    string      `json:"imageUrl,omitempty" db:"image_url"`
	SocialMedia SocialLinks `json:"socialMedia" db:"social_media"`
	IsActive    bool        `json:"isActive" db:"is_active"`
	CreatedAt   time.Time   `json:"createdAt" db:"created_at"`
}
