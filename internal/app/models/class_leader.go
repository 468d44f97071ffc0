package models

import (
	"time"
)

// ClassLeader defines the class leader model based on the 'class_leaders' table
type ClassLeader struct {
	ID             int64       `json:"id" db:"id" example:"1"`
	FirstName      string      `json:"firstName" db:"first_name"`
	LastName       string      `json:"lastName" db:"last_name"`
	Position       string      `json:"position" db:"position" example:"Year 1 Representative"`
	YearOfStudy    int         `json:"yearOfStudy" db:"year_of_study" example:"1"`
	Email          string      `json:"email" db:"email"`
	Phone          string      `json:"phone,omitempty" db:"phone"`
	Bio            string      `json:"bio,omitempty" db:"bio"`
	ImageURL       string      `json:"imageUrl,omitempty" db:"image_url"`
	SocialAccounts SocialLinks `json:"socialAccounts" db:"social_accounts"`
	IsActive       bool        `json:"isActive" db:"is_active"`
	CreatedAt      time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time   `json:"updatedAt" db:"updated_at"`
}

// ClassLeaderYearCount is the per-year tally of active class leaders
type ClassLeaderYearCount struct {
	YearOfStudy int `json:"yearOfStudy" db:"year_of_study"`
	Count       int `json:"count" db:"count"`
}
