package models

import (
	"time"
)

// ResourceType categorizes a study resource
type ResourceType string

const (
	ResourceExam  ResourceType = "exam"
	ResourceCAT   ResourceType = "cat"
	ResourceNotes ResourceType = "notes"
)

// Resource defines the study resource model based on the 'resources' table
type Resource struct {
	ID          int64        `json:"id" db:"id" example:"1"`
	Title       string       `json:"title" db:"title" example:"Anatomy Past Paper 2023"`
	Type        ResourceType `json:"type" db:"type" example:"exam"`
	Year        int          `json:"year" db:"year" example:"2"`
	Subject     string       `json:"subject" db:"subject" example:"Human Anatomy"`
	Description string       `json:"description,omitempty" db:"description"`
	FileURL     string       `json:"fileUrl,omitempty" db:"file_url"`
	Date        time.Time    `json:"date" db:"resource_date"`
	IsActive    bool         `json:"isActive" db:"is_active"`
	CreatedAt   time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time    `json:"updatedAt" db:"updated_at"`
}
