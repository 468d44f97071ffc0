package models

import (
	"time"
)

// Event defines the event model based on the 'events' table.
// Media holds stored file paths in upload order; entries are appended on
// update and never deduplicated or reordered.
type Event struct {
	ID           int64     `json:"id" db:"id" example:"1"`
	Title        string    `json:"title" db:"title" example:"Annual Medical Camp"`
	Description  string    `json:"description" db:"description"`
	Date         time.Time `json:"date" db:"event_date"`
	Time         string    `json:"time,omitempty" db:"event_time" example:"10:00 AM"`
	Location     string    `json:"location,omitempty" db:"location"`
	Category     string    `json:"category,omitempty" db:"category"`
	Organizer    string    `json:"organizer,omitempty" db:"organizer"`
	MaxAttendees *int      `json:"maxAttendees,omitempty" db:"max_attendees"`
	IsActive     bool      `json:"isActive" db:"is_active"`
	IsPast       bool      `json:"isPast" db:"is_past"`
	Image        string    `json:"image,omitempty" db:"image"`
	Media        []string  `json:"media" db:"media"`
	CreatedAt    time.Time `json:"createdDate" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}
