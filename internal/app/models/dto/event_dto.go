package dto

import "github.com/kemumsa/backend/internal/app/models"

// EventCreateRequest represents a new event submission. Events are created
// through a multipart form so an image can ride along with the fields.
type EventCreateRequest struct {
	Title        string `form:"title" binding:"required"`
	Description  string `form:"description"`
	Date         string `form:"date" binding:"required"`
	Time         string `form:"time"`
	Location     string `form:"location"`
	Category     string `form:"category"`
	Organizer    string `form:"organizer"`
	MaxAttendees *int   `form:"maxAttendees" binding:"omitempty,min=1"`
}

// EventUpdateRequest represents a partial event update. Nil fields are
// left unchanged.
type EventUpdateRequest struct {
	Title        *string `form:"title"`
	Description  *string `form:"description"`
	Date         *string `form:"date"`
	Time         *string `form:"time"`
	Location     *string `form:"location"`
	Category     *string `form:"category"`
	Organizer    *string `form:"organizer"`
	MaxAttendees *int    `form:"maxAttendees" binding:"omitempty,min=1"`
	IsActive     *bool   `form:"isActive"`
	IsPast       *bool   `form:"isPast"`
}

// EventListResponse wraps an event listing
type EventListResponse struct {
	Success bool            `json:"success" example:"true"`
	Events  []*models.Event `json:"events"`
	Total   int64           `json:"total" example:"14"`
}

// EventResponse wraps a single event record
type EventResponse struct {
	Success bool          `json:"success" example:"true"`
	Event   *models.Event `json:"event"`
}
