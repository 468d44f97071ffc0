package dto

import "github.com/kemumsa/backend/internal/app/models"

// MessageSubmitRequest represents an incoming contact form message
type MessageSubmitRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone"`
	Subject    string `json:"subject" binding:"required"`
	Message    string `json:"message" binding:"required"`
	Category   string `json:"category" binding:"omitempty,oneof=membership events academic partnership general feedback other"`
	Newsletter bool   `json:"newsletter"`
}

// MessageReplyRequest carries the admin's reply text
type MessageReplyRequest struct {
	ReplyMessage string `json:"replyMessage" binding:"required"`
}

// MessageListResponse wraps a folder listing of messages
type MessageListResponse struct {
	Success    bool              `json:"success" example:"true"`
	Folder     string            `json:"folder" example:"inbox"`
	Messages   []*models.Message `json:"messages"`
	Total      int64             `json:"total" example:"7"`
	Pagination *PaginationInfo   `json:"pagination,omitempty"`
}

// MessageResponse wraps a single message record
type MessageResponse struct {
	Success bool            `json:"success" example:"true"`
	Message *models.Message `json:"message"`
}

// MessageStats counts messages per workflow state
type MessageStats struct {
	New     int64 `json:"new" example:"3"`
	Viewed  int64 `json:"viewed" example:"10"`
	Replied int64 `json:"replied" example:"6"`
	Total   int64 `json:"total" example:"13"`
}

// MessageStatsResponse wraps the message counters
type MessageStatsResponse struct {
	Success bool         `json:"success" example:"true"`
	Stats   MessageStats `json:"stats"`
}
