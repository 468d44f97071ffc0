package models

import (
	"time"
)

// MessageStatus is the lifecycle stage of a contact message
type MessageStatus string

const (
	MessageStatusNew     MessageStatus = "new"
	MessageStatusViewed  MessageStatus = "viewed"
	MessageStatusReplied MessageStatus = "replied"
)

// MessageFolder is the coarse moderation bucket a message sits in.
// Transitions are monotonic: inbox -> viewed, never back.
type MessageFolder string

const (
	FolderInbox  MessageFolder = "inbox"
	FolderViewed MessageFolder = "viewed"
)

// MessageSender is the contact-form submitter, embedded in the message row
type MessageSender struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	MemberID *int64 `json:"memberId,omitempty"`
}

// AdminReply is the admin-authored reply attached to a message
type AdminReply struct {
	Message   string    `json:"message"`
	RepliedAt time.Time `json:"repliedAt"`
	RepliedBy string    `json:"repliedBy"`
}

// Message defines the contact message model based on the 'messages' table.
// Invariants: folder=inbox implies status=new; status=replied implies
// folder=viewed; soft deletion is only permitted from the viewed folder.
type Message struct {
	ID         int64         `json:"id" db:"id" example:"1"`
	Sender     MessageSender `json:"sender"`
	Subject    string        `json:"subject" db:"subject"`
	Body       string        `json:"message" db:"body"`
	Category   string        `json:"category" db:"category" example:"general"`
	Status     MessageStatus `json:"status" db:"status" example:"new"`
	Folder     MessageFolder `json:"folder" db:"folder" example:"inbox"`
	AdminReply *AdminReply   `json:"adminReply,omitempty"`
	Newsletter bool          `json:"newsletter" db:"newsletter"`
	ViewedAt   *time.Time    `json:"viewedAt,omitempty" db:"viewed_at"`
	IsDeleted  bool          `json:"isDeleted" db:"is_deleted"`
	DeletedAt  *time.Time    `json:"deletedAt,omitempty" db:"deleted_at"`
	CreatedAt  time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time     `json:"updatedAt" db:"updated_at"`
}
