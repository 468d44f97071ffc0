package models

import (
	"time"
)

// PresenceStatus is a member's self-reported availability shown in the directory
type PresenceStatus string

const (
	PresenceOnline  PresenceStatus = "online"
	PresenceAway    PresenceStatus = "away"
	PresenceOffline PresenceStatus = "offline"
)

// Member defines the member model based on the 'members' table.
// Approved and ProfileVisible are distinct flags: Approved is the admin
// approval gate (login and directory inclusion), ProfileVisible is the
// member's own directory-listing preference.
type Member struct {
	ID             int64          `json:"id" db:"id" example:"1"`
	FirstName      string         `json:"firstName" db:"first_name" example:"Grace"`
	LastName       string         `json:"lastName" db:"last_name" example:"Einstein"`
	Email          string         `json:"email" db:"email" example:"geinstein0411@stu.kemu.ac.ke"`
	Phone          string         `json:"phone,omitempty" db:"phone"`
	YearOfStudy    *int           `json:"yearOfStudy,omitempty" db:"year_of_study" example:"3"`
	Department     string         `json:"department,omitempty" db:"department" example:"Medicine and Surgery"`
	StudentID      string         `json:"studentId,omitempty" db:"student_id"`
	Password       string         `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	ProfilePicture string         `json:"profilePicture,omitempty" db:"profile_picture"`
	Approved       bool           `json:"approved" db:"approved"`
	ProfileVisible bool           `json:"profileVisible" db:"profile_visible"`
	Newsletter     bool           `json:"newsletter" db:"newsletter"`
	Interests      []string       `json:"interests" db:"interests"`
	Status         PresenceStatus `json:"status" db:"status" example:"offline"`
	IsActive       bool           `json:"isActive" db:"is_active"`
	JoinedAt       time.Time      `json:"joinedDate" db:"joined_at"`
	UpdatedAt      time.Time      `json:"updatedAt" db:"updated_at"`
}
