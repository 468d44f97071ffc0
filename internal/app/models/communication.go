package models

import (
	"time"
)

// Office is the association office location, stored as jsonb
type Office struct {
	Building string `json:"building,omitempty"`
	Room     string `json:"room,omitempty"`
	Location string `json:"location,omitempty"`
}

// OfficeHours holds per-weekday opening hours, stored as jsonb
type OfficeHours struct {
	Monday    string `json:"monday,omitempty"`
	Tuesday   string `json:"tuesday,omitempty"`
	Wednesday string `json:"wednesday,omitempty"`
	Thursday  string `json:"thursday,omitempty"`
	Friday    string `json:"friday,omitempty"`
	Saturday  string `json:"saturday,omitempty"`
	Sunday    string `json:"sunday,omitempty"`
}

// Address is the association postal address, stored as jsonb
type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
}

// Communication is the singleton contact-settings record. It lives in the
// 'communication_settings' table under a fixed primary key so that
// create-or-update can be a single atomic upsert.
type Communication struct {
	ID             int64       `json:"-" db:"id"`
	Email          string      `json:"email" db:"email"`
	Phone          string      `json:"phone" db:"phone"`
	Office         Office      `json:"office" db:"office"`
	OfficeHours    OfficeHours `json:"officeHours" db:"office_hours"`
	ResponseTime   string      `json:"responseTime" db:"response_time" example:"Within 24 hours"`
	Address        Address     `json:"address" db:"address"`
	SocialMedia    SocialLinks `json:"socialMedia" db:"social_media"`
	AdditionalInfo string      `json:"additionalInfo,omitempty" db:"additional_info"`
	UpdatedAt      time.Time   `json:"updatedAt" db:"updated_at"`
}

// CommunicationSingletonID is the fixed key the singleton row lives under
const CommunicationSingletonID int64 = 1

// DefaultCommunication returns the hardcoded contact settings served before
// any record has been persisted. Never written to the store.
func DefaultCommunication() *Communication {
	return &Communication{
		ID:    CommunicationSingletonID,
		Email: "kemumsa@kemu.ac.ke",
		Phone: "+254712345678",
		Office: Office{
			Building: "Student Center",
			Room:     "Room 205",
			Location: "Kenya Methodist University",
		},
		OfficeHours: OfficeHours{
			Monday:    "9:00 AM - 5:00 PM",
			Tuesday:   "9:00 AM - 5:00 PM",
			Wednesday: "9:00 AM - 5:00 PM",
			Thursday:  "9:00 AM - 5:00 PM",
			Friday:    "9:00 AM - 5:00 PM",
			Saturday:  "10:00 AM - 2:00 PM",
			Sunday:    "Closed",
		},
		ResponseTime: "Within 24 hours",
		Address: Address{
			Street:  "Student Center, Room 205",
			City:    "Meru",
			State:   "Kenya",
			Country: "Kenya",
		},
	}
}
