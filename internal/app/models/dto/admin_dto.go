package dto

import "github.com/kemumsa/backend/internal/app/models"

// AdminProfileUpdateRequest changes the admin's username and/or password.
// The current password is always required; a new password only takes
// effect when both newPassword and confirmPassword are supplied and match.
type AdminProfileUpdateRequest struct {
	NewUsername     string `json:"newUsername"`
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"omitempty,min=8"`
	ConfirmPassword string `json:"confirmPassword"`
}

// AdminProfileResponse wraps the admin account record
type AdminProfileResponse struct {
	Success bool          `json:"success" example:"true"`
	Admin   *models.Admin `json:"admin"`
}

// Statistics summarizes association activity for the public landing page
type Statistics struct {
	ActiveMembers    int64 `json:"activeMembers" example:"95"`
	EventsThisYear   int64 `json:"eventsThisYear" example:"14"`
	YearsEstablished int   `json:"yearsEstablished" example:"8"`
	SuccessStories   int64 `json:"successStories" example:"30"`
}

// StatisticsResponse wraps the public landing page statistics
type StatisticsResponse struct {
	Success    bool       `json:"success" example:"true"`
	Statistics Statistics `json:"statistics"`
}
