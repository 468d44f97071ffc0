package dto

import "github.com/kemumsa/backend/internal/app/models"

// MemberUpdateRequest represents a partial member update. Nil fields are
// left unchanged.
type MemberUpdateRequest struct {
	FirstName      *string  `json:"firstName"`
	LastName       *string  `json:"lastName"`
	Phone          *string  `json:"phone"`
	YearOfStudy    *int     `json:"yearOfStudy" binding:"omitempty,min=1,max=6"`
	Department     *string  `json:"department"`
	StudentID      *string  `json:"studentId"`
	Interests      []string `json:"interests"`
	Newsletter     *bool    `json:"newsletter"`
	ProfileVisible *bool    `json:"profileVisible"`
	Status         *string  `json:"status" binding:"omitempty,oneof=online away offline"`
}

// MemberAdminUpdateRequest extends the member patch with admin-only fields
type MemberAdminUpdateRequest struct {
	MemberUpdateRequest
	Approved *bool `json:"approved"`
	IsActive *bool `json:"isActive"`
}

// DirectoryStats summarizes the public member directory
type DirectoryStats struct {
	TotalMembers   int64 `json:"totalMembers" example:"120"`
	VisibleMembers int64 `json:"visibleMembers" example:"85"`
	ActiveNow      int64 `json:"activeNow" example:"12"`
	MemberYears    []int `json:"memberYears" example:"1,2,3,4"`
}

// MemberDirectoryResponse is the public directory listing with stats
type MemberDirectoryResponse struct {
	Members []*models.Member `json:"members"`
	Stats   DirectoryStats   `json:"stats"`
}

// AdminMemberStats summarizes the full member roster for the admin panel
type AdminMemberStats struct {
	TotalMembers    int64 `json:"totalMembers" example:"120"`
	ApprovedMembers int64 `json:"approvedMembers" example:"100"`
	PendingMembers  int64 `json:"pendingMembers" example:"20"`
	ActiveMembers   int64 `json:"activeMembers" example:"95"`
}

// AdminMemberListResponse is the admin roster listing with stats
type AdminMemberListResponse struct {
	Members []*models.Member `json:"members"`
	Stats   AdminMemberStats `json:"stats"`
}

// MemberResponse wraps a single member record
type MemberResponse struct {
	Success bool           `json:"success" example:"true"`
	Member  *models.Member `json:"member"`
}
