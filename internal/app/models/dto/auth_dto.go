package dto

import "github.com/kemumsa/backend/internal/app/models"

// MemberLoginRequest represents member login credentials
type MemberLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// MemberRegisterRequest represents a member registration request
type MemberRegisterRequest struct {
	FirstName      string   `json:"firstName" binding:"required"`
	LastName       string   `json:"lastName" binding:"required"`
	Email          string   `json:"email" binding:"required,email"`
	Password       string   `json:"password" binding:"required,min=8"`
	Phone          string   `json:"phone"`
	YearOfStudy    *int     `json:"yearOfStudy" binding:"omitempty,min=1,max=6"`
	Department     string   `json:"department"`
	StudentID      string   `json:"studentId"`
	Interests      []string `json:"interests"`
	Newsletter     bool     `json:"newsletter"`
	ProfileVisible *bool    `json:"profileVisible"`
}

// MemberAuthResponse represents a successful member login
type MemberAuthResponse struct {
	Success   bool           `json:"success" example:"true"`
	Message   string         `json:"message" example:"Login successful"`
	Token     string         `json:"token"`
	ExpiresIn int64          `json:"expiresIn" example:"86400"`
	User      *models.Member `json:"user"`
}

// AdminLoginRequest represents admin login credentials
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminInfo is the admin identity echoed back on login
type AdminInfo struct {
	Username string `json:"username" example:"admin"`
	Role     string `json:"role" example:"admin"`
}

// AdminAuthResponse represents a successful admin login
type AdminAuthResponse struct {
	Success   bool      `json:"success" example:"true"`
	Message   string    `json:"message" example:"Login successful"`
	Token     string    `json:"token"`
	ExpiresIn int64     `json:"expiresIn" example:"86400"`
	Admin     AdminInfo `json:"admin"`
}

// VerifyPasswordRequest re-checks the caller's password before sensitive actions
type VerifyPasswordRequest struct {
	Password string `json:"password" binding:"required"`
}

// VerifyPasswordResponse reports whether the supplied password matched
type VerifyPasswordResponse struct {
	Success bool `json:"success" example:"true"`
	Valid   bool `json:"valid" example:"true"`
}
