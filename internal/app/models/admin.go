package models

import (
	"time"
)

// AdminRole distinguishes ordinary admins from super admins
type AdminRole string

const (
	RoleAdmin      AdminRole = "admin"
	RoleSuperAdmin AdminRole = "super-admin"
)

// Admin defines the admin account model based on the 'admins' table.
// A single meaningful instance exists; it is seeded at startup.
type Admin struct {
	ID        int64      `json:"id" db:"id" example:"1"`
	Username  string     `json:"username" db:"username" example:"admin"`
	Password  string     `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	Email     string     `json:"email" db:"email" example:"admin@kemumsa.org"`
	Role      AdminRole  `json:"role" db:"role" example:"admin"`
	LastLogin *time.Time `json:"lastLogin,omitempty" db:"last_login"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at"`
}
