package models

import "time"

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the account row returned by get_user_by_email and the admin user
// panel. PasswordHash never leaves the service.
type User struct {
	UserID       string    `gorm:"column:user_id" json:"user_id"`
	Email        string    `gorm:"column:email" json:"email"`
	FullName     string    `gorm:"column:full_name" json:"full_name"`
	Role         string    `gorm:"column:role" json:"role"` // user, admin
	PasswordHash string    `gorm:"column:password_hash" json:"-"`
	VendorID     string    `gorm:"column:vendor_id" json:"vendor_id,omitempty"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}
