package models

import "time"

// User roles. Stored as integers to keep the column compact.
const (
	RoleUser  = 0
	RoleAdmin = 1
)

// User represents a registered author. Passwords are stored as bcrypt hashes only.
type User struct {
	ID           int64      `gorm:"primaryKey" json:"id"`
	Username     string     `gorm:"size:64;not null;uniqueIndex" json:"username"`
	Email        string     `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	DisplayName  string     `gorm:"size:128" json:"display_name"`
	Bio          string     `gorm:"type:text" json:"bio"`
	Role         int        `gorm:"default:0" json:"role"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
