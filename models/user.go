package models

import "time"

// User represents a customer or staff account.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Email        string    `gorm:"size:100;not null;uniqueIndex" json:"email"`
	FullName     string    `gorm:"size:100;not null" json:"full_name"`
	PasswordHash []byte    `gorm:"not null" json:"-"`
	Phone        string    `gorm:"size:20" json:"phone,omitempty"`
	IsActive     bool      `gorm:"default:true;not null" json:"is_active"`
	IsAdmin      bool      `gorm:"default:false;not null" json:"is_admin"`
}
