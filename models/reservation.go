package models

import "time"

// Reservation statuses.
const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
)

// Reservation represents a table booking.
type Reservation struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	GuestName       string    `gorm:"size:100;not null" json:"guest_name"`
	Email           string    `gorm:"size:100;not null;index" json:"email"`
	Phone           string    `gorm:"size:20;not null" json:"phone"`
	ReservationDate time.Time `gorm:"not null;index" json:"reservation_date"`
	PartySize       int       `gorm:"not null" json:"party_size"`
	SpecialRequests string    `gorm:"type:text" json:"special_requests,omitempty"`
	Status          string    `gorm:"size:20;default:pending" json:"status"`
}
