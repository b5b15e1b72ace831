package models

import "time"

// Review approval states.
const (
	ReviewPending  = 0
	ReviewApproved = 1
	ReviewRejected = 2
)

// Review represents customer feedback on the restaurant.
type Review struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	CustomerName string    `gorm:"size:100;not null" json:"customer_name"`
	Rating       int       `gorm:"not null" json:"rating"` // 1-5 stars
	Comment      string    `gorm:"type:text;not null" json:"comment"`
	Sentiment    string    `gorm:"size:20" json:"sentiment,omitempty"` // positive, neutral, negative
	IsApproved   int       `gorm:"default:0" json:"is_approved"`       // 0 pending, 1 approved, 2 rejected
}
