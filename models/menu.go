package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList stores a list of strings as a JSON column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type %T for StringList", value)
	}
}

// MenuItem represents a dish available in the restaurant.
type MenuItem struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Name        string     `gorm:"size:100;not null;index" json:"name"`
	Description string     `gorm:"type:text;not null" json:"description"`
	Price       float64    `gorm:"not null" json:"price"`
	Category    string     `gorm:"size:50;not null;index" json:"category"` // Appetizers, Main, Desserts, Beverages
	ImageURL    string     `gorm:"size:500" json:"image_url,omitempty"`
	DietaryTags StringList `gorm:"type:text" json:"dietary_tags"` // ["vegan", "gluten-free", ...]
	Ingredients string     `gorm:"type:text" json:"ingredients,omitempty"`
	IsAvailable bool       `gorm:"default:true;not null" json:"is_available"`
}
