package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Order statuses.
const (
	OrderReceived  = "received"
	OrderPreparing = "preparing"
	OrderReady     = "ready"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

// Order types.
const (
	OrderTypeDelivery = "delivery"
	OrderTypePickup   = "pickup"
)

// OrderItem is a single line of an order, denormalized at order time so the
// order keeps its prices even if the menu changes later.
type OrderItem struct {
	ItemID   uint    `json:"item_id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// OrderItems stores the order lines as a JSON column.
type OrderItems []OrderItem

func (o OrderItems) Value() (driver.Value, error) {
	if o == nil {
		return "[]", nil
	}
	b, err := json.Marshal(o)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (o *OrderItems) Scan(value interface{}) error {
	if value == nil {
		*o = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, o)
	case string:
		return json.Unmarshal([]byte(v), o)
	default:
		return fmt.Errorf("unsupported type %T for OrderItems", value)
	}
}

// Order represents an online food order (delivery or pickup).
type Order struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	CreatedAt           time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
	CustomerName        string     `gorm:"size:100;not null" json:"customer_name"`
	Email               string     `gorm:"size:100;not null" json:"email"`
	Phone               string     `gorm:"size:20;not null" json:"phone"`
	OrderItems          OrderItems `gorm:"type:text;not null" json:"order_items"`
	TotalAmount         float64    `gorm:"not null" json:"total_amount"`
	OrderType           string     `gorm:"size:20;not null" json:"order_type"` // delivery, pickup
	DeliveryAddress     string     `gorm:"type:text" json:"delivery_address,omitempty"`
	SpecialInstructions string     `gorm:"type:text" json:"special_instructions,omitempty"`
	Status              string     `gorm:"size:20;default:received" json:"status"`
}
