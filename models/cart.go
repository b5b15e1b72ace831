package models

import "time"

// CartItem links a user to a menu item they intend to order.
type CartItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	UserID     uint      `gorm:"index;not null;uniqueIndex:idx_user_menu_item" json:"user_id"`
	MenuItemID uint      `gorm:"not null;uniqueIndex:idx_user_menu_item" json:"menu_item_id"`
	Quantity   int       `gorm:"not null;default:1" json:"quantity"`
	User       User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	MenuItem   MenuItem  `gorm:"foreignKey:MenuItemID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
