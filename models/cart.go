package models

import "time"

type CartItem struct {
	ID        uint  `gorm:"primaryKey" json:"id"`
	UserID    int64 `gorm:"not null;index" json:"user_id"` // Telegram user ID
	CoffeeID  uint  `gorm:"not null;index" json:"coffee_id"`
	Count     int   `gorm:"not null;default:1" json:"count"`
	CreatedAt time.Time

	Coffee Coffee `gorm:"foreignKey:CoffeeID;constraint:OnDelete:CASCADE" json:"-"`
}

func (CartItem) TableName() string {
	return "cart_items"
}
