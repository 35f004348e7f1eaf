package models

import "time"

type Coffee struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	PictureURL  string  `json:"picture_url"`
	Price       float64 `gorm:"not null" json:"price"` // Required
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Coffee) TableName() string {
	return "coffees"
}
