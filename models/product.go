package models

import "time"

type Product struct {
	ID          string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	Type        string    `gorm:"type:varchar(64)" json:"type"`
	Category    string    `gorm:"type:varchar(64)" json:"category"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Knot        string    `gorm:"type:varchar(64)" json:"knot"`
	Colors      string    `gorm:"type:text" json:"colors"` // JSON array of color ids
	Price       int64     `gorm:"not null" json:"price"`
	Image       string    `gorm:"type:text" json:"image"`
	Description string    `gorm:"type:text" json:"description"`
	ShowOnHome  bool      `gorm:"not null;default:false" json:"show_on_home"`
	SortOrder   int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}
