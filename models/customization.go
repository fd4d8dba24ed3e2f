package models

import "time"

// Catalog rows for the customization designer. PriceAdd is a flat add-on in
// minor-unit-free MMK; zero means the option is included in the base price.

type Knot struct {
	ID          string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Meaning     string    `gorm:"type:varchar(255)" json:"meaning"`
	Description string    `gorm:"type:text" json:"description"`
	Image       string    `gorm:"type:text" json:"image"`
	PriceAdd    int64     `gorm:"not null;default:0" json:"priceAdd"`
	SortOrder   int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

type ColorOption struct {
	ID        string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Hex       string    `gorm:"type:varchar(16)" json:"hex"`
	PriceAdd  int64     `gorm:"not null;default:0" json:"priceAdd"`
	SortOrder int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

type Rope struct {
	ID          string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	PriceAdd    int64     `gorm:"not null;default:0" json:"priceAdd"`
	SortOrder   int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

type Accessory struct {
	ID        string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Image     string    `gorm:"type:text" json:"image"`
	PriceAdd  int64     `gorm:"not null;default:0" json:"priceAdd"`
	SortOrder int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
