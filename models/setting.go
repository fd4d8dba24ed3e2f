package models

import "time"

// Setting is one site-copy or checkout configuration row. Known keys and
// their fallback defaults live in the settings controller.
type Setting struct {
	Key       string    `gorm:"type:varchar(128);primaryKey" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
