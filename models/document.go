package models

import "time"

// Document is one row of the generic document store backing the admin
// content screens (vlog posts, quick-view blocks, page copy). Data holds the
// document body as JSON; no schema is enforced here, only by the callers.
type Document struct {
	Collection string    `gorm:"type:varchar(64);primaryKey" json:"collection"`
	ID         string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	Data       string    `gorm:"type:text;not null" json:"data"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}
