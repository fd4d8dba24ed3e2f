package models

import "time"

// OrderItem is a snapshot of one cart line at checkout time. Immutable after
// creation; order_id is a back-reference, deletion is handled by the order
// delete cascade in the controller.
type OrderItem struct {
	ID          string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	OrderID     string    `gorm:"type:varchar(64);not null;index" json:"order_id"`
	Order       Order     `gorm:"foreignKey:OrderID;references:ID" json:"-"`
	ProductID   string    `gorm:"type:varchar(64);not null" json:"product_id"`
	ProductName string    `gorm:"type:varchar(255);not null" json:"product_name"`
	Price       int64     `gorm:"not null" json:"price"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	Meta        string    `gorm:"type:text" json:"meta,omitempty"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}
