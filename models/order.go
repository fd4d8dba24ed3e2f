package models

import "time"

// Order statuses. Transitions are not restricted: admins may move an order
// from any status to any other status.
const (
	OrderStatusPendingPayment = "pending_payment"
	OrderStatusPaid           = "paid"
	OrderStatusShipped        = "shipped"
	OrderStatusCompleted      = "completed"
	OrderStatusCancelled      = "cancelled"
)

// OrderStatuses lists every status an admin can set.
var OrderStatuses = []string{
	OrderStatusPendingPayment,
	OrderStatusPaid,
	OrderStatusShipped,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

func IsValidOrderStatus(s string) bool {
	for _, v := range OrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

type Order struct {
	ID              string      `gorm:"type:varchar(64);primaryKey" json:"id"`
	OrderCode       string      `gorm:"type:varchar(16);not null;index" json:"order_code"`
	Status          string      `gorm:"type:varchar(20);not null;default:'pending_payment'" json:"status"`
	CustomerName    string      `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerPhone   string      `gorm:"type:varchar(64);not null" json:"customer_phone"`
	CustomerAddress string      `gorm:"type:text;not null" json:"customer_address"`
	Total           int64       `gorm:"not null;default:0" json:"total"`
	ProofURL        string      `gorm:"type:text" json:"proof_url,omitempty"`
	OrderItems      []OrderItem `gorm:"foreignKey:OrderID" json:"order_items"`
	CreatedAt       time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time   `gorm:"not null" json:"updated_at"`
}
