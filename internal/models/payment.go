package models

import "time"

// Payment statuses.
const (
	PaymentStatusPending = "pending"
	PaymentStatusSuccess = "success"
	PaymentStatusFailed  = "failed"
)

// Payment ties an order to the external gateway, 1:1 with the order.
// GatewayOrderID is the gateway-side reference obtained when the intent is
// created; TransactionID is the gateway payment reference recorded on success.
type Payment struct {
	ID      string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID string `json:"order_id" gorm:"uniqueIndex;type:varchar(36)"`

	Amount   float64 `json:"amount"`
	Currency string  `json:"currency" gorm:"type:varchar(10);default:INR"`
	Provider string  `json:"provider" gorm:"type:varchar(50);default:razorpay"`

	GatewayOrderID string  `json:"gateway_order_id" gorm:"index;type:varchar(255)"`
	TransactionID  *string `json:"transaction_id" gorm:"type:varchar(255)"`

	Status string `json:"status" gorm:"type:varchar(20)"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
