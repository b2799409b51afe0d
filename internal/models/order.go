package models

import "time"

// Order lifecycle statuses.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// OrderItem is a single line within an order. Quantity and the unit price
// are frozen at checkout time and never re-read from the catalog.
type OrderItem struct {
	ID              string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID         string  `json:"order_id" gorm:"index;type:varchar(36)"`
	ProductID       string  `json:"product_id" gorm:"type:varchar(36)"`
	Quantity        int     `json:"quantity"`
	PriceAtPurchase float64 `json:"price_at_purchase"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// Order is the immutable snapshot produced by checkout. Only Status changes
// after creation; money fields satisfy
// TotalAmount = Subtotal - DiscountAmount + ShippingCost.
type Order struct {
	ID                string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID            string  `json:"user_id" gorm:"index;type:varchar(36)"`
	ShippingAddressID *string `json:"shipping_address_id" gorm:"type:varchar(36)"`

	Subtotal       float64 `json:"subtotal"`
	ShippingCost   float64 `json:"shipping_cost"`
	DiscountAmount float64 `json:"discount_amount"`
	CouponCode     *string `json:"coupon_code" gorm:"type:varchar(50)"`
	TotalAmount    float64 `json:"total_amount"`

	Status string `json:"status" gorm:"type:varchar(20)"`

	Items    []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	Shipment *Shipment   `json:"shipment,omitempty" gorm:"foreignKey:OrderID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
