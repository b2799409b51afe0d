package models

import "time"

// Shipment statuses, in fulfillment order.
const (
	ShipmentStatusReadyToShip = "ready_to_ship"
	ShipmentStatusShipped     = "shipped"
	ShipmentStatusInTransit   = "in_transit"
	ShipmentStatusDelivered   = "delivered"
)

// Shipment tracks physical fulfillment of an order, created once the payment
// succeeds. 1:1 with the order.
type Shipment struct {
	ID      string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID string `json:"order_id" gorm:"uniqueIndex;type:varchar(36)"`

	CourierName string `json:"courier_name" gorm:"type:varchar(100)"`
	TrackingID  string `json:"tracking_id" gorm:"type:varchar(100)"`
	Status      string `json:"status" gorm:"type:varchar(20)"`

	EstimatedDelivery *time.Time `json:"estimated_delivery"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
