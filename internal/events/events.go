package events

import (
	"log"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/pkg/rabbitmq"
)

// ShipmentStatusChanged is emitted whenever a shipment's status is updated.
type ShipmentStatusChanged struct {
	ShipmentID string `json:"shipment_id"`
	OrderID    string `json:"order_id"`
	Status     string `json:"status"`
}

// OrderStatusProjector consumes shipment events and forward-propagates the
// order status: shipped/in_transit mark the order shipped, delivered marks
// it delivered. Earlier shipment states leave the order untouched.
type OrderStatusProjector struct {
	orderRepo repositories.OrderRepository
	mqClient  *rabbitmq.Client
}

// NewOrderStatusProjector creates a new OrderStatusProjector.
func NewOrderStatusProjector(orderRepo repositories.OrderRepository, mqClient *rabbitmq.Client) *OrderStatusProjector {
	return &OrderStatusProjector{
		orderRepo: orderRepo,
		mqClient:  mqClient,
	}
}

// HandleShipmentStatusChanged applies the order-status projection and
// mirrors the event to the message broker. The projection is synchronous;
// only the broker publish is best-effort.
func (p *OrderStatusProjector) HandleShipmentStatusChanged(ev ShipmentStatusChanged) error {
	var orderStatus string
	switch ev.Status {
	case models.ShipmentStatusShipped, models.ShipmentStatusInTransit:
		orderStatus = models.OrderStatusShipped
	case models.ShipmentStatusDelivered:
		orderStatus = models.OrderStatusDelivered
	}

	if orderStatus != "" {
		if err := p.orderRepo.UpdateStatus(ev.OrderID, orderStatus); err != nil {
			return err
		}
	}

	if p.mqClient != nil {
		if err := p.mqClient.Publish(rabbitmq.EventShipmentStatusChanged, ev); err != nil {
			log.Printf("Warning: Failed to publish shipment status event for order %s: %v", ev.OrderID, err)
		}
	}
	return nil
}
