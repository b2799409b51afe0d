package services

import (
	"errors"
	"fmt"

	"storefront/internal/events"
	"storefront/internal/models"
	"storefront/internal/repositories"

	"gorm.io/gorm"
)

// ShippingService handles admin-driven shipment tracking updates and emits
// the domain event that keeps the owning order's status in sync.
type ShippingService struct {
	shipmentRepo repositories.ShipmentRepository
	projector    *events.OrderStatusProjector
}

// NewShippingService creates a new ShippingService.
func NewShippingService(shipmentRepo repositories.ShipmentRepository, projector *events.OrderStatusProjector) *ShippingService {
	return &ShippingService{
		shipmentRepo: shipmentRepo,
		projector:    projector,
	}
}

// UpdateTracking persists courier, tracking id and status on the shipment,
// then forward-propagates the status to the order via the projector.
func (s *ShippingService) UpdateTracking(shipmentID, courier, trackingID, status string) (*models.Shipment, error) {
	shipment, err := s.shipmentRepo.UpdateTracking(shipmentID, courier, trackingID, status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("shipment %s: %w", shipmentID, ErrNotFound)
		}
		return nil, err
	}

	err = s.projector.HandleShipmentStatusChanged(events.ShipmentStatusChanged{
		ShipmentID: shipment.ID,
		OrderID:    shipment.OrderID,
		Status:     shipment.Status,
	})
	if err != nil {
		return nil, err
	}
	return shipment, nil
}
