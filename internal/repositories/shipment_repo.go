package repositories

import (
	"fmt"
	"storefront/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShipmentRepository defines the interface for shipment data access.
type ShipmentRepository interface {
	// Create inserts a shipment in ready_to_ship for the order. The unique
	// index on order_id rejects a second shipment for the same order.
	Create(orderID string) (*models.Shipment, error)
	GetByID(id string) (*models.Shipment, error)
	UpdateTracking(id, courier, trackingID, status string) (*models.Shipment, error)
}

// GORMShipmentRepository is a GORM implementation of ShipmentRepository.
type GORMShipmentRepository struct {
	db *gorm.DB
}

// NewGORMShipmentRepository creates a new instance of GORMShipmentRepository.
func NewGORMShipmentRepository(db *gorm.DB) *GORMShipmentRepository {
	return &GORMShipmentRepository{
		db: db,
	}
}

// Create inserts a ready_to_ship shipment for the order.
func (r *GORMShipmentRepository) Create(orderID string) (*models.Shipment, error) {
	shipment := &models.Shipment{
		ID:      uuid.New().String(),
		OrderID: orderID,
		Status:  models.ShipmentStatusReadyToShip,
	}
	if err := r.db.Create(shipment).Error; err != nil {
		return nil, fmt.Errorf("failed to create shipment for order %s: %w", orderID, err)
	}
	return shipment, nil
}

// GetByID retrieves a shipment by its ID.
func (r *GORMShipmentRepository) GetByID(id string) (*models.Shipment, error) {
	var shipment models.Shipment
	if err := r.db.First(&shipment, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("shipment with ID %s not found: %w", id, gorm.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to get shipment by ID %s: %w", id, err)
	}
	return &shipment, nil
}

// UpdateTracking persists courier, tracking id and the new status.
func (r *GORMShipmentRepository) UpdateTracking(id, courier, trackingID, status string) (*models.Shipment, error) {
	shipment, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	shipment.CourierName = courier
	shipment.TrackingID = trackingID
	shipment.Status = status
	if err := r.db.Save(shipment).Error; err != nil {
		return nil, fmt.Errorf("failed to update tracking for shipment %s: %w", id, err)
	}
	return shipment, nil
}
