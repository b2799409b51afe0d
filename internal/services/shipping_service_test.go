package services_test

import (
	"testing"

	"storefront/internal/events"
	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newShippingFixture(t *testing.T) (*services.ShippingService, *repositories.MockOrderRepository, *repositories.GORMShipmentRepository) {
	t.Helper()
	db := setupTestDB(t)
	shipmentRepo := repositories.NewGORMShipmentRepository(db)
	orderRepo := repositories.NewMockOrderRepository()
	projector := events.NewOrderStatusProjector(orderRepo, nil)
	return services.NewShippingService(shipmentRepo, projector), orderRepo, shipmentRepo
}

func seedConfirmedOrder(t *testing.T, orderRepo *repositories.MockOrderRepository) *models.Order {
	t.Helper()
	order := &models.Order{UserID: "user-1", Status: models.OrderStatusConfirmed, TotalAmount: 100}
	require.NoError(t, orderRepo.Create(order))
	return order
}

func TestUpdateTracking_PropagatesShippedToOrder(t *testing.T) {
	service, orderRepo, shipmentRepo := newShippingFixture(t)
	order := seedConfirmedOrder(t, orderRepo)
	shipment, err := shipmentRepo.Create(order.ID)
	require.NoError(t, err)

	updated, err := service.UpdateTracking(shipment.ID, "BlueDart", "BD123", models.ShipmentStatusShipped)
	require.NoError(t, err)
	assert.Equal(t, "BlueDart", updated.CourierName)
	assert.Equal(t, "BD123", updated.TrackingID)
	assert.Equal(t, models.ShipmentStatusShipped, updated.Status)

	reloaded, err := orderRepo.GetByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, reloaded.Status)
}

func TestUpdateTracking_StatusProjection(t *testing.T) {
	cases := []struct {
		shipmentStatus string
		orderStatus    string
	}{
		{models.ShipmentStatusShipped, models.OrderStatusShipped},
		{models.ShipmentStatusInTransit, models.OrderStatusShipped},
		{models.ShipmentStatusDelivered, models.OrderStatusDelivered},
		// ready_to_ship carries no order-side meaning.
		{models.ShipmentStatusReadyToShip, models.OrderStatusConfirmed},
	}
	for _, tc := range cases {
		t.Run(tc.shipmentStatus, func(t *testing.T) {
			service, orderRepo, shipmentRepo := newShippingFixture(t)
			order := seedConfirmedOrder(t, orderRepo)
			shipment, err := shipmentRepo.Create(order.ID)
			require.NoError(t, err)

			_, err = service.UpdateTracking(shipment.ID, "DTDC", "T1", tc.shipmentStatus)
			require.NoError(t, err)

			reloaded, err := orderRepo.GetByID(order.ID)
			require.NoError(t, err)
			assert.Equal(t, tc.orderStatus, reloaded.Status)
		})
	}
}

func TestUpdateTracking_UnknownShipment(t *testing.T) {
	service, _, _ := newShippingFixture(t)

	_, err := service.UpdateTracking("missing", "DTDC", "T1", models.ShipmentStatusShipped)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestShipmentCreate_OnePerOrder(t *testing.T) {
	_, _, shipmentRepo := newShippingFixture(t)

	first, err := shipmentRepo.Create("order-1")
	require.NoError(t, err)
	assert.Equal(t, models.ShipmentStatusReadyToShip, first.Status)

	_, err = shipmentRepo.Create("order-1")
	assert.Error(t, err)
}
