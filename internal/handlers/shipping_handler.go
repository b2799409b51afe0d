package handlers

import (
	"log"

	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ShippingHandler handles admin HTTP requests for shipments.
type ShippingHandler struct {
	service  *services.ShippingService
	validate *validator.Validate
}

// NewShippingHandler creates a new ShippingHandler.
func NewShippingHandler(service *services.ShippingService) *ShippingHandler {
	return &ShippingHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the shipment routes with the Fiber app.
func (h *ShippingHandler) RegisterRoutes(router fiber.Router) {
	shipmentRoutes := router.Group("/shipments")
	shipmentRoutes.Put("/:id", h.HandleUpdateTracking)
}

// UpdateTrackingRequest carries courier details and the new status.
type UpdateTrackingRequest struct {
	CourierName string `json:"courier_name" validate:"required"`
	TrackingID  string `json:"tracking_id" validate:"required"`
	Status      string `json:"status" validate:"required"`
}

// HandleUpdateTracking updates shipment tracking and status.
func (h *ShippingHandler) HandleUpdateTracking(c *fiber.Ctx) error {
	var req UpdateTrackingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}

	shipment, err := h.service.UpdateTracking(c.Params("id"), req.CourierName, req.TrackingID, req.Status)
	if err != nil {
		log.Printf("Error updating shipment %s: %v", c.Params("id"), err)
		return respondError(c, err, "Could not update shipment")
	}
	return c.JSON(shipment)
}
