package handlers

import (
	"log"

	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// PaymentHandler handles HTTP requests for payments.
type PaymentHandler struct {
	service  *services.PaymentService
	validate *validator.Validate
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(service *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the payment routes with the Fiber app.
func (h *PaymentHandler) RegisterRoutes(router fiber.Router) {
	paymentRoutes := router.Group("/payments")
	paymentRoutes.Post("/order/:orderID", h.HandleCreateIntent)
	paymentRoutes.Post("/verify", h.HandleVerify)
}

// VerifyRequest carries the gateway confirmation to reconcile.
type VerifyRequest struct {
	GatewayOrderID   string `json:"gateway_order_id" validate:"required"`
	GatewayPaymentID string `json:"gateway_payment_id" validate:"required"`
	Signature        string `json:"signature" validate:"required"`
}

// HandleCreateIntent initiates a payment for an existing order.
func (h *PaymentHandler) HandleCreateIntent(c *fiber.Ctx) error {
	intent, err := h.service.CreateIntent(currentUserID(c), c.Params("orderID"))
	if err != nil {
		log.Printf("Error creating payment intent for order %s: %v", c.Params("orderID"), err)
		return respondError(c, err, "Could not create payment")
	}
	return c.Status(fiber.StatusCreated).JSON(intent)
}

// HandleVerify reconciles a gateway payment confirmation.
func (h *PaymentHandler) HandleVerify(c *fiber.Ctx) error {
	var req VerifyRequest
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

	if err := h.service.Verify(req.GatewayOrderID, req.GatewayPaymentID, req.Signature); err != nil {
		log.Printf("Error verifying payment %s: %v", req.GatewayOrderID, err)
		return respondError(c, err, "Could not verify payment")
	}
	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Payment verified and order confirmed",
	})
}
