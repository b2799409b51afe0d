package handlers

import (
	"log"

	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CouponHandler handles admin HTTP requests for coupons.
type CouponHandler struct {
	service  *services.CouponService
	validate *validator.Validate
}

// NewCouponHandler creates a new CouponHandler.
func NewCouponHandler(service *services.CouponService) *CouponHandler {
	return &CouponHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the coupon routes with the Fiber app.
func (h *CouponHandler) RegisterRoutes(router fiber.Router) {
	couponRoutes := router.Group("/coupons")
	couponRoutes.Get("/", h.HandleGetCoupons)
	couponRoutes.Post("/", h.HandleCreateCoupon)
	couponRoutes.Put("/:id", h.HandleUpdateCoupon)
	couponRoutes.Delete("/:id", h.HandleDeleteCoupon)
}

// HandleGetCoupons lists all coupons.
func (h *CouponHandler) HandleGetCoupons(c *fiber.Ctx) error {
	coupons, err := h.service.GetAllCoupons()
	if err != nil {
		log.Printf("Error getting coupons: %v", err)
		return respondError(c, err, "Could not retrieve coupons")
	}
	return c.JSON(coupons)
}

// HandleCreateCoupon creates a new coupon.
func (h *CouponHandler) HandleCreateCoupon(c *fiber.Ctx) error {
	var coupon models.Coupon
	if err := c.BodyParser(&coupon); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(coupon); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}

	if err := h.service.CreateCoupon(&coupon); err != nil {
		log.Printf("Error creating coupon: %v", err)
		return respondError(c, err, "Could not create coupon")
	}
	return c.Status(fiber.StatusCreated).JSON(coupon)
}

// HandleUpdateCoupon updates an existing coupon.
func (h *CouponHandler) HandleUpdateCoupon(c *fiber.Ctx) error {
	var coupon models.Coupon
	if err := c.BodyParser(&coupon); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	coupon.ID = c.Params("id")

	if err := h.validate.Struct(coupon); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}

	if err := h.service.UpdateCoupon(&coupon); err != nil {
		log.Printf("Error updating coupon %s: %v", coupon.ID, err)
		return respondError(c, err, "Could not update coupon")
	}
	return c.JSON(coupon)
}

// HandleDeleteCoupon deletes a coupon.
func (h *CouponHandler) HandleDeleteCoupon(c *fiber.Ctx) error {
	if err := h.service.DeleteCoupon(c.Params("id")); err != nil {
		log.Printf("Error deleting coupon %s: %v", c.Params("id"), err)
		return respondError(c, err, "Could not delete coupon")
	}
	return c.JSON(fiber.Map{
		"message": "Coupon deleted successfully",
	})
}
