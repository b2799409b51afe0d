package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/pkg/rabbitmq"

	"gorm.io/gorm"
)

// Orders below this subtotal pay a flat shipping fee when a shipping
// address is given.
const (
	freeShippingThreshold = 500.0
	flatShippingCost      = 50.0
)

// OrderService runs the checkout saga and serves order reads. Checkout is a
// single database transaction: stock decrements, order insert and cart
// clearing either all commit or all roll back.
type OrderService struct {
	db       *gorm.DB
	mqClient *rabbitmq.Client // optional event publisher
}

// NewOrderService creates a new OrderService.
func NewOrderService(db *gorm.DB, mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		db:       db,
		mqClient: mqClient,
	}
}

// Checkout converts the user's cart into an immutable, priced order.
// shippingAddressID and couponCode are optional.
func (s *OrderService) Checkout(userID string, shippingAddressID, couponCode *string) (*models.Order, error) {
	var order *models.Order

	err := s.db.Transaction(func(tx *gorm.DB) error {
		cartRepo := repositories.NewGORMCartRepository(tx)
		productRepo := repositories.NewGORMProductRepository(tx)
		orderRepo := repositories.NewGORMOrderRepository(tx)
		addressRepo := repositories.NewGORMAddressRepository(tx)
		couponRepo := repositories.NewGORMCouponRepository(tx)

		// 1. Load the cart; an empty cart cannot be checked out.
		cart, err := cartRepo.GetByUserID(userID)
		if err != nil || len(cart.Items) == 0 {
			return ErrEmptyCart
		}

		// 2. Reserve stock and freeze prices. The conditional decrement is
		// the authoritative check; the first failing line aborts everything.
		var subtotal float64
		orderItems := make([]models.OrderItem, 0, len(cart.Items))
		for _, cartItem := range cart.Items {
			product, err := productRepo.GetByID(cartItem.ProductID)
			if err != nil {
				return fmt.Errorf("product %s: %w", cartItem.ProductID, ErrNotFound)
			}

			ok, err := productRepo.DecrementStock(product.ID, cartItem.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return &InsufficientStockError{
					ProductName: product.Name,
					Requested:   cartItem.Quantity,
					Available:   product.Stock,
				}
			}

			subtotal += product.Price * float64(cartItem.Quantity)
			orderItems = append(orderItems, models.OrderItem{
				ProductID:       product.ID,
				Quantity:        cartItem.Quantity,
				PriceAtPurchase: product.Price,
			})
		}

		// 3. Shipping: the address must belong to the caller; small orders
		// pay a flat fee.
		var shippingCost float64
		if shippingAddressID != nil {
			owned, err := addressRepo.BelongsToUser(*shippingAddressID, userID)
			if err != nil {
				return err
			}
			if !owned {
				return fmt.Errorf("shipping address %s: %w", *shippingAddressID, ErrNotFound)
			}
			if subtotal < freeShippingThreshold {
				shippingCost = flatShippingCost
			}
		}

		// 4. Coupon: a matched-but-expired code is a hard failure; every
		// other rejection is silently ignored.
		var discountAmount float64
		var appliedCode *string
		if couponCode != nil && *couponCode != "" {
			coupon, err := couponRepo.GetActiveByCode(*couponCode)
			if err == nil {
				discount, reason := EvaluateCoupon(*coupon, subtotal, time.Now().UTC())
				switch reason {
				case "":
					discountAmount = discount.Amount
					appliedCode = &coupon.Code
				case CouponRejectExpired:
					return ErrCouponExpired
				}
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}

		totalAmount := subtotal - discountAmount + shippingCost

		order = &models.Order{
			UserID:            userID,
			ShippingAddressID: shippingAddressID,
			Subtotal:          subtotal,
			ShippingCost:      shippingCost,
			DiscountAmount:    discountAmount,
			CouponCode:        appliedCode,
			TotalAmount:       totalAmount,
			Status:            models.OrderStatusConfirmed,
			Items:             orderItems,
		}
		if err := orderRepo.Create(order); err != nil {
			return err
		}

		// 5. The cart is consumed by the checkout.
		return cartRepo.Clear(cart.ID)
	})
	if err != nil {
		return nil, err
	}

	if s.mqClient != nil {
		event := map[string]interface{}{
			"order_id": order.ID,
			"user_id":  order.UserID,
			"status":   order.Status,
			"total":    order.TotalAmount,
		}
		if err := s.mqClient.Publish(rabbitmq.EventOrderCreated, event); err != nil {
			log.Printf("Warning: Failed to publish order created event for order %s: %v", order.ID, err)
		}
	}

	return order, nil
}

// GetMyOrders retrieves the user's orders, newest first.
func (s *OrderService) GetMyOrders(userID string) ([]models.Order, error) {
	return repositories.NewGORMOrderRepository(s.db).GetByUser(userID)
}

// GetOrder retrieves an order owned by the user.
func (s *OrderService) GetOrder(userID, orderID string) (*models.Order, error) {
	order, err := repositories.NewGORMOrderRepository(s.db).GetByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %s: %w", orderID, ErrNotFound)
		}
		return nil, err
	}
	if order.UserID != userID {
		return nil, fmt.Errorf("order %s: %w", orderID, ErrNotFound)
	}
	return order, nil
}
