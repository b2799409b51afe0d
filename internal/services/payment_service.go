package services

import (
	"errors"
	"fmt"
	"log"
	"math"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/pkg/gateway"
	"storefront/pkg/rabbitmq"

	"gorm.io/gorm"
)

// PaymentIntent is what the client needs to drive the gateway's checkout
// widget: the gateway-side order reference plus amount and key.
type PaymentIntent struct {
	OrderID          string  `json:"order_id"`
	GatewayOrderID   string  `json:"gateway_order_id"`
	Amount           float64 `json:"amount"`
	AmountMinorUnits int64   `json:"amount_minor_units"`
	Currency         string  `json:"currency"`
	KeyID            string  `json:"key_id"`
}

// PaymentService creates payment intents against the gateway and reconciles
// gateway confirmations into payment/order/shipment state.
type PaymentService struct {
	db       *gorm.DB
	gateway  gateway.Gateway
	keyID    string // key advertised to clients; "mock_key" in mock mode
	currency string
	mqClient *rabbitmq.Client // optional event publisher
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(db *gorm.DB, gw gateway.Gateway, keyID string, mqClient *rabbitmq.Client) *PaymentService {
	return &PaymentService{
		db:       db,
		gateway:  gw,
		keyID:    keyID,
		currency: "INR",
		mqClient: mqClient,
	}
}

// CreateIntent registers the order's total with the gateway and persists a
// pending payment record tied 1:1 to the order.
func (s *PaymentService) CreateIntent(userID, orderID string) (*PaymentIntent, error) {
	order, err := repositories.NewGORMOrderRepository(s.db).GetByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %s: %w", orderID, ErrNotFound)
		}
		return nil, err
	}
	if order.UserID != userID {
		return nil, fmt.Errorf("order %s: %w", orderID, ErrForbidden)
	}

	amountMinor := int64(math.Round(order.TotalAmount * 100))

	gatewayOrderID, err := s.gateway.CreateOrder(amountMinor, s.currency, "order_"+order.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	payment := &models.Payment{
		OrderID:        order.ID,
		Amount:         order.TotalAmount,
		Currency:       s.currency,
		GatewayOrderID: gatewayOrderID,
		Status:         models.PaymentStatusPending,
	}
	if err := repositories.NewGORMPaymentRepository(s.db).Create(payment); err != nil {
		return nil, err
	}

	return &PaymentIntent{
		OrderID:          order.ID,
		GatewayOrderID:   gatewayOrderID,
		Amount:           order.TotalAmount,
		AmountMinorUnits: amountMinor,
		Currency:         s.currency,
		KeyID:            s.keyID,
	}, nil
}

// Verify reconciles a gateway confirmation. On success the payment and its
// owning order are updated in one transaction, then a shipment is created;
// a shipment-creation failure (e.g. one already exists) is logged and
// swallowed, never unwinding the payment success. A payment already in
// success is a no-op, so replayed confirmations are safe.
func (s *PaymentService) Verify(gatewayOrderID, gatewayPaymentID, signature string) error {
	if !s.gateway.VerifySignature(gatewayOrderID, gatewayPaymentID, signature) {
		return ErrInvalidSignature
	}

	payment, err := repositories.NewGORMPaymentRepository(s.db).GetByGatewayOrderID(gatewayOrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("payment for gateway order %s: %w", gatewayOrderID, ErrNotFound)
		}
		return err
	}

	if payment.Status == models.PaymentStatusSuccess {
		log.Printf("Payment %s already reconciled; ignoring duplicate confirmation", payment.ID)
		return nil
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return repositories.NewGORMPaymentRepository(tx).MarkSuccess(payment.ID, gatewayPaymentID)
	})
	if err != nil {
		return err
	}

	if _, err := repositories.NewGORMShipmentRepository(s.db).Create(payment.OrderID); err != nil {
		log.Printf("Warning: Shipment creation skipped for order %s: %v", payment.OrderID, err)
	}

	if s.mqClient != nil {
		event := map[string]interface{}{
			"order_id":        payment.OrderID,
			"payment_id":      payment.ID,
			"gateway_payment": gatewayPaymentID,
		}
		if err := s.mqClient.Publish(rabbitmq.EventPaymentCaptured, event); err != nil {
			log.Printf("Warning: Failed to publish payment captured event for order %s: %v", payment.OrderID, err)
		}
	}

	return nil
}
