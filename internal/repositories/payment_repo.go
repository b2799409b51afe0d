package repositories

import (
	"fmt"
	"storefront/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentRepository defines the interface for payment data access.
type PaymentRepository interface {
	Create(payment *models.Payment) error
	GetByGatewayOrderID(gatewayOrderID string) (*models.Payment, error)
	// MarkSuccess flips the payment to success with the gateway transaction
	// reference and, in the same call, moves the owning order to confirmed.
	// Callers run it inside a transaction.
	MarkSuccess(paymentID, transactionID string) error
	MarkFailed(paymentID string) error
}

// GORMPaymentRepository is a GORM implementation of PaymentRepository.
type GORMPaymentRepository struct {
	db *gorm.DB
}

// NewGORMPaymentRepository creates a new instance of GORMPaymentRepository.
func NewGORMPaymentRepository(db *gorm.DB) *GORMPaymentRepository {
	return &GORMPaymentRepository{
		db: db,
	}
}

// Create inserts a pending payment record. The unique index on order_id
// keeps payments 1:1 with orders.
func (r *GORMPaymentRepository) Create(payment *models.Payment) error {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	if payment.Status == "" {
		payment.Status = models.PaymentStatusPending
	}
	if err := r.db.Create(payment).Error; err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

// GetByGatewayOrderID retrieves a payment by the gateway-side order reference.
func (r *GORMPaymentRepository) GetByGatewayOrderID(gatewayOrderID string) (*models.Payment, error) {
	var payment models.Payment
	if err := r.db.First(&payment, "gateway_order_id = ?", gatewayOrderID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("payment for gateway order %s not found: %w", gatewayOrderID, gorm.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to get payment for gateway order %s: %w", gatewayOrderID, err)
	}
	return &payment, nil
}

// MarkSuccess updates the payment and its owning order together.
func (r *GORMPaymentRepository) MarkSuccess(paymentID, transactionID string) error {
	var payment models.Payment
	if err := r.db.First(&payment, "id = ?", paymentID).Error; err != nil {
		return fmt.Errorf("payment with ID %s not found: %w", paymentID, err)
	}

	err := r.db.Model(&models.Payment{}).Where("id = ?", paymentID).Updates(map[string]interface{}{
		"status":         models.PaymentStatusSuccess,
		"transaction_id": transactionID,
	}).Error
	if err != nil {
		return fmt.Errorf("failed to mark payment %s successful: %w", paymentID, err)
	}

	err = r.db.Model(&models.Order{}).Where("id = ?", payment.OrderID).
		Update("status", models.OrderStatusConfirmed).Error
	if err != nil {
		return fmt.Errorf("failed to confirm order %s: %w", payment.OrderID, err)
	}
	return nil
}

// MarkFailed flips the payment to failed.
func (r *GORMPaymentRepository) MarkFailed(paymentID string) error {
	res := r.db.Model(&models.Payment{}).Where("id = ?", paymentID).
		Update("status", models.PaymentStatusFailed)
	if res.Error != nil {
		return fmt.Errorf("failed to mark payment %s failed: %w", paymentID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("payment with ID %s not found: %w", paymentID, gorm.ErrRecordNotFound)
	}
	return nil
}
