package models

import "time"

// Coupon discount types.
const (
	DiscountTypePercent = "percent"
	DiscountTypeFlat    = "flat"
)

// Coupon is a promotional discount definition. It is read-only at checkout
// time; the order flow never mutates it.
type Coupon struct {
	ID   string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Code string `json:"code" gorm:"uniqueIndex;type:varchar(50)" validate:"required,min=3,max=50"`

	DiscountType string  `json:"discount_type" gorm:"type:varchar(20);default:percent" validate:"required,oneof=percent flat"`
	Value        float64 `json:"value" validate:"required,gt=0"`

	MinOrderAmount    float64  `json:"min_order_amount" validate:"gte=0"`
	MaxDiscountAmount *float64 `json:"max_discount_amount"` // cap for percent discounts

	ValidFrom *time.Time `json:"valid_from"`
	ValidTo   *time.Time `json:"valid_to"`

	IsActive bool `json:"is_active" gorm:"default:true"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
