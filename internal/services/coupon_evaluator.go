package services

import (
	"time"

	"storefront/internal/models"
)

// Coupon rejection reasons.
const (
	CouponRejectInactive      = "inactive"
	CouponRejectExpired       = "expired"
	CouponRejectMinimumNotMet = "minimum_not_met"
)

// Discount is the result of a successfully applied coupon.
type Discount struct {
	Code   string
	Amount float64
}

// EvaluateCoupon computes the discount a coupon yields on a subtotal. It is
// a pure function: no side effects, never mutates the coupon. A non-empty
// reason means the coupon was rejected and the zero Discount applies.
//
// Rules, in order: inactive, expired (valid_to before now), minimum order
// amount not met; then percent/flat computation, percent cap clamp, and a
// final clamp to the subtotal so the order total can never go negative.
func EvaluateCoupon(coupon models.Coupon, subtotal float64, now time.Time) (Discount, string) {
	if !coupon.IsActive {
		return Discount{}, CouponRejectInactive
	}
	if coupon.ValidTo != nil && coupon.ValidTo.Before(now) {
		return Discount{}, CouponRejectExpired
	}
	if subtotal < coupon.MinOrderAmount {
		return Discount{}, CouponRejectMinimumNotMet
	}

	var amount float64
	if coupon.DiscountType == models.DiscountTypePercent {
		amount = subtotal * coupon.Value / 100
		if coupon.MaxDiscountAmount != nil && amount > *coupon.MaxDiscountAmount {
			amount = *coupon.MaxDiscountAmount
		}
	} else {
		amount = coupon.Value
	}

	if amount > subtotal {
		amount = subtotal
	}

	return Discount{Code: coupon.Code, Amount: amount}, ""
}
