package services

import (
	"errors"
	"fmt"

	"storefront/internal/models"
	"storefront/internal/repositories"

	"gorm.io/gorm"
)

// CouponService handles admin management of coupons.
type CouponService struct {
	repo repositories.CouponRepository
}

// NewCouponService creates a new CouponService.
func NewCouponService(repo repositories.CouponRepository) *CouponService {
	return &CouponService{
		repo: repo,
	}
}

// GetAllCoupons retrieves all coupons.
func (s *CouponService) GetAllCoupons() ([]models.Coupon, error) {
	return s.repo.GetAll()
}

// CreateCoupon creates a new coupon.
func (s *CouponService) CreateCoupon(coupon *models.Coupon) error {
	return s.repo.Create(coupon)
}

// UpdateCoupon updates an existing coupon.
func (s *CouponService) UpdateCoupon(coupon *models.Coupon) error {
	err := s.repo.Update(coupon)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("coupon %s: %w", coupon.ID, ErrNotFound)
	}
	return err
}

// DeleteCoupon deletes a coupon by its ID.
func (s *CouponService) DeleteCoupon(id string) error {
	err := s.repo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("coupon %s: %w", id, ErrNotFound)
	}
	return err
}
