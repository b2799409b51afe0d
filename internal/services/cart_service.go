package services

import (
	"errors"
	"fmt"

	"storefront/internal/models"
	"storefront/internal/repositories"

	"gorm.io/gorm"
)

// CartService handles business logic for the per-user cart. Stock checks
// here are advisory snapshots; the authoritative reservation happens at
// checkout.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// GetOrCreate returns the user's cart, creating an empty one on first
// access. The unique constraint on user_id backstops concurrent creation.
func (s *CartService) GetOrCreate(userID string) (*models.Cart, error) {
	cart, err := s.cartRepo.GetByUserID(userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	newCart := &models.Cart{UserID: userID}
	if err := s.cartRepo.Create(newCart); err != nil {
		// Lost the race against another request for the same user; the
		// existing cart is the one to use.
		if cart, getErr := s.cartRepo.GetByUserID(userID); getErr == nil {
			return cart, nil
		}
		return nil, fmt.Errorf("failed to create cart for user %s: %w", userID, err)
	}
	return s.cartRepo.GetByUserID(userID)
}

// AddItem adds quantity of a product to the cart, merging into an existing
// line rather than duplicating it.
func (s *CartService) AddItem(userID, productID string, quantity int) (*models.CartItem, error) {
	cart, err := s.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %s: %w", productID, ErrNotFound)
		}
		return nil, err
	}

	requestedTotal := quantity
	existing, err := s.cartRepo.GetItem(cart.ID, productID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		requestedTotal += existing.Quantity
	}

	if product.Stock < requestedTotal {
		return nil, &InsufficientStockError{
			ProductName: product.Name,
			Requested:   requestedTotal,
			Available:   product.Stock,
		}
	}

	if existing != nil {
		if err := s.cartRepo.UpdateItemQuantity(existing.ID, requestedTotal); err != nil {
			return nil, err
		}
		existing.Quantity = requestedTotal
		return existing, nil
	}

	item := &models.CartItem{
		CartID:    cart.ID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := s.cartRepo.AddItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateItemQuantity sets a line's quantity. Zero or negative removes the
// line; otherwise the new quantity is re-validated against current stock.
func (s *CartService) UpdateItemQuantity(userID, itemID string, quantity int) (*models.Cart, error) {
	cart, err := s.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	item, err := s.cartRepo.GetItemByID(itemID)
	if err != nil || item.CartID != cart.ID {
		return nil, fmt.Errorf("cart item %s: %w", itemID, ErrNotFound)
	}

	if quantity <= 0 {
		if err := s.cartRepo.RemoveItem(item.ID); err != nil {
			return nil, err
		}
		return s.cartRepo.GetByUserID(userID)
	}

	product, err := s.productRepo.GetByID(item.ProductID)
	if err != nil {
		return nil, err
	}
	if product.Stock < quantity {
		return nil, &InsufficientStockError{
			ProductName: product.Name,
			Requested:   quantity,
			Available:   product.Stock,
		}
	}

	if err := s.cartRepo.UpdateItemQuantity(item.ID, quantity); err != nil {
		return nil, err
	}
	return s.cartRepo.GetByUserID(userID)
}

// RemoveItem removes a line from the user's cart.
func (s *CartService) RemoveItem(userID, itemID string) error {
	cart, err := s.GetOrCreate(userID)
	if err != nil {
		return err
	}

	item, err := s.cartRepo.GetItemByID(itemID)
	if err != nil || item.CartID != cart.ID {
		return fmt.Errorf("cart item %s: %w", itemID, ErrNotFound)
	}
	return s.cartRepo.RemoveItem(item.ID)
}

// Clear empties the user's cart. Clearing an empty cart is a no-op.
func (s *CartService) Clear(userID string) error {
	cart, err := s.GetOrCreate(userID)
	if err != nil {
		return err
	}
	return s.cartRepo.Clear(cart.ID)
}
