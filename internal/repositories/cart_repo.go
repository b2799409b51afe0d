package repositories

import (
	"storefront/internal/models"
)

// CartRepository defines the interface for cart data access.
type CartRepository interface {
	GetByUserID(userID string) (*models.Cart, error)
	Create(cart *models.Cart) error
	GetItem(cartID, productID string) (*models.CartItem, error)
	GetItemByID(itemID string) (*models.CartItem, error)
	AddItem(item *models.CartItem) error
	UpdateItemQuantity(itemID string, quantity int) error
	RemoveItem(itemID string) error
	// Clear deletes every line of the cart. Clearing an already-empty cart
	// is a no-op, not an error.
	Clear(cartID string) error
}
