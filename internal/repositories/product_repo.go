package repositories

import (
	"storefront/internal/models"
)

// ProductListParams carries pagination and filtering for catalog listings.
type ProductListParams struct {
	Skip       int
	Limit      int
	Search     string
	CategoryID string
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll(params ProductListParams) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
	// DecrementStock atomically decrements stock for a product, guarded so
	// the row is only updated when enough stock remains. Returns false when
	// the guard rejected the decrement.
	DecrementStock(productID string, quantity int) (bool, error)
	GetCategories() ([]models.Category, error)
	CreateCategory(category *models.Category) error
}
