package services

import (
	"fmt"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/pkg/cache"
)

// ProductService handles business logic related to products. Reads go
// through the namespaced TTL cache; writes synchronously invalidate the
// affected namespaces before returning, so the next detail read cannot be
// stale. List caches may serve a stale list until their TTL lapses.
type ProductService struct {
	repo  repositories.ProductRepository
	cache *cache.Manager
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, cacheManager *cache.Manager) *ProductService {
	return &ProductService{
		repo:  repo,
		cache: cacheManager,
	}
}

func listKey(params repositories.ProductListParams) string {
	return fmt.Sprintf("%d:%d:%s:%s", params.Skip, params.Limit, params.Search, params.CategoryID)
}

// GetAllProducts retrieves a page of products, read-through cached per
// (pagination, filters) key.
func (s *ProductService) GetAllProducts(params repositories.ProductListParams) ([]models.Product, error) {
	key := listKey(params)
	if cached, ok := s.cache.Get(cache.NamespaceProductsList, key); ok {
		return cached.([]models.Product), nil
	}

	products, err := s.repo.GetAll(params)
	if err != nil {
		return nil, err
	}
	s.cache.Set(cache.NamespaceProductsList, key, products)
	return products, nil
}

// GetProductByID retrieves a single product, read-through cached by id.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	if cached, ok := s.cache.Get(cache.NamespaceProductDetail, id); ok {
		return cached.(*models.Product), nil
	}

	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	s.cache.Set(cache.NamespaceProductDetail, id, product)
	return product, nil
}

// CreateProduct creates a new product and invalidates the list cache.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if err := s.repo.Create(product); err != nil {
		return err
	}
	s.cache.Invalidate(cache.NamespaceProductsList)
	return nil
}

// UpdateProduct updates an existing product and invalidates its detail key
// plus the list cache before returning.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	if err := s.repo.Update(product); err != nil {
		return err
	}
	s.cache.InvalidateKey(cache.NamespaceProductDetail, product.ID)
	s.cache.Invalidate(cache.NamespaceProductsList)
	return nil
}

// DeleteProduct deletes a product and invalidates its cache entries.
func (s *ProductService) DeleteProduct(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.cache.InvalidateKey(cache.NamespaceProductDetail, id)
	s.cache.Invalidate(cache.NamespaceProductsList)
	return nil
}

// GetCategories retrieves all categories, cached as a single entry.
func (s *ProductService) GetCategories() ([]models.Category, error) {
	if cached, ok := s.cache.Get(cache.NamespaceCategories, "all"); ok {
		return cached.([]models.Category), nil
	}

	categories, err := s.repo.GetCategories()
	if err != nil {
		return nil, err
	}
	s.cache.Set(cache.NamespaceCategories, "all", categories)
	return categories, nil
}

// CreateCategory creates a category and invalidates the categories cache.
func (s *ProductService) CreateCategory(category *models.Category) error {
	if err := s.repo.CreateCategory(category); err != nil {
		return err
	}
	s.cache.Invalidate(cache.NamespaceCategories)
	s.cache.Invalidate(cache.NamespaceProductsList)
	return nil
}
