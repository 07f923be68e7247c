package repositories

import (
	"fmt"
	"sync"

	"storefront/internal/models"

	"github.com/google/uuid"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products   map[string]models.Product
	categories map[string]models.Category
	variants   map[string]models.ProductVariant
	mu         sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products:   make(map[string]models.Product),
		categories: make(map[string]models.Category),
		variants:   make(map[string]models.ProductVariant),
	}
}

// GetAll returns all products.
func (r *MockProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		productList = append(productList, p)
	}
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %s not found", id)
	}
	return &product, nil
}

// Create adds a new product.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	r.products[product.ID] = *product
	return nil
}

// Update modifies an existing product.
func (r *MockProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.products[product.ID]
	if !ok {
		return fmt.Errorf("product with ID %s not found for update", product.ID)
	}
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.products[id]
	if !ok {
		return fmt.Errorf("product with ID %s not found for deletion", id)
	}
	delete(r.products, id)
	return nil
}

// CreateCategory adds a new category.
func (r *MockProductRepository) CreateCategory(category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	r.categories[category.ID] = *category
	return nil
}

// GetCategories returns all categories.
func (r *MockProductRepository) GetCategories() ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categoryList := make([]models.Category, 0, len(r.categories))
	for _, c := range r.categories {
		categoryList = append(categoryList, c)
	}
	return categoryList, nil
}

// CreateVariant adds a new product variant.
func (r *MockProductRepository) CreateVariant(variant *models.ProductVariant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if variant.ID == "" {
		variant.ID = uuid.New().String()
	}
	r.variants[variant.ID] = *variant
	if product, ok := r.products[variant.ProductID]; ok {
		product.Variants = append(product.Variants, *variant)
		r.products[variant.ProductID] = product
	}
	return nil
}

// GetVariantsByProduct returns the variants of a product.
func (r *MockProductRepository) GetVariantsByProduct(productID string) ([]models.ProductVariant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	variantList := make([]models.ProductVariant, 0)
	for _, v := range r.variants {
		if v.ProductID == productID {
			variantList = append(variantList, v)
		}
	}
	return variantList, nil
}
