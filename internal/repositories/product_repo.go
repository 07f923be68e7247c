package repositories

import (
	"storefront/internal/models"
)

// ProductRepository defines the interface for product catalog data access.
// Variant stock is read-only here; stock mutations go through InventoryRepository.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error

	CreateCategory(category *models.Category) error
	GetCategories() ([]models.Category, error)

	CreateVariant(variant *models.ProductVariant) error
	GetVariantsByProduct(productID string) ([]models.ProductVariant, error)
}
