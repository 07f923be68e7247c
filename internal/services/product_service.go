package services

import (
	"storefront/internal/models"
	"storefront/internal/repositories"
)

// ProductService handles business logic related to the catalog.
type ProductService struct {
	repo  repositories.ProductRepository
	audit *AuditService
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, audit *AuditService) *ProductService {
	return &ProductService{
		repo:  repo,
		audit: audit,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct creates a new product.
func (s *ProductService) CreateProduct(actor *models.User, product *models.Product) error {
	if err := s.repo.Create(product); err != nil {
		return err
	}
	s.audit.Record(actor, "product.create", "product", product.ID, "created product "+product.Name)
	return nil
}

// UpdateProduct updates an existing product.
func (s *ProductService) UpdateProduct(actor *models.User, product *models.Product) error {
	if err := s.repo.Update(product); err != nil {
		return err
	}
	s.audit.Record(actor, "product.update", "product", product.ID, "updated product "+product.Name)
	return nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(actor *models.User, id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.audit.Record(actor, "product.delete", "product", id, "deleted product")
	return nil
}

// CreateCategory creates a new category.
func (s *ProductService) CreateCategory(actor *models.User, category *models.Category) error {
	if err := s.repo.CreateCategory(category); err != nil {
		return err
	}
	s.audit.Record(actor, "category.create", "category", category.ID, "created category "+category.Name)
	return nil
}

// GetCategories retrieves all categories.
func (s *ProductService) GetCategories() ([]models.Category, error) {
	return s.repo.GetCategories()
}

// CreateVariant creates a new product variant.
func (s *ProductService) CreateVariant(actor *models.User, variant *models.ProductVariant) error {
	if _, err := s.repo.GetByID(variant.ProductID); err != nil {
		return err
	}
	if err := s.repo.CreateVariant(variant); err != nil {
		return err
	}
	s.audit.Record(actor, "variant.create", "variant", variant.ID, "created variant "+variant.SKU)
	return nil
}

// GetVariantsByProduct retrieves the variants of a product.
func (s *ProductService) GetVariantsByProduct(productID string) ([]models.ProductVariant, error) {
	return s.repo.GetVariantsByProduct(productID)
}
