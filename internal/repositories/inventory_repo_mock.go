package repositories

import (
	"fmt"
	"sync"

	"storefront/internal/models"
)

// MockInventoryRepository is an in-memory implementation of InventoryRepository.
type MockInventoryRepository struct {
	variants map[string]models.ProductVariant
	mu       sync.Mutex
}

// NewMockInventoryRepository creates a new instance of MockInventoryRepository.
func NewMockInventoryRepository() *MockInventoryRepository {
	return &MockInventoryRepository{
		variants: make(map[string]models.ProductVariant),
	}
}

// SeedVariant installs a variant for tests and local runs.
func (r *MockInventoryRepository) SeedVariant(variant models.ProductVariant) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.variants[variant.ID] = variant
}

// GetVariant returns a variant by its ID.
func (r *MockInventoryRepository) GetVariant(id string) (*models.ProductVariant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	variant, ok := r.variants[id]
	if !ok {
		return nil, fmt.Errorf("variant with ID %s not found", id)
	}
	return &variant, nil
}

// DecrementStockForItems applies all decrements or none. The single mutex
// stands in for the row guards the GORM implementation gets from SQL.
func (r *MockInventoryRepository) DecrementStockForItems(items []StockAdjustment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		variant, ok := r.variants[item.VariantID]
		if !ok {
			return fmt.Errorf("variant with ID %s not found", item.VariantID)
		}
		if variant.Stock < item.Quantity {
			return &InsufficientStockError{
				VariantID:   item.VariantID,
				ProductName: item.ProductName,
				Available:   variant.Stock,
				Required:    item.Quantity,
			}
		}
	}
	for _, item := range items {
		variant := r.variants[item.VariantID]
		variant.Stock -= item.Quantity
		r.variants[item.VariantID] = variant
	}
	return nil
}

// RestoreStockForItems adds each quantity back to its variant.
func (r *MockInventoryRepository) RestoreStockForItems(items []StockAdjustment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		if _, ok := r.variants[item.VariantID]; !ok {
			return fmt.Errorf("variant with ID %s not found for stock restore", item.VariantID)
		}
	}
	for _, item := range items {
		variant := r.variants[item.VariantID]
		variant.Stock += item.Quantity
		r.variants[item.VariantID] = variant
	}
	return nil
}
