package repositories

import (
	"errors"
	"fmt"

	"storefront/internal/models"

	"gorm.io/gorm"
)

// GORMInventoryRepository is a GORM implementation of InventoryRepository.
// It relies on conditional single-row UPDATEs, so the database serializes
// concurrent decrements of the same variant; the repository never does a
// read-modify-write on stock.
type GORMInventoryRepository struct {
	db *gorm.DB
}

// NewGORMInventoryRepository creates a new instance of GORMInventoryRepository.
func NewGORMInventoryRepository(db *gorm.DB) *GORMInventoryRepository {
	return &GORMInventoryRepository{
		db: db,
	}
}

// GetVariant retrieves a single product variant by its ID.
func (r *GORMInventoryRepository) GetVariant(id string) (*models.ProductVariant, error) {
	var variant models.ProductVariant
	if err := r.db.First(&variant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("variant with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get variant by ID %s: %w", id, err)
	}
	return &variant, nil
}

// DecrementStockForItems applies every decrement of the batch inside one
// transaction. Each UPDATE carries a stock >= quantity guard; a guard miss
// aborts the transaction, so a partially decremented batch can never be
// observed even when two confirmations race over the same variants.
func (r *GORMInventoryRepository) DecrementStockForItems(items []StockAdjustment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Pre-flight: reject the whole order before touching any row.
		for _, item := range items {
			var variant models.ProductVariant
			if err := tx.First(&variant, "id = ?", item.VariantID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("variant with ID %s not found", item.VariantID)
				}
				return fmt.Errorf("failed to read variant %s: %w", item.VariantID, err)
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
			res := tx.Model(&models.ProductVariant{}).
				Where("id = ? AND stock >= ?", item.VariantID, item.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity))
			if res.Error != nil {
				return fmt.Errorf("failed to decrement stock for variant %s: %w", item.VariantID, res.Error)
			}
			if res.RowsAffected == 0 {
				// A concurrent confirmation won the race since our pre-flight read.
				var variant models.ProductVariant
				available := 0
				if err := tx.First(&variant, "id = ?", item.VariantID).Error; err == nil {
					available = variant.Stock
				}
				return &InsufficientStockError{
					VariantID:   item.VariantID,
					ProductName: item.ProductName,
					Available:   available,
					Required:    item.Quantity,
				}
			}
		}
		return nil
	})
}

// RestoreStockForItems adds each quantity back to its variant in one
// transaction. Restoration has no guard: it is only ever called to reverse a
// decrement the ledger itself applied.
func (r *GORMInventoryRepository) RestoreStockForItems(items []StockAdjustment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			res := tx.Model(&models.ProductVariant{}).
				Where("id = ?", item.VariantID).
				UpdateColumn("stock", gorm.Expr("stock + ?", item.Quantity))
			if res.Error != nil {
				return fmt.Errorf("failed to restore stock for variant %s: %w", item.VariantID, res.Error)
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("variant with ID %s not found for stock restore", item.VariantID)
			}
		}
		return nil
	})
}
