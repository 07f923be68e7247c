package repositories

import (
	"fmt"

	"storefront/internal/models"
)

// StockAdjustment is one variant/quantity pair of an order.
type StockAdjustment struct {
	VariantID   string
	ProductName string
	Quantity    int
}

// InsufficientStockError reports the first item of a batch that could not be
// covered by available stock. The whole batch is rolled back when it occurs.
type InsufficientStockError struct {
	VariantID   string
	ProductName string
	Available   int
	Required    int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s (variant %s): requested %d, available %d",
		e.ProductName, e.VariantID, e.Required, e.Available)
}

// InventoryRepository is the sole mutation path for variant stock. Both batch
// operations are all-or-nothing: either every adjustment in the batch is
// applied, or none is.
type InventoryRepository interface {
	GetVariant(id string) (*models.ProductVariant, error)
	// DecrementStockForItems subtracts each adjustment's quantity from its
	// variant, guarded per row by stock >= quantity. Returns
	// *InsufficientStockError and applies nothing if any row fails the guard.
	DecrementStockForItems(items []StockAdjustment) error
	// RestoreStockForItems adds each adjustment's quantity back to its variant.
	RestoreStockForItems(items []StockAdjustment) error
}
