package repositories_test

import (
	"errors"
	"testing"

	"storefront/internal/models"
	"storefront/internal/repositories"

	"github.com/stretchr/testify/assert"
)

func TestGORMInventoryRepository_DecrementAndRestore(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewGORMInventoryRepository(db)

	variantID := newID()
	assert.NoError(t, db.Create(&models.ProductVariant{
		ID: variantID, ProductID: newID(), SKU: newID(), Name: "Blue / M", Price: 10, Stock: 5,
	}).Error)

	err := repo.DecrementStockForItems([]repositories.StockAdjustment{
		{VariantID: variantID, ProductName: "Shirt", Quantity: 3},
	})
	assert.NoError(t, err)

	variant, err := repo.GetVariant(variantID)
	assert.NoError(t, err)
	assert.Equal(t, 2, variant.Stock)

	err = repo.RestoreStockForItems([]repositories.StockAdjustment{
		{VariantID: variantID, ProductName: "Shirt", Quantity: 3},
	})
	assert.NoError(t, err)

	variant, err = repo.GetVariant(variantID)
	assert.NoError(t, err)
	assert.Equal(t, 5, variant.Stock, "decrement then restore is a round trip")
}

func TestGORMInventoryRepository_InsufficientStock(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewGORMInventoryRepository(db)

	variantID := newID()
	assert.NoError(t, db.Create(&models.ProductVariant{
		ID: variantID, ProductID: newID(), SKU: newID(), Name: "Red / L", Price: 10, Stock: 2,
	}).Error)

	err := repo.DecrementStockForItems([]repositories.StockAdjustment{
		{VariantID: variantID, ProductName: "Shirt", Quantity: 3},
	})

	var insufficient *repositories.InsufficientStockError
	assert.True(t, errors.As(err, &insufficient))
	assert.Equal(t, 2, insufficient.Available)
	assert.Equal(t, 3, insufficient.Required)

	variant, _ := repo.GetVariant(variantID)
	assert.Equal(t, 2, variant.Stock, "a rejected decrement must not change stock")
}

func TestGORMInventoryRepository_NoPartialDecrement(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewGORMInventoryRepository(db)

	okID, shortID := newID(), newID()
	assert.NoError(t, db.Create(&models.ProductVariant{
		ID: okID, ProductID: newID(), SKU: newID(), Name: "A", Price: 10, Stock: 10,
	}).Error)
	assert.NoError(t, db.Create(&models.ProductVariant{
		ID: shortID, ProductID: newID(), SKU: newID(), Name: "B", Price: 10, Stock: 1,
	}).Error)

	err := repo.DecrementStockForItems([]repositories.StockAdjustment{
		{VariantID: okID, ProductName: "A", Quantity: 2},
		{VariantID: shortID, ProductName: "B", Quantity: 5},
	})
	assert.Error(t, err)

	okVariant, _ := repo.GetVariant(okID)
	shortVariant, _ := repo.GetVariant(shortID)
	assert.Equal(t, 10, okVariant.Stock, "the transaction must roll back the whole batch")
	assert.Equal(t, 1, shortVariant.Stock)
}

func TestGORMInventoryRepository_UnknownVariant(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewGORMInventoryRepository(db)

	err := repo.DecrementStockForItems([]repositories.StockAdjustment{
		{VariantID: newID(), ProductName: "Ghost", Quantity: 1},
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	_, err = repo.GetVariant(newID())
	assert.Error(t, err)
}
