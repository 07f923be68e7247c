package repositories

import (
	"errors"
	"fmt"

	"storefront/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMWishlistRepository is a GORM implementation of WishlistRepository.
type GORMWishlistRepository struct {
	db *gorm.DB
}

// NewGORMWishlistRepository creates a new instance of GORMWishlistRepository.
func NewGORMWishlistRepository(db *gorm.DB) *GORMWishlistRepository {
	return &GORMWishlistRepository{
		db: db,
	}
}

// GetByUser retrieves all wishlist items of a user, newest first.
func (r *GORMWishlistRepository) GetByUser(userID string) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get wishlist for user %s: %w", userID, err)
	}
	return items, nil
}

// Add inserts the item. A duplicate add is treated as idempotent success.
func (r *GORMWishlistRepository) Add(item *models.WishlistItem) error {
	var existing models.WishlistItem
	err := r.db.First(&existing, "user_id = ? AND product_id = ?", item.UserID, item.ProductID).Error
	if err == nil {
		*item = existing
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check wishlist item: %w", err)
	}

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to add wishlist item: %w", err)
	}
	return nil
}

// Remove deletes a wishlist item.
func (r *GORMWishlistRepository) Remove(userID, productID string) error {
	res := r.db.Where("user_id = ? AND product_id = ?", userID, productID).Delete(&models.WishlistItem{})
	if res.Error != nil {
		return fmt.Errorf("failed to remove wishlist item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("wishlist item for product %s not found", productID)
	}
	return nil
}
