package repositories

import "storefront/internal/models"

// WishlistRepository defines the interface for wishlist data access.
type WishlistRepository interface {
	GetByUser(userID string) ([]models.WishlistItem, error)
	// Add inserts the item; adding an already-wishlisted product is a no-op.
	Add(item *models.WishlistItem) error
	Remove(userID, productID string) error
}
