package repositories

import "storefront/internal/models"

// CartRepository defines the interface for cart data access.
type CartRepository interface {
	// GetByUserID returns the user's cart, creating an empty one if needed.
	GetByUserID(userID string) (*models.Cart, error)
	AddItem(cartID string, item *models.CartItem) error
	UpdateItemQuantity(cartID, itemID string, quantity int) error
	RemoveItem(cartID, itemID string) error
	Clear(cartID string) error
}
