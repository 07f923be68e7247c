package repositories

import (
	"errors"
	"fmt"

	"storefront/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// GetByUserID returns the user's cart with items, products and variants
// preloaded, creating an empty cart on first access.
func (r *GORMCartRepository) GetByUserID(userID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.Preload("Items").Preload("Items.Product").Preload("Items.Product.Category").
		Preload("Items.Variant").First(&cart, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{ID: uuid.New().String(), UserID: userID}
		if err := r.db.Create(&cart).Error; err != nil {
			return nil, fmt.Errorf("failed to create cart for user %s: %w", userID, err)
		}
		return &cart, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cart for user %s: %w", userID, err)
	}
	return &cart, nil
}

// AddItem appends an item to the cart, merging quantity into an existing line
// for the same variant.
func (r *GORMCartRepository) AddItem(cartID string, item *models.CartItem) error {
	var existing models.CartItem
	err := r.db.First(&existing, "cart_id = ? AND product_id = ? AND variant_id = ?",
		cartID, item.ProductID, item.VariantID).Error
	if err == nil {
		res := r.db.Model(&models.CartItem{}).Where("id = ?", existing.ID).
			UpdateColumn("quantity", gorm.Expr("quantity + ?", item.Quantity))
		if res.Error != nil {
			return fmt.Errorf("failed to merge cart item: %w", res.Error)
		}
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check existing cart item: %w", err)
	}

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.CartID = cartID
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to add cart item: %w", err)
	}
	return nil
}

// UpdateItemQuantity sets the quantity of a cart line.
func (r *GORMCartRepository) UpdateItemQuantity(cartID, itemID string, quantity int) error {
	res := r.db.Model(&models.CartItem{}).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		Update("quantity", quantity)
	if res.Error != nil {
		return fmt.Errorf("failed to update cart item quantity: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart item with ID %s not found", itemID)
	}
	return nil
}

// RemoveItem deletes a cart line.
func (r *GORMCartRepository) RemoveItem(cartID, itemID string) error {
	res := r.db.Where("id = ? AND cart_id = ?", itemID, cartID).Delete(&models.CartItem{})
	if res.Error != nil {
		return fmt.Errorf("failed to remove cart item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart item with ID %s not found", itemID)
	}
	return nil
}

// Clear removes all lines from a cart.
func (r *GORMCartRepository) Clear(cartID string) error {
	if err := r.db.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error; err != nil {
		return fmt.Errorf("failed to clear cart %s: %w", cartID, err)
	}
	return nil
}
