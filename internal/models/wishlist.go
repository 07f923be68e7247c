package models

import "time"

// WishlistItem marks a product a user wants to keep an eye on.
// Adding a duplicate is treated as idempotent success.
type WishlistItem struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"user_id" gorm:"type:varchar(36);uniqueIndex:idx_wishlist_user_product" validate:"required"`
	ProductID string    `json:"product_id" gorm:"type:varchar(36);uniqueIndex:idx_wishlist_user_product" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
}
