package models

import "gorm.io/gorm"

// CartItem is one line of a user's cart.
type CartItem struct {
	ID         string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CartID     string          `json:"cart_id" gorm:"type:varchar(36);index"`
	ProductID  string          `json:"product_id" gorm:"type:varchar(36)" validate:"required"`
	VariantID  string          `json:"variant_id,omitempty" gorm:"type:varchar(36)"`
	Quantity   int             `json:"quantity" validate:"required,gt=0"`
	Product    *Product        `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Variant    *ProductVariant `json:"variant,omitempty" gorm:"foreignKey:VariantID"`
	gorm.Model                 // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// Cart holds the items a user intends to order. One cart per user.
type Cart struct {
	ID         string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID     string     `json:"user_id" gorm:"type:varchar(36);uniqueIndex" validate:"required"`
	Items      []CartItem `json:"items" gorm:"foreignKey:CartID"`
	gorm.Model            // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// CartLine is the slice of cart state the coupon validator needs:
// the product and its category tag, plus the priced quantity.
type CartLine struct {
	ProductID string  `json:"product_id"`
	Category  string  `json:"category"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}
