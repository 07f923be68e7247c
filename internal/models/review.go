package models

import "gorm.io/gorm"

// Review is a user's rating of a product. One review per user per product,
// enforced by the composite unique index.
type Review struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductID  string `json:"product_id" gorm:"type:varchar(36);uniqueIndex:idx_review_user_product" validate:"required"`
	UserID     string `json:"user_id" gorm:"type:varchar(36);uniqueIndex:idx_review_user_product" validate:"required"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Comment    string `json:"comment" validate:"omitempty,max=1000"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
