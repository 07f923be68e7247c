package models

import "gorm.io/gorm"

// Category groups products for browsing and coupon eligibility.
type Category struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=2,max=100"`
	Slug       string `json:"slug" gorm:"uniqueIndex;type:varchar(100)"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// Product represents a product in the store.
type Product struct {
	ID          string           `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string           `json:"name" validate:"required,min=3,max=100"`
	Description string           `json:"description" validate:"omitempty,max=500"`
	Price       float64          `json:"price" validate:"required,gt=0"`
	CategoryID  string           `json:"category_id" gorm:"type:varchar(36);index"`
	Category    *Category        `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Variants    []ProductVariant `json:"variants,omitempty" gorm:"foreignKey:ProductID"`
	gorm.Model                   // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// ProductVariant is a purchasable SKU of a product (e.g. a color/size
// combination). Its stock is the only mutable inventory counter and must
// never go negative; all mutations go through the inventory repository.
type ProductVariant struct {
	ID         string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	ProductID  string  `json:"product_id" gorm:"type:varchar(36);index" validate:"required"`
	SKU        string  `json:"sku" gorm:"uniqueIndex;type:varchar(64)" validate:"required"`
	Name       string  `json:"name" validate:"required,min=1,max=100"`
	Price      float64 `json:"price" validate:"required,gt=0"`
	Stock      int     `json:"stock" validate:"gte=0"`
	gorm.Model         // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
