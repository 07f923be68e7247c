package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// DiscountType distinguishes percentage coupons from fixed-amount coupons.
type DiscountType string

const (
	DiscountPercentage  DiscountType = "PERCENTAGE"
	DiscountFixedAmount DiscountType = "FIXED_AMOUNT"
)

// Coupon is a discount code with eligibility rules and usage limits.
// Categories and ProductIDs scope eligibility; both empty means the coupon
// applies to any cart. UsageCount and TotalDiscountGiven are mutated only by
// the redemption transaction in the coupon repository.
type Coupon struct {
	ID                 string       `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Code               string       `json:"code" gorm:"uniqueIndex;type:varchar(50)" validate:"required,min=2,max=50"`
	DiscountType       DiscountType `json:"discount_type" validate:"required,oneof=PERCENTAGE FIXED_AMOUNT"`
	DiscountValue      float64      `json:"discount_value" validate:"required,gt=0"`
	MinPurchase        *float64     `json:"min_purchase,omitempty" validate:"omitempty,gte=0"`
	MaxDiscount        *float64     `json:"max_discount,omitempty" validate:"omitempty,gt=0"`
	UsageLimit         *int         `json:"usage_limit,omitempty" validate:"omitempty,gt=0"`
	PerUserLimit       *int         `json:"per_user_limit,omitempty" validate:"omitempty,gt=0"`
	ValidFrom          time.Time    `json:"valid_from" validate:"required"`
	ValidUntil         time.Time    `json:"valid_until" validate:"required,gtfield=ValidFrom"`
	IsActive           bool         `json:"is_active"`
	Categories         StringSet    `json:"categories" gorm:"type:text"`
	ProductIDs         StringSet    `json:"product_ids" gorm:"type:text"`
	UsageCount         int          `json:"usage_count"`
	TotalDiscountGiven float64      `json:"total_discount_given"`
	gorm.Model                      // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// CouponUsage links a coupon to the order it was redeemed against.
// Rows are immutable once created; they back per-user redemption counts
// and aggregate discount totals.
type CouponUsage struct {
	ID             string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CouponID       string    `json:"coupon_id" gorm:"type:varchar(36);index"`
	OrderID        string    `json:"order_id" gorm:"type:varchar(36);uniqueIndex"`
	UserID         string    `json:"user_id" gorm:"type:varchar(36);index"`
	DiscountAmount float64   `json:"discount_amount"`
	CreatedAt      time.Time `json:"created_at"`
}

// NormalizeCouponCode upper-cases a code and reports whether the result is a
// well-formed coupon code (uppercase letters, digits, hyphen, underscore).
func NormalizeCouponCode(code string) (string, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return "", false
	}
	for _, r := range code {
		switch {
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_':
		default:
			return "", false
		}
	}
	return code, true
}
