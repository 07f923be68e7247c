package repositories

import (
	"storefront/internal/models"
)

// CouponRepository defines the interface for coupon data access.
// RegisterRedemption is the only operation allowed to mutate a coupon's
// usage counters, and it must do so atomically with the usage-row insert.
type CouponRepository interface {
	GetAll() ([]models.Coupon, error)
	GetByID(id string) (*models.Coupon, error)
	GetByCode(code string) (*models.Coupon, error)
	Create(coupon *models.Coupon) error
	Deactivate(id string) error
	// CountUsagesByUser returns how many times the user has redeemed the coupon.
	CountUsagesByUser(couponID, userID string) (int, error)
	// RegisterRedemption increments the coupon's usage counters and records the
	// usage row in one transaction. The increment is guarded by the coupon's
	// usage limit; ErrUsageLimitExceeded is returned when the guard fails.
	RegisterRedemption(usage *models.CouponUsage) error
	// SumDiscountGiven returns the aggregate discount recorded for the coupon.
	SumDiscountGiven(couponID string) (float64, error)
}
