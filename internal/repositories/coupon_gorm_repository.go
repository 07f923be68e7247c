package repositories

import (
	"errors"
	"fmt"

	"storefront/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrUsageLimitExceeded is returned by RegisterRedemption when the coupon's
// global usage limit guard rejects the increment.
var ErrUsageLimitExceeded = errors.New("coupon usage limit exceeded")

// GORMCouponRepository is a GORM implementation of CouponRepository.
type GORMCouponRepository struct {
	db *gorm.DB
}

// NewGORMCouponRepository creates a new instance of GORMCouponRepository.
func NewGORMCouponRepository(db *gorm.DB) *GORMCouponRepository {
	return &GORMCouponRepository{
		db: db,
	}
}

// GetAll retrieves all coupons from the database.
func (r *GORMCouponRepository) GetAll() ([]models.Coupon, error) {
	var coupons []models.Coupon
	if err := r.db.Find(&coupons).Error; err != nil {
		return nil, fmt.Errorf("failed to get all coupons: %w", err)
	}
	return coupons, nil
}

// GetByID retrieves a single coupon by its ID from the database.
func (r *GORMCouponRepository) GetByID(id string) (*models.Coupon, error) {
	var coupon models.Coupon
	if err := r.db.First(&coupon, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("coupon with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get coupon by ID %s: %w", id, err)
	}
	return &coupon, nil
}

// GetByCode retrieves a single coupon by its normalized code.
func (r *GORMCouponRepository) GetByCode(code string) (*models.Coupon, error) {
	var coupon models.Coupon
	if err := r.db.First(&coupon, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("coupon with code %s not found", code)
		}
		return nil, fmt.Errorf("failed to get coupon by code %s: %w", code, err)
	}
	return &coupon, nil
}

// Create creates a new coupon in the database.
func (r *GORMCouponRepository) Create(coupon *models.Coupon) error {
	if coupon.ID == "" {
		coupon.ID = uuid.New().String()
	}
	if err := r.db.Create(coupon).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("coupon with code %s already exists", coupon.Code)
		}
		return fmt.Errorf("failed to create coupon: %w", err)
	}
	return nil
}

// Deactivate marks a coupon inactive. Coupons referenced by usages are never
// physically deleted, so deactivation is the only removal path.
func (r *GORMCouponRepository) Deactivate(id string) error {
	res := r.db.Model(&models.Coupon{}).Where("id = ?", id).Update("is_active", false)
	if res.Error != nil {
		return fmt.Errorf("failed to deactivate coupon: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("coupon with ID %s not found for deactivation", id)
	}
	return nil
}

// CountUsagesByUser returns how many times the user has redeemed the coupon.
func (r *GORMCouponRepository) CountUsagesByUser(couponID, userID string) (int, error) {
	var count int64
	err := r.db.Model(&models.CouponUsage{}).
		Where("coupon_id = ? AND user_id = ?", couponID, userID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count coupon usages: %w", err)
	}
	return int(count), nil
}

// RegisterRedemption records one redemption: a conditional counter increment
// on the coupon plus a usage-row insert, in a single transaction. The guard
// `usage_limit IS NULL OR usage_count < usage_limit` makes the increment safe
// under concurrent redemptions without an application-layer lock.
func (r *GORMCouponRepository) RegisterRedemption(usage *models.CouponUsage) error {
	if usage.ID == "" {
		usage.ID = uuid.New().String()
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Coupon{}).
			Where("id = ? AND (usage_limit IS NULL OR usage_count < usage_limit)", usage.CouponID).
			Updates(map[string]interface{}{
				"usage_count":          gorm.Expr("usage_count + 1"),
				"total_discount_given": gorm.Expr("total_discount_given + ?", usage.DiscountAmount),
			})
		if res.Error != nil {
			return fmt.Errorf("failed to increment coupon usage: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			// Either the coupon is gone or the limit guard rejected us.
			var count int64
			if err := tx.Model(&models.Coupon{}).Where("id = ?", usage.CouponID).Count(&count).Error; err != nil {
				return fmt.Errorf("failed to check coupon existence: %w", err)
			}
			if count == 0 {
				return fmt.Errorf("coupon with ID %s not found for redemption", usage.CouponID)
			}
			return ErrUsageLimitExceeded
		}
		if err := tx.Create(usage).Error; err != nil {
			return fmt.Errorf("failed to record coupon usage: %w", err)
		}
		return nil
	})
}

// SumDiscountGiven returns the aggregate discount recorded for the coupon.
func (r *GORMCouponRepository) SumDiscountGiven(couponID string) (float64, error) {
	var total float64
	err := r.db.Model(&models.CouponUsage{}).
		Where("coupon_id = ?", couponID).
		Select("COALESCE(SUM(discount_amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum coupon discounts: %w", err)
	}
	return total, nil
}
