package repositories

import (
	"fmt"
	"sync"
	"time"

	"storefront/internal/models"

	"github.com/google/uuid"
)

// MockCouponRepository is an in-memory implementation of CouponRepository.
type MockCouponRepository struct {
	coupons map[string]models.Coupon
	usages  []models.CouponUsage
	mu      sync.RWMutex
}

// NewMockCouponRepository creates a new instance of MockCouponRepository.
func NewMockCouponRepository() *MockCouponRepository {
	return &MockCouponRepository{
		coupons: make(map[string]models.Coupon),
	}
}

// GetAll returns all coupons.
func (r *MockCouponRepository) GetAll() ([]models.Coupon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	couponList := make([]models.Coupon, 0, len(r.coupons))
	for _, c := range r.coupons {
		couponList = append(couponList, c)
	}
	return couponList, nil
}

// GetByID returns a coupon by its ID.
func (r *MockCouponRepository) GetByID(id string) (*models.Coupon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	coupon, ok := r.coupons[id]
	if !ok {
		return nil, fmt.Errorf("coupon with ID %s not found", id)
	}
	return &coupon, nil
}

// GetByCode returns a coupon by its code.
func (r *MockCouponRepository) GetByCode(code string) (*models.Coupon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.coupons {
		if c.Code == code {
			coupon := c
			return &coupon, nil
		}
	}
	return nil, fmt.Errorf("coupon with code %s not found", code)
}

// Create adds a new coupon.
func (r *MockCouponRepository) Create(coupon *models.Coupon) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.coupons {
		if c.Code == coupon.Code {
			return fmt.Errorf("coupon with code %s already exists", coupon.Code)
		}
	}
	if coupon.ID == "" {
		coupon.ID = uuid.New().String()
	}
	r.coupons[coupon.ID] = *coupon
	return nil
}

// Deactivate marks a coupon inactive.
func (r *MockCouponRepository) Deactivate(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	coupon, ok := r.coupons[id]
	if !ok {
		return fmt.Errorf("coupon with ID %s not found for deactivation", id)
	}
	coupon.IsActive = false
	r.coupons[id] = coupon
	return nil
}

// CountUsagesByUser returns how many times the user has redeemed the coupon.
func (r *MockCouponRepository) CountUsagesByUser(couponID, userID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, u := range r.usages {
		if u.CouponID == couponID && u.UserID == userID {
			count++
		}
	}
	return count, nil
}

// RegisterRedemption increments the coupon's counters and records the usage.
func (r *MockCouponRepository) RegisterRedemption(usage *models.CouponUsage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	coupon, ok := r.coupons[usage.CouponID]
	if !ok {
		return fmt.Errorf("coupon with ID %s not found for redemption", usage.CouponID)
	}
	if coupon.UsageLimit != nil && coupon.UsageCount >= *coupon.UsageLimit {
		return ErrUsageLimitExceeded
	}
	coupon.UsageCount++
	coupon.TotalDiscountGiven += usage.DiscountAmount
	r.coupons[usage.CouponID] = coupon

	if usage.ID == "" {
		usage.ID = uuid.New().String()
	}
	usage.CreatedAt = time.Now()
	r.usages = append(r.usages, *usage)
	return nil
}

// SumDiscountGiven returns the aggregate discount recorded for the coupon.
func (r *MockCouponRepository) SumDiscountGiven(couponID string) (float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var total float64
	for _, u := range r.usages {
		if u.CouponID == couponID {
			total += u.DiscountAmount
		}
	}
	return total, nil
}
