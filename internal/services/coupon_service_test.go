package services_test

import (
	"testing"
	"time"

	"storefront/internal/apperrors"
	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/stretchr/testify/assert"
)

func newCouponService() (*services.CouponService, *repositories.MockCouponRepository) {
	repo := repositories.NewMockCouponRepository()
	return services.NewCouponService(repo, nil), repo
}

func seedCoupon(t *testing.T, repo *repositories.MockCouponRepository, coupon *models.Coupon) *models.Coupon {
	t.Helper()
	now := time.Now()
	if coupon.ValidFrom.IsZero() {
		coupon.ValidFrom = now.Add(-time.Hour)
	}
	if coupon.ValidUntil.IsZero() {
		coupon.ValidUntil = now.Add(time.Hour)
	}
	coupon.IsActive = true
	assert.NoError(t, repo.Create(coupon))
	return coupon
}

func TestCouponService_CreateCoupon(t *testing.T) {
	service, _ := newCouponService()
	now := time.Now()

	coupon := &models.Coupon{
		Code:          "  summer25 ",
		DiscountType:  models.DiscountPercentage,
		DiscountValue: 25,
		ValidFrom:     now,
		ValidUntil:    now.Add(24 * time.Hour),
		IsActive:      true,
	}
	assert.NoError(t, service.CreateCoupon(nil, coupon))
	assert.Equal(t, "SUMMER25", coupon.Code, "codes are normalized to uppercase")

	// Duplicate code.
	dup := &models.Coupon{
		Code:          "SUMMER25",
		DiscountType:  models.DiscountPercentage,
		DiscountValue: 10,
		ValidFrom:     now,
		ValidUntil:    now.Add(24 * time.Hour),
	}
	err := service.CreateCoupon(nil, dup)
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))

	// Malformed code.
	err = service.CreateCoupon(nil, &models.Coupon{
		Code:          "has spaces",
		DiscountType:  models.DiscountPercentage,
		DiscountValue: 10,
		ValidFrom:     now,
		ValidUntil:    now.Add(24 * time.Hour),
	})
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	// Percentage above 100.
	err = service.CreateCoupon(nil, &models.Coupon{
		Code:          "TOOBIG",
		DiscountType:  models.DiscountPercentage,
		DiscountValue: 150,
		ValidFrom:     now,
		ValidUntil:    now.Add(24 * time.Hour),
	})
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	// Inverted validity window.
	err = service.CreateCoupon(nil, &models.Coupon{
		Code:          "BACKWARDS",
		DiscountType:  models.DiscountPercentage,
		DiscountValue: 10,
		ValidFrom:     now.Add(24 * time.Hour),
		ValidUntil:    now,
	})
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestCouponService_ValidateIsIdempotent(t *testing.T) {
	service, repo := newCouponService()
	seedCoupon(t, repo, &models.Coupon{
		ID:            "coupon-1",
		Code:          "REPEAT",
		DiscountType:  models.DiscountFixedAmount,
		DiscountValue: 5,
		UsageLimit:    intPtr(1),
	})

	for i := 0; i < 3; i++ {
		discount, _, err := service.ValidateCoupon("repeat", "user-1", 100, nil)
		assert.NoError(t, err)
		assert.Equal(t, 5.0, discount)
	}

	coupon, _ := repo.GetByID("coupon-1")
	assert.Equal(t, 0, coupon.UsageCount, "validation must never consume usage")
}

func TestCouponService_PerUserLimit(t *testing.T) {
	service, repo := newCouponService()
	coupon := seedCoupon(t, repo, &models.Coupon{
		ID:            "coupon-1",
		Code:          "PERUSER",
		DiscountType:  models.DiscountFixedAmount,
		DiscountValue: 5,
		PerUserLimit:  intPtr(1),
	})

	assert.NoError(t, service.RedeemCoupon(coupon.ID, "order-1", "user-1", 5))

	_, _, err := service.ValidateCoupon("PERUSER", "user-1", 100, nil)
	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindBusinessRule))

	discount, _, err := service.ValidateCoupon("PERUSER", "user-2", 100, nil)
	assert.NoError(t, err, "another user's redemptions do not count against this user")
	assert.Equal(t, 5.0, discount)
}

func TestCouponService_RedeemAtUsageLimit(t *testing.T) {
	service, repo := newCouponService()
	coupon := seedCoupon(t, repo, &models.Coupon{
		ID:            "coupon-1",
		Code:          "CAPPED",
		DiscountType:  models.DiscountFixedAmount,
		DiscountValue: 5,
		UsageLimit:    intPtr(1),
	})

	assert.NoError(t, service.RedeemCoupon(coupon.ID, "order-1", "user-1", 5))

	err := service.RedeemCoupon(coupon.ID, "order-2", "user-2", 5)
	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindBusinessRule))

	stored, _ := repo.GetByID(coupon.ID)
	assert.Equal(t, 1, stored.UsageCount)
}

func TestCouponService_TotalDiscountGiven(t *testing.T) {
	service, repo := newCouponService()
	coupon := seedCoupon(t, repo, &models.Coupon{
		ID:            "coupon-1",
		Code:          "TRACKED",
		DiscountType:  models.DiscountFixedAmount,
		DiscountValue: 5,
	})

	assert.NoError(t, service.RedeemCoupon(coupon.ID, "order-1", "user-1", 5))
	assert.NoError(t, service.RedeemCoupon(coupon.ID, "order-2", "user-2", 3.5))

	total, err := service.TotalDiscountGiven(coupon.ID)
	assert.NoError(t, err)
	assert.Equal(t, 8.5, total)
}

func TestCouponService_Deactivate(t *testing.T) {
	service, repo := newCouponService()
	coupon := seedCoupon(t, repo, &models.Coupon{
		ID:            "coupon-1",
		Code:          "SHORTLIVED",
		DiscountType:  models.DiscountFixedAmount,
		DiscountValue: 5,
	})

	assert.NoError(t, service.DeactivateCoupon(nil, coupon.ID))

	_, _, err := service.ValidateCoupon("SHORTLIVED", "user-1", 100, nil)
	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindBusinessRule))

	err = service.DeactivateCoupon(nil, "no-such-coupon")
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}
