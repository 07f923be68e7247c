package services_test

import (
	"testing"
	"time"

	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

// activeCoupon returns a coupon valid around `now` with no limits set.
func activeCoupon(code string, dt models.DiscountType, value float64) *models.Coupon {
	now := time.Now()
	return &models.Coupon{
		ID:            "coupon-" + code,
		Code:          code,
		DiscountType:  dt,
		DiscountValue: value,
		ValidFrom:     now.Add(-time.Hour),
		ValidUntil:    now.Add(time.Hour),
		IsActive:      true,
	}
}

func TestEvaluateCoupon_PercentageClampedToMaxDiscount(t *testing.T) {
	coupon := activeCoupon("SAVE10", models.DiscountPercentage, 10)
	coupon.MaxDiscount = floatPtr(50)

	eval := services.EvaluateCoupon(coupon, 0, 1000, nil, time.Now())

	assert.True(t, eval.Valid)
	assert.Equal(t, 50.0, eval.Discount, "10 percent of 1000 should clamp to the 50 max discount")
}

func TestEvaluateCoupon_PercentageWithoutCap(t *testing.T) {
	coupon := activeCoupon("SAVE10", models.DiscountPercentage, 10)

	eval := services.EvaluateCoupon(coupon, 0, 1000, nil, time.Now())

	assert.True(t, eval.Valid)
	assert.Equal(t, 100.0, eval.Discount)
}

func TestEvaluateCoupon_FixedAmountClampedToCartTotal(t *testing.T) {
	coupon := activeCoupon("FLAT20", models.DiscountFixedAmount, 20)

	eval := services.EvaluateCoupon(coupon, 0, 15, nil, time.Now())

	assert.True(t, eval.Valid)
	assert.Equal(t, 15.0, eval.Discount, "fixed discount must never exceed the cart total")
}

func TestEvaluateCoupon_DiscountNeverExceedsCartTotal(t *testing.T) {
	// 100% with a generous cap still cannot discount more than the cart.
	coupon := activeCoupon("ALL", models.DiscountPercentage, 100)
	coupon.MaxDiscount = floatPtr(10000)

	for _, total := range []float64{0.5, 10, 99.99, 12345} {
		eval := services.EvaluateCoupon(coupon, 0, total, nil, time.Now())
		assert.True(t, eval.Valid)
		assert.LessOrEqual(t, eval.Discount, total)
		assert.GreaterOrEqual(t, eval.Discount, 0.0)
	}
}

func TestEvaluateCoupon_Inactive(t *testing.T) {
	coupon := activeCoupon("OFF", models.DiscountPercentage, 10)
	coupon.IsActive = false

	eval := services.EvaluateCoupon(coupon, 0, 100, nil, time.Now())

	assert.False(t, eval.Valid)
	assert.Equal(t, services.RejectInactive, eval.Reason)
}

func TestEvaluateCoupon_UnknownDiscountTypeRejected(t *testing.T) {
	coupon := activeCoupon("MYSTERY", models.DiscountType("BOGO"), 10)

	eval := services.EvaluateCoupon(coupon, 0, 100, nil, time.Now())

	assert.False(t, eval.Valid, "an unknown discount type must not validate as a zero discount")
	assert.Equal(t, services.RejectInactive, eval.Reason)
	assert.Zero(t, eval.Discount)
}

func TestEvaluateCoupon_TimeWindow(t *testing.T) {
	coupon := activeCoupon("WINDOW", models.DiscountPercentage, 10)

	early := services.EvaluateCoupon(coupon, 0, 100, nil, coupon.ValidFrom.Add(-time.Minute))
	assert.False(t, early.Valid)
	assert.Equal(t, services.RejectNotYetValid, early.Reason)

	late := services.EvaluateCoupon(coupon, 0, 100, nil, coupon.ValidUntil.Add(time.Minute))
	assert.False(t, late.Valid)
	assert.Equal(t, services.RejectExpired, late.Reason)

	within := services.EvaluateCoupon(coupon, 0, 100, nil, coupon.ValidFrom.Add(time.Minute))
	assert.True(t, within.Valid)
}

func TestEvaluateCoupon_UsageLimit(t *testing.T) {
	coupon := activeCoupon("LIMITED", models.DiscountPercentage, 10)
	coupon.UsageLimit = intPtr(5)
	coupon.UsageCount = 5

	eval := services.EvaluateCoupon(coupon, 0, 100, nil, time.Now())

	assert.False(t, eval.Valid)
	assert.Equal(t, services.RejectUsageLimitReached, eval.Reason)
}

func TestEvaluateCoupon_PerUserLimit(t *testing.T) {
	coupon := activeCoupon("ONCE", models.DiscountPercentage, 10)
	coupon.PerUserLimit = intPtr(2)

	// The user who exhausted their allowance is rejected.
	atLimit := services.EvaluateCoupon(coupon, 2, 100, nil, time.Now())
	assert.False(t, atLimit.Valid)
	assert.Equal(t, services.RejectPerUserLimitReached, atLimit.Reason)

	// Another user with no prior redemptions still succeeds.
	fresh := services.EvaluateCoupon(coupon, 0, 100, nil, time.Now())
	assert.True(t, fresh.Valid)
}

func TestEvaluateCoupon_MinPurchase(t *testing.T) {
	coupon := activeCoupon("BIGCART", models.DiscountFixedAmount, 10)
	coupon.MinPurchase = floatPtr(50)

	below := services.EvaluateCoupon(coupon, 0, 49.99, nil, time.Now())
	assert.False(t, below.Valid)
	assert.Equal(t, services.RejectMinPurchaseNotMet, below.Reason)

	at := services.EvaluateCoupon(coupon, 0, 50, nil, time.Now())
	assert.True(t, at.Valid)
}

func TestEvaluateCoupon_ScopedToCategoriesAndProducts(t *testing.T) {
	coupon := activeCoupon("BOOKS10", models.DiscountPercentage, 10)
	coupon.Categories = models.StringSet{"books"}
	coupon.ProductIDs = models.StringSet{"prod-special"}

	noMatch := []models.CartLine{
		{ProductID: "prod-1", Category: "electronics", Quantity: 1, UnitPrice: 100},
	}
	eval := services.EvaluateCoupon(coupon, 0, 100, noMatch, time.Now())
	assert.False(t, eval.Valid)
	assert.Equal(t, services.RejectNotApplicable, eval.Reason)

	categoryMatch := []models.CartLine{
		{ProductID: "prod-1", Category: "electronics", Quantity: 1, UnitPrice: 100},
		{ProductID: "prod-2", Category: "books", Quantity: 1, UnitPrice: 100},
	}
	eval = services.EvaluateCoupon(coupon, 0, 200, categoryMatch, time.Now())
	assert.True(t, eval.Valid)
	// One qualifying item discounts the whole cart total.
	assert.Equal(t, 20.0, eval.Discount)

	productMatch := []models.CartLine{
		{ProductID: "prod-special", Category: "electronics", Quantity: 1, UnitPrice: 100},
	}
	eval = services.EvaluateCoupon(coupon, 0, 100, productMatch, time.Now())
	assert.True(t, eval.Valid)
}

func TestEvaluateCoupon_UnscopedAppliesToAnyCart(t *testing.T) {
	coupon := activeCoupon("ANY", models.DiscountPercentage, 10)

	eval := services.EvaluateCoupon(coupon, 0, 100, []models.CartLine{
		{ProductID: "prod-1", Category: "whatever", Quantity: 1, UnitPrice: 100},
	}, time.Now())

	assert.True(t, eval.Valid)
	assert.Equal(t, 10.0, eval.Discount)
}

func TestNormalizeCouponCode(t *testing.T) {
	code, ok := models.NormalizeCouponCode("  save10 ")
	assert.True(t, ok)
	assert.Equal(t, "SAVE10", code)

	code, ok = models.NormalizeCouponCode("BLACK_FRIDAY-2024")
	assert.True(t, ok)
	assert.Equal(t, "BLACK_FRIDAY-2024", code)

	_, ok = models.NormalizeCouponCode("no spaces allowed")
	assert.False(t, ok)

	_, ok = models.NormalizeCouponCode("")
	assert.False(t, ok)

	_, ok = models.NormalizeCouponCode("emoji🎉")
	assert.False(t, ok)
}
