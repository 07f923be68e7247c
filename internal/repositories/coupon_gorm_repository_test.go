package repositories_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"storefront/internal/models"
	"storefront/internal/repositories"

	"github.com/stretchr/testify/assert"
)

func testCoupon(code string) *models.Coupon {
	now := time.Now()
	return &models.Coupon{
		ID:            newID(),
		Code:          code,
		DiscountType:  models.DiscountFixedAmount,
		DiscountValue: 5,
		ValidFrom:     now.Add(-time.Hour),
		ValidUntil:    now.Add(time.Hour),
		IsActive:      true,
	}
}

func TestGORMCouponRepository_CreateAndLookup(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewGORMCouponRepository(db)

	code := "LOOKUP-" + strings.ToUpper(newID()[:8])
	coupon := testCoupon(code)
	coupon.Categories = models.StringSet{"books", "music"}
	assert.NoError(t, repo.Create(coupon))

	byID, err := repo.GetByID(coupon.ID)
	assert.NoError(t, err)
	assert.Equal(t, code, byID.Code)
	assert.ElementsMatch(t, []string{"books", "music"}, byID.Categories)

	byCode, err := repo.GetByCode(code)
	assert.NoError(t, err)
	assert.Equal(t, coupon.ID, byCode.ID)

	_, err = repo.GetByCode("NO-SUCH-CODE")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGORMCouponRepository_RegisterRedemption(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewGORMCouponRepository(db)

	coupon := testCoupon("REDEEM-" + strings.ToUpper(newID()[:8]))
	limit := 2
	coupon.UsageLimit = &limit
	assert.NoError(t, repo.Create(coupon))

	userID := newID()
	assert.NoError(t, repo.RegisterRedemption(&models.CouponUsage{
		CouponID: coupon.ID, OrderID: newID(), UserID: userID, DiscountAmount: 5,
	}))
	assert.NoError(t, repo.RegisterRedemption(&models.CouponUsage{
		CouponID: coupon.ID, OrderID: newID(), UserID: userID, DiscountAmount: 3,
	}))

	// The limit guard rejects the third redemption and rolls back the usage row.
	err := repo.RegisterRedemption(&models.CouponUsage{
		CouponID: coupon.ID, OrderID: newID(), UserID: userID, DiscountAmount: 5,
	})
	assert.True(t, errors.Is(err, repositories.ErrUsageLimitExceeded))

	stored, err := repo.GetByID(coupon.ID)
	assert.NoError(t, err)
	assert.Equal(t, 2, stored.UsageCount)
	assert.Equal(t, 8.0, stored.TotalDiscountGiven)

	count, err := repo.CountUsagesByUser(coupon.ID, userID)
	assert.NoError(t, err)
	assert.Equal(t, 2, count)

	total, err := repo.SumDiscountGiven(coupon.ID)
	assert.NoError(t, err)
	assert.Equal(t, 8.0, total)
}

func TestGORMCouponRepository_UnlimitedCoupon(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewGORMCouponRepository(db)

	coupon := testCoupon("FOREVER-" + strings.ToUpper(newID()[:8]))
	assert.NoError(t, repo.Create(coupon))

	for i := 0; i < 5; i++ {
		err := repo.RegisterRedemption(&models.CouponUsage{
			CouponID: coupon.ID, OrderID: newID(), UserID: newID(), DiscountAmount: 1,
		})
		assert.NoError(t, err)
	}

	stored, _ := repo.GetByID(coupon.ID)
	assert.Equal(t, 5, stored.UsageCount)
}

func TestGORMCouponRepository_RedemptionUnknownCoupon(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewGORMCouponRepository(db)

	err := repo.RegisterRedemption(&models.CouponUsage{
		CouponID: newID(), OrderID: newID(), UserID: newID(), DiscountAmount: 1,
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGORMCouponRepository_Deactivate(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewGORMCouponRepository(db)

	coupon := testCoupon("KILL-" + strings.ToUpper(newID()[:8]))
	assert.NoError(t, repo.Create(coupon))

	assert.NoError(t, repo.Deactivate(coupon.ID))
	stored, _ := repo.GetByID(coupon.ID)
	assert.False(t, stored.IsActive)

	err := repo.Deactivate(newID())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGORMCouponRepository_CountUsagesScopedToUser(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewGORMCouponRepository(db)

	coupon := testCoupon("SCOPED-" + strings.ToUpper(newID()[:8]))
	assert.NoError(t, repo.Create(coupon))

	alice, bob := newID(), newID()
	assert.NoError(t, repo.RegisterRedemption(&models.CouponUsage{
		CouponID: coupon.ID, OrderID: newID(), UserID: alice, DiscountAmount: 1,
	}))

	aliceCount, _ := repo.CountUsagesByUser(coupon.ID, alice)
	bobCount, _ := repo.CountUsagesByUser(coupon.ID, bob)
	assert.Equal(t, 1, aliceCount)
	assert.Equal(t, 0, bobCount)
}
