package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront/internal/apperrors"
	"storefront/internal/models"
	"storefront/internal/repositories"
)

// CouponService handles business logic related to coupons.
type CouponService struct {
	couponRepo repositories.CouponRepository
	audit      *AuditService
}

// NewCouponService creates a new CouponService.
func NewCouponService(couponRepo repositories.CouponRepository, audit *AuditService) *CouponService {
	return &CouponService{
		couponRepo: couponRepo,
		audit:      audit,
	}
}

// CreateCoupon creates a coupon on behalf of an admin actor.
func (s *CouponService) CreateCoupon(actor *models.User, coupon *models.Coupon) error {
	code, ok := models.NormalizeCouponCode(coupon.Code)
	if !ok {
		return apperrors.New(apperrors.KindValidation,
			"coupon code %q is invalid: only letters, digits, hyphen and underscore are allowed", coupon.Code)
	}
	coupon.Code = code

	if coupon.DiscountType == models.DiscountPercentage && coupon.DiscountValue > 100 {
		return apperrors.New(apperrors.KindValidation, "percentage discount cannot exceed 100")
	}
	if !coupon.ValidFrom.Before(coupon.ValidUntil) {
		return apperrors.New(apperrors.KindValidation, "valid_from must be before valid_until")
	}

	if err := s.couponRepo.Create(coupon); err != nil {
		if strings.Contains(err.Error(), "already exists") {
			return apperrors.Wrap(apperrors.KindConflict, err, "coupon code %s already exists", coupon.Code)
		}
		return apperrors.Wrap(apperrors.KindInternal, err, "could not create coupon")
	}

	s.audit.Record(actor, "coupon.create", "coupon", coupon.ID,
		fmt.Sprintf("created coupon %s (%s %.2f)", coupon.Code, coupon.DiscountType, coupon.DiscountValue))
	return nil
}

// ListCoupons retrieves all coupons.
func (s *CouponService) ListCoupons() ([]models.Coupon, error) {
	coupons, err := s.couponRepo.GetAll()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, err, "could not list coupons")
	}
	return coupons, nil
}

// GetCoupon retrieves a single coupon by its ID.
func (s *CouponService) GetCoupon(id string) (*models.Coupon, error) {
	coupon, err := s.couponRepo.GetByID(id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return nil, apperrors.Wrap(apperrors.KindNotFound, err, "coupon not found")
		}
		return nil, apperrors.Wrap(apperrors.KindInternal, err, "could not get coupon")
	}
	return coupon, nil
}

// DeactivateCoupon marks a coupon inactive on behalf of an admin actor.
// Coupons referenced by past redemptions are never deleted.
func (s *CouponService) DeactivateCoupon(actor *models.User, id string) error {
	if err := s.couponRepo.Deactivate(id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return apperrors.Wrap(apperrors.KindNotFound, err, "coupon not found")
		}
		return apperrors.Wrap(apperrors.KindInternal, err, "could not deactivate coupon")
	}
	s.audit.Record(actor, "coupon.deactivate", "coupon", id, "deactivated coupon")
	return nil
}

// ValidateCoupon checks a coupon against a cart and returns the discount it
// would grant. No usage is consumed here; usage is recorded only when the
// order is actually created, so repeated validations are idempotent.
func (s *CouponService) ValidateCoupon(code, userID string, cartTotal float64, items []models.CartLine) (float64, *models.Coupon, error) {
	normalized, ok := models.NormalizeCouponCode(code)
	if !ok {
		return 0, nil, apperrors.New(apperrors.KindValidation, "coupon code %q is invalid", code)
	}

	coupon, err := s.couponRepo.GetByCode(normalized)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return 0, nil, apperrors.New(apperrors.KindNotFound, "coupon %s not found", normalized)
		}
		return 0, nil, apperrors.Wrap(apperrors.KindInternal, err, "could not look up coupon")
	}

	priorUses, err := s.couponRepo.CountUsagesByUser(coupon.ID, userID)
	if err != nil {
		return 0, nil, apperrors.Wrap(apperrors.KindInternal, err, "could not count coupon usages")
	}

	eval := EvaluateCoupon(coupon, priorUses, cartTotal, items, time.Now())
	if !eval.Valid {
		return 0, nil, apperrors.New(apperrors.KindBusinessRule, "%s", eval.Message)
	}
	return eval.Discount, coupon, nil
}

// RedeemCoupon records one redemption against an order. The repository
// enforces the global usage limit atomically; a lost race on the last
// remaining use surfaces as a business-rule error.
func (s *CouponService) RedeemCoupon(couponID, orderID, userID string, discount float64) error {
	usage := &models.CouponUsage{
		CouponID:       couponID,
		OrderID:        orderID,
		UserID:         userID,
		DiscountAmount: discount,
	}
	if err := s.couponRepo.RegisterRedemption(usage); err != nil {
		if errors.Is(err, repositories.ErrUsageLimitExceeded) {
			return apperrors.Wrap(apperrors.KindBusinessRule, err, "coupon usage limit reached")
		}
		return apperrors.Wrap(apperrors.KindInternal, err, "could not record coupon redemption")
	}
	return nil
}

// TotalDiscountGiven returns the aggregate discount recorded for a coupon.
func (s *CouponService) TotalDiscountGiven(couponID string) (float64, error) {
	total, err := s.couponRepo.SumDiscountGiven(couponID)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.KindInternal, err, "could not sum coupon discounts")
	}
	return total, nil
}
