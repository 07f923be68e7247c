package services

import (
	"fmt"
	"time"

	"storefront/internal/models"
)

// RejectionReason identifies why a coupon did not apply to a cart.
type RejectionReason string

const (
	RejectNotFound            RejectionReason = "NOT_FOUND"
	RejectInactive            RejectionReason = "INACTIVE"
	RejectNotYetValid         RejectionReason = "NOT_YET_VALID"
	RejectExpired             RejectionReason = "EXPIRED"
	RejectUsageLimitReached   RejectionReason = "USAGE_LIMIT_REACHED"
	RejectPerUserLimitReached RejectionReason = "PER_USER_LIMIT_REACHED"
	RejectMinPurchaseNotMet   RejectionReason = "MIN_PURCHASE_NOT_MET"
	RejectNotApplicable       RejectionReason = "NOT_APPLICABLE"
)

// CouponEvaluation is the outcome of evaluating a coupon against a cart.
type CouponEvaluation struct {
	Valid    bool
	Discount float64
	Reason   RejectionReason
	Message  string
}

func rejected(reason RejectionReason, format string, args ...interface{}) CouponEvaluation {
	return CouponEvaluation{Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// EvaluateCoupon decides whether the coupon applies to the cart and computes
// the discount. It is a pure function: it never touches storage, so repeated
// evaluations without a checkout leave usage counters untouched. The caller
// supplies the user's prior redemption count for this coupon.
//
// Eligibility scoping note: when the coupon is restricted to categories or
// products, one matching cart item qualifies the whole cart and the discount
// is computed over the full cart total, not just the matching lines.
func EvaluateCoupon(coupon *models.Coupon, priorUserRedemptions int, cartTotal float64, items []models.CartLine, now time.Time) CouponEvaluation {
	if !coupon.IsActive {
		return rejected(RejectInactive, "coupon %s is not active", coupon.Code)
	}
	if now.Before(coupon.ValidFrom) {
		return rejected(RejectNotYetValid, "coupon %s is not valid before %s", coupon.Code, coupon.ValidFrom.Format(time.RFC3339))
	}
	if now.After(coupon.ValidUntil) {
		return rejected(RejectExpired, "coupon %s expired at %s", coupon.Code, coupon.ValidUntil.Format(time.RFC3339))
	}
	if coupon.UsageLimit != nil && coupon.UsageCount >= *coupon.UsageLimit {
		return rejected(RejectUsageLimitReached, "coupon %s has reached its usage limit", coupon.Code)
	}
	if coupon.PerUserLimit != nil && priorUserRedemptions >= *coupon.PerUserLimit {
		return rejected(RejectPerUserLimitReached, "you have already used coupon %s the maximum number of times", coupon.Code)
	}
	if coupon.MinPurchase != nil && cartTotal < *coupon.MinPurchase {
		return rejected(RejectMinPurchaseNotMet, "coupon %s requires a minimum purchase of %.2f", coupon.Code, *coupon.MinPurchase)
	}
	if len(coupon.Categories) > 0 || len(coupon.ProductIDs) > 0 {
		eligible := false
		for _, item := range items {
			if coupon.Categories.Contains(item.Category) || coupon.ProductIDs.Contains(item.ProductID) {
				eligible = true
				break
			}
		}
		if !eligible {
			return rejected(RejectNotApplicable, "coupon %s does not apply to any item in the cart", coupon.Code)
		}
	}

	var discount float64
	switch coupon.DiscountType {
	case models.DiscountPercentage:
		discount = cartTotal * coupon.DiscountValue / 100
		if coupon.MaxDiscount != nil && discount > *coupon.MaxDiscount {
			discount = *coupon.MaxDiscount
		}
	case models.DiscountFixedAmount:
		discount = coupon.DiscountValue
	default:
		// An unrecognized discount type never passes as a zero-discount success.
		return rejected(RejectInactive, "coupon %s is not active", coupon.Code)
	}
	if discount > cartTotal {
		discount = cartTotal
	}
	if discount < 0 {
		discount = 0
	}

	return CouponEvaluation{Valid: true, Discount: discount}
}
