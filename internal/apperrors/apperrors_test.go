package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"storefront/internal/apperrors"

	"github.com/stretchr/testify/assert"
)

func TestKindClassification(t *testing.T) {
	err := apperrors.New(apperrors.KindNotFound, "coupon %s not found", "SAVE10")
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	assert.False(t, apperrors.IsKind(err, apperrors.KindConflict))
	assert.Equal(t, "coupon SAVE10 not found", err.Error())
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := apperrors.Wrap(apperrors.KindInternal, cause, "could not load cart")

	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "could not load cart")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestKindSurvivesWrapping(t *testing.T) {
	inner := apperrors.New(apperrors.KindBusinessRule, "cart is empty")
	outer := fmt.Errorf("checkout failed: %w", inner)

	assert.Equal(t, apperrors.KindBusinessRule, apperrors.KindOf(outer))
}

func TestUnclassifiedErrors(t *testing.T) {
	assert.Equal(t, apperrors.KindUnknown, apperrors.KindOf(errors.New("plain")))
	assert.Equal(t, "UNKNOWN", apperrors.KindUnknown.String())
	assert.Equal(t, "BUSINESS_RULE", apperrors.KindBusinessRule.String())
}
