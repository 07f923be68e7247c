package services_test

import (
	"testing"

	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestTransitionEffects_LegalPaths(t *testing.T) {
	tests := []struct {
		name    string
		from    models.OrderStatus
		to      models.OrderStatus
		effects []services.SideEffect
	}{
		{
			name:    "pending to confirmed decrements stock",
			from:    models.OrderPending,
			to:      models.OrderConfirmed,
			effects: []services.SideEffect{services.EffectDecrementStock, services.EffectNotify},
		},
		{
			name:    "confirmed to processing",
			from:    models.OrderConfirmed,
			to:      models.OrderProcessing,
			effects: []services.SideEffect{services.EffectNotify},
		},
		{
			name:    "processing to shipped",
			from:    models.OrderProcessing,
			to:      models.OrderShipped,
			effects: []services.SideEffect{services.EffectNotify},
		},
		{
			name:    "shipped to delivered",
			from:    models.OrderShipped,
			to:      models.OrderDelivered,
			effects: []services.SideEffect{services.EffectNotify},
		},
		{
			name:    "cancelling a pending order restores nothing",
			from:    models.OrderPending,
			to:      models.OrderCancelled,
			effects: []services.SideEffect{services.EffectFailPayment, services.EffectNotify},
		},
		{
			name:    "cancelling a confirmed order restores stock",
			from:    models.OrderConfirmed,
			to:      models.OrderCancelled,
			effects: []services.SideEffect{services.EffectRestoreStock, services.EffectFailPayment, services.EffectNotify},
		},
		{
			name:    "cancelling a processing order restores stock",
			from:    models.OrderProcessing,
			to:      models.OrderCancelled,
			effects: []services.SideEffect{services.EffectRestoreStock, services.EffectFailPayment, services.EffectNotify},
		},
		{
			name:    "cancelling a shipped order restores stock",
			from:    models.OrderShipped,
			to:      models.OrderCancelled,
			effects: []services.SideEffect{services.EffectRestoreStock, services.EffectFailPayment, services.EffectNotify},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			effects, ok := services.TransitionEffects(tt.from, tt.to)
			assert.True(t, ok)
			assert.Equal(t, tt.effects, effects)
		})
	}
}

func TestTransitionEffects_IllegalPaths(t *testing.T) {
	statuses := []models.OrderStatus{
		models.OrderPending,
		models.OrderConfirmed,
		models.OrderProcessing,
		models.OrderShipped,
		models.OrderDelivered,
		models.OrderCancelled,
	}

	// Terminal states have no way out.
	for _, to := range statuses {
		_, ok := services.TransitionEffects(models.OrderDelivered, to)
		assert.False(t, ok, "DELIVERED -> %s must be illegal", to)
		_, ok = services.TransitionEffects(models.OrderCancelled, to)
		assert.False(t, ok, "CANCELLED -> %s must be illegal", to)
	}

	// No skipping forward, no moving backward, no self loops.
	illegal := [][2]models.OrderStatus{
		{models.OrderPending, models.OrderProcessing},
		{models.OrderPending, models.OrderShipped},
		{models.OrderPending, models.OrderDelivered},
		{models.OrderConfirmed, models.OrderShipped},
		{models.OrderConfirmed, models.OrderPending},
		{models.OrderProcessing, models.OrderDelivered},
		{models.OrderShipped, models.OrderProcessing},
		{models.OrderPending, models.OrderPending},
		{models.OrderConfirmed, models.OrderConfirmed},
	}
	for _, pair := range illegal {
		_, ok := services.TransitionEffects(pair[0], pair[1])
		assert.False(t, ok, "%s -> %s must be illegal", pair[0], pair[1])
	}
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	assert.True(t, models.OrderDelivered.IsTerminal())
	assert.True(t, models.OrderCancelled.IsTerminal())
	assert.False(t, models.OrderPending.IsTerminal())
	assert.False(t, models.OrderConfirmed.IsTerminal())
	assert.False(t, models.OrderProcessing.IsTerminal())
	assert.False(t, models.OrderShipped.IsTerminal())
}
