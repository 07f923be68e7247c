package services

import "storefront/internal/models"

// SideEffect is one action an order-status transition triggers.
type SideEffect int

const (
	// EffectDecrementStock subtracts each item's quantity from its variant.
	EffectDecrementStock SideEffect = iota
	// EffectRestoreStock adds each item's quantity back to its variant.
	EffectRestoreStock
	// EffectFailPayment forces the order's payment status to FAILED.
	EffectFailPayment
	// EffectNotify publishes a status-change event for the email consumer.
	EffectNotify
)

type transitionKey struct {
	from, to models.OrderStatus
}

// transitionTable is the full set of legal order-status transitions and the
// ordered side effects each one triggers. Anything not listed here is an
// illegal transition. Stock moves in exactly two places: down when entering
// CONFIRMED, up when cancelling an order whose stock was already decremented.
// A PENDING order never decremented stock, so cancelling it restores nothing.
var transitionTable = map[transitionKey][]SideEffect{
	{models.OrderPending, models.OrderConfirmed}:    {EffectDecrementStock, EffectNotify},
	{models.OrderConfirmed, models.OrderProcessing}: {EffectNotify},
	{models.OrderProcessing, models.OrderShipped}:   {EffectNotify},
	{models.OrderShipped, models.OrderDelivered}:    {EffectNotify},

	{models.OrderPending, models.OrderCancelled}:    {EffectFailPayment, EffectNotify},
	{models.OrderConfirmed, models.OrderCancelled}:  {EffectRestoreStock, EffectFailPayment, EffectNotify},
	{models.OrderProcessing, models.OrderCancelled}: {EffectRestoreStock, EffectFailPayment, EffectNotify},
	{models.OrderShipped, models.OrderCancelled}:    {EffectRestoreStock, EffectFailPayment, EffectNotify},
}

// TransitionEffects returns the ordered side effects of moving an order from
// one status to another, and whether that transition is legal at all.
func TransitionEffects(from, to models.OrderStatus) ([]SideEffect, bool) {
	effects, ok := transitionTable[transitionKey{from: from, to: to}]
	return effects, ok
}

func effectsContain(effects []SideEffect, e SideEffect) bool {
	for _, x := range effects {
		if x == e {
			return true
		}
	}
	return false
}
