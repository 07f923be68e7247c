package services

import (
	"errors"
	"fmt"
	"log"

	"storefront/internal/apperrors"
	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/pkg/rabbitmq"
)

// OrderNotifier publishes order status events for the email consumer.
// Satisfied by *rabbitmq.Client.
type OrderNotifier interface {
	PublishOrderStatusChanged(event rabbitmq.OrderStatusEvent) error
}

// CheckoutRequest carries the caller's checkout input.
type CheckoutRequest struct {
	CouponCode      string `json:"coupon_code" validate:"omitempty,min=2,max=50"`
	ShippingAddress string `json:"shipping_address" validate:"required,min=5,max=500"`
	Phone           string `json:"phone" validate:"required,min=5,max=30"`
}

// OrderService owns order creation and the order status state machine.
type OrderService struct {
	orderRepo     repositories.OrderRepository
	cartRepo      repositories.CartRepository
	inventoryRepo repositories.InventoryRepository
	userRepo      repositories.UserRepository
	couponService *CouponService
	notifier      OrderNotifier
	audit         *AuditService
}

// NewOrderService creates a new OrderService.
func NewOrderService(
	orderRepo repositories.OrderRepository,
	cartRepo repositories.CartRepository,
	inventoryRepo repositories.InventoryRepository,
	userRepo repositories.UserRepository,
	couponService *CouponService,
	notifier OrderNotifier,
	audit *AuditService,
) *OrderService {
	return &OrderService{
		orderRepo:     orderRepo,
		cartRepo:      cartRepo,
		inventoryRepo: inventoryRepo,
		userRepo:      userRepo,
		couponService: couponService,
		notifier:      notifier,
		audit:         audit,
	}
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrdersByUser retrieves all orders of a user.
func (s *OrderService) GetOrdersByUser(userID string) ([]models.Order, error) {
	return s.orderRepo.GetByUserID(userID)
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindNotFound, err, "order not found")
	}
	return order, nil
}

// Checkout converts the user's cart into a PENDING order, applying a coupon
// discount if a code was supplied. Unit prices are snapshotted at this point
// and never track later price changes. Stock is not touched here; it moves
// only when the order is confirmed.
func (s *OrderService) Checkout(userID string, req CheckoutRequest) (*models.Order, error) {
	cart, err := s.cartRepo.GetByUserID(userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, err, "could not load cart")
	}
	if len(cart.Items) == 0 {
		return nil, apperrors.New(apperrors.KindBusinessRule, "cart is empty")
	}

	var (
		subtotal float64
		items    []models.OrderItem
		lines    []models.CartLine
	)
	for _, ci := range cart.Items {
		if ci.Product == nil {
			return nil, apperrors.New(apperrors.KindNotFound, "product %s no longer exists", ci.ProductID)
		}
		unitPrice := ci.Product.Price
		variantID := ""
		if ci.Variant != nil {
			unitPrice = ci.Variant.Price
			variantID = ci.Variant.ID
		}
		items = append(items, models.OrderItem{
			ProductID: ci.ProductID,
			VariantID: variantID,
			Name:      ci.Product.Name,
			Quantity:  ci.Quantity,
			Price:     unitPrice,
		})
		category := ""
		if ci.Product.Category != nil {
			category = ci.Product.Category.Name
		}
		lines = append(lines, models.CartLine{
			ProductID: ci.ProductID,
			Category:  category,
			Quantity:  ci.Quantity,
			UnitPrice: unitPrice,
		})
		subtotal += unitPrice * float64(ci.Quantity)
	}

	var (
		discount float64
		coupon   *models.Coupon
	)
	if req.CouponCode != "" {
		discount, coupon, err = s.couponService.ValidateCoupon(req.CouponCode, userID, subtotal, lines)
		if err != nil {
			return nil, err
		}
	}

	order := &models.Order{
		UserID:          userID,
		Items:           items,
		Subtotal:        subtotal,
		DiscountAmount:  discount,
		TotalAmount:     subtotal - discount,
		Status:          models.OrderPending,
		PaymentStatus:   models.PaymentPending,
		ShippingAddress: req.ShippingAddress,
		Phone:           req.Phone,
	}
	if coupon != nil {
		order.CouponCode = coupon.Code
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, err, "could not create order")
	}

	if coupon != nil {
		// The repository guard may still reject us if a concurrent checkout
		// took the coupon's last remaining use since validation.
		if err := s.couponService.RedeemCoupon(coupon.ID, order.ID, userID, discount); err != nil {
			failed := models.PaymentFailed
			if revertErr := s.orderRepo.UpdateStatus(order.ID, models.OrderPending, models.OrderCancelled, &failed); revertErr != nil {
				log.Printf("Error cancelling order %s after failed coupon redemption: %v", order.ID, revertErr)
			}
			return nil, err
		}
	}

	if err := s.cartRepo.Clear(cart.ID); err != nil {
		log.Printf("Warning: failed to clear cart %s after checkout: %v", cart.ID, err)
	}

	s.notifyStatusChange(order, "", order.Status)
	return order, nil
}

// TransitionStatus moves an order to newStatus, applying the side effects the
// transition table prescribes. The status claim is a conditional update, so
// of two racing transitions exactly one proceeds; stock moves at most once
// per order in each direction.
func (s *OrderService) TransitionStatus(actor *models.User, orderID string, newStatus models.OrderStatus) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindNotFound, err, "order not found")
	}

	effects, legal := TransitionEffects(order.Status, newStatus)
	if !legal {
		return nil, apperrors.New(apperrors.KindBusinessRule,
			"cannot transition order from %s to %s", order.Status, newStatus)
	}

	var paymentStatus *models.PaymentStatus
	if effectsContain(effects, EffectFailPayment) {
		failed := models.PaymentFailed
		paymentStatus = &failed
	}

	if err := s.orderRepo.UpdateStatus(orderID, order.Status, newStatus, paymentStatus); err != nil {
		if errors.Is(err, repositories.ErrStatusConflict) {
			return nil, apperrors.Wrap(apperrors.KindConflict, err,
				"order %s was updated concurrently, please retry", orderID)
		}
		return nil, apperrors.Wrap(apperrors.KindInternal, err, "could not update order status")
	}

	if effectsContain(effects, EffectDecrementStock) {
		if err := s.inventoryRepo.DecrementStockForItems(stockAdjustments(order)); err != nil {
			// Give the status claim back so the order can be retried or cancelled.
			if revertErr := s.orderRepo.UpdateStatus(orderID, newStatus, order.Status, nil); revertErr != nil {
				if errors.Is(revertErr, repositories.ErrStatusConflict) {
					// Another transition claimed the order before the revert.
					// If it was a cancellation, its restore had no decrement
					// to undo, so the variant stock needs a manual check.
					log.Printf("Order %s left %s before the failed stock decrement was reverted; verify stock for its items", orderID, newStatus)
					s.audit.Record(actor, "order.stock_mismatch", "order", orderID,
						fmt.Sprintf("stock decrement failed but order left %s concurrently; verify variant stock", newStatus))
				} else {
					log.Printf("Error reverting order %s to %s after failed stock decrement: %v", orderID, order.Status, revertErr)
				}
			}
			var insufficient *repositories.InsufficientStockError
			if errors.As(err, &insufficient) {
				return nil, apperrors.Wrap(apperrors.KindBusinessRule, err, "%s", insufficient.Error())
			}
			return nil, apperrors.Wrap(apperrors.KindInternal, err, "could not adjust stock")
		}
	}

	if effectsContain(effects, EffectRestoreStock) {
		if err := s.inventoryRepo.RestoreStockForItems(stockAdjustments(order)); err != nil {
			// The cancellation stands; an unrestored variant needs operator attention.
			log.Printf("Error restoring stock for cancelled order %s: %v", orderID, err)
		}
	}

	previous := order.Status
	order.Status = newStatus
	if paymentStatus != nil {
		order.PaymentStatus = *paymentStatus
	}

	if effectsContain(effects, EffectNotify) {
		s.notifyStatusChange(order, previous, newStatus)
	}

	if actor != nil {
		s.audit.Record(actor, "order.status_change", "order", orderID,
			fmt.Sprintf("transitioned order from %s to %s", previous, newStatus))
	}
	return order, nil
}

// HandlePaymentCompleted is the payment-webhook entry point: it marks the
// order's payment as completed and runs the PENDING to CONFIRMED transition
// through the same state machine path an admin transition takes.
func (s *OrderService) HandlePaymentCompleted(orderID string) (*models.Order, error) {
	if err := s.orderRepo.UpdatePaymentStatus(orderID, models.PaymentCompleted); err != nil {
		return nil, apperrors.Wrap(apperrors.KindNotFound, err, "order not found")
	}
	return s.TransitionStatus(nil, orderID, models.OrderConfirmed)
}

// MarkPaymentFailed records a failed payment without touching the order status.
func (s *OrderService) MarkPaymentFailed(orderID string) error {
	if err := s.orderRepo.UpdatePaymentStatus(orderID, models.PaymentFailed); err != nil {
		return apperrors.Wrap(apperrors.KindNotFound, err, "order not found")
	}
	return nil
}

// stockAdjustments maps an order's variant-backed items to ledger adjustments.
// Items without a variant carry no tracked stock and are skipped.
func stockAdjustments(order *models.Order) []repositories.StockAdjustment {
	var adjustments []repositories.StockAdjustment
	for _, item := range order.Items {
		if item.VariantID == "" {
			continue
		}
		adjustments = append(adjustments, repositories.StockAdjustment{
			VariantID:   item.VariantID,
			ProductName: item.Name,
			Quantity:    item.Quantity,
		})
	}
	return adjustments
}

// notifyStatusChange publishes a status event. Notification is fire-and-forget:
// failures are logged and never roll back the status change.
func (s *OrderService) notifyStatusChange(order *models.Order, from, to models.OrderStatus) {
	if s.notifier == nil {
		return
	}
	email := ""
	if user, err := s.userRepo.GetByID(order.UserID); err == nil {
		email = user.Email
	} else {
		log.Printf("Warning: could not resolve email for user %s: %v", order.UserID, err)
	}

	event := rabbitmq.OrderStatusEvent{
		OrderID:         order.ID,
		UserEmail:       email,
		Status:          string(to),
		PreviousStatus:  string(from),
		TotalAmount:     order.TotalAmount,
		ShippingAddress: order.ShippingAddress,
		Phone:           order.Phone,
		CreatedAt:       order.CreatedAt,
	}
	for _, item := range order.Items {
		event.Items = append(event.Items, rabbitmq.EventItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	if err := s.notifier.PublishOrderStatusChanged(event); err != nil {
		log.Printf("Warning: failed to publish status event for order %s: %v", order.ID, err)
	}
}
