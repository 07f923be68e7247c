package repositories

import (
	"errors"

	"storefront/internal/models"
)

// ErrStatusConflict is returned by UpdateStatus when the order's status no
// longer matches the expected previous status, i.e. a concurrent transition
// got there first.
var ErrStatusConflict = errors.New("order status changed concurrently")

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	GetByUserID(userID string) ([]models.Order, error)
	Create(order *models.Order) error
	// UpdateStatus moves the order from `from` to `to` with a conditional
	// update on the current status, optionally setting the payment status in
	// the same statement. Returns ErrStatusConflict if the order is no longer
	// in `from`.
	UpdateStatus(id string, from, to models.OrderStatus, paymentStatus *models.PaymentStatus) error
	UpdatePaymentStatus(id string, status models.PaymentStatus) error
}
