package repositories

import (
	"errors"
	"fmt"

	"storefront/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// GetAll retrieves all orders with their items.
func (r *GORMOrderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get all orders: %w", err)
	}
	return orders, nil
}

// GetByID retrieves a single order by its ID with its items.
func (r *GORMOrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id, err)
	}
	return &order, nil
}

// GetByUserID retrieves all orders of a user, newest first.
func (r *GORMOrderRepository) GetByUserID(userID string) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Items").Where("user_id = ?", userID).Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get orders for user %s: %w", userID, err)
	}
	return orders, nil
}

// Create creates a new order with its items.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	for i := range order.Items {
		if order.Items[i].ID == "" {
			order.Items[i].ID = uuid.New().String()
		}
		order.Items[i].OrderID = order.ID
	}
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// UpdateStatus moves the order from `from` to `to`. The WHERE clause on the
// current status makes the claim atomic: of two racing transitions, exactly
// one sees RowsAffected == 1.
func (r *GORMOrderRepository) UpdateStatus(id string, from, to models.OrderStatus, paymentStatus *models.PaymentStatus) error {
	updates := map[string]interface{}{"status": to}
	if paymentStatus != nil {
		updates["payment_status"] = *paymentStatus
	}
	res := r.db.Model(&models.Order{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("failed to update status for order %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&models.Order{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check order existence: %w", err)
		}
		if count == 0 {
			return fmt.Errorf("order with ID %s not found for status update", id)
		}
		return ErrStatusConflict
	}
	return nil
}

// UpdatePaymentStatus sets the payment status of an order.
func (r *GORMOrderRepository) UpdatePaymentStatus(id string, status models.PaymentStatus) error {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).Update("payment_status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update payment status for order %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order with ID %s not found for payment status update", id)
	}
	return nil
}
