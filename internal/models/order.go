package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderConfirmed  OrderStatus = "CONFIRMED"
	OrderProcessing OrderStatus = "PROCESSING"
	OrderShipped    OrderStatus = "SHIPPED"
	OrderDelivered  OrderStatus = "DELIVERED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

// IsTerminal reports whether no further transition is allowed from s.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// PaymentStatus tracks the payment processor's view of an order.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
)

// OrderItem is a single line of an order. Price is the unit price snapshot
// taken at purchase time; it never tracks later price changes.
type OrderItem struct {
	ID        string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID   string  `json:"order_id" gorm:"type:varchar(36);index"`
	ProductID string  `json:"product_id" gorm:"type:varchar(36)" validate:"required"`
	VariantID string  `json:"variant_id,omitempty" gorm:"type:varchar(36)"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	Price     float64 `json:"price"` // Price at the time of order
}

// Order represents a customer order. TotalAmount is fixed at creation with
// any coupon discount already applied and is immutable afterwards.
type Order struct {
	ID              string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID          string         `json:"user_id" gorm:"type:varchar(36);index" validate:"required"`
	Items           []OrderItem    `json:"items" gorm:"foreignKey:OrderID"`
	Subtotal        float64        `json:"subtotal"`
	DiscountAmount  float64        `json:"discount_amount"`
	CouponCode      string         `json:"coupon_code,omitempty" gorm:"type:varchar(50)"`
	TotalAmount     float64        `json:"total_amount"`
	Status          OrderStatus    `json:"status" gorm:"type:varchar(20);index"`
	PaymentStatus   PaymentStatus  `json:"payment_status" gorm:"type:varchar(20)"`
	ShippingAddress string         `json:"shipping_address"`
	Phone           string         `json:"phone"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`
}
