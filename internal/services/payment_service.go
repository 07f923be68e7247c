package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"storefront/internal/apperrors"
	"storefront/internal/models"
)

// PaymentEvent is the payload the payment processor posts to the webhook.
type PaymentEvent struct {
	Event   string `json:"event"` // "payment.completed" or "payment.failed"
	OrderID string `json:"order_id"`
}

// PaymentWebhookService verifies and processes signed payment processor
// events. The signature is an HMAC-SHA256 of the raw request body, hex
// encoded, computed with a secret shared with the processor.
type PaymentWebhookService struct {
	secret       []byte
	orderService *OrderService
}

// NewPaymentWebhookService creates a new PaymentWebhookService.
func NewPaymentWebhookService(secret string, orderService *OrderService) *PaymentWebhookService {
	return &PaymentWebhookService{
		secret:       []byte(secret),
		orderService: orderService,
	}
}

// VerifySignature checks the hex HMAC-SHA256 signature over the raw body.
func (s *PaymentWebhookService) VerifySignature(body []byte, signature string) error {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return apperrors.New(apperrors.KindUnauthorized, "invalid webhook signature")
	}
	return nil
}

// ProcessEvent verifies the signature, then dispatches the event. A completed
// payment runs the order through the same PENDING to CONFIRMED state machine
// path an admin transition takes.
func (s *PaymentWebhookService) ProcessEvent(body []byte, signature string) (*models.Order, error) {
	if err := s.VerifySignature(body, signature); err != nil {
		return nil, err
	}

	var event PaymentEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, apperrors.Wrap(apperrors.KindValidation, err, "malformed webhook payload")
	}
	if event.OrderID == "" {
		return nil, apperrors.New(apperrors.KindValidation, "webhook payload is missing order_id")
	}

	switch event.Event {
	case "payment.completed":
		return s.orderService.HandlePaymentCompleted(event.OrderID)
	case "payment.failed":
		if err := s.orderService.MarkPaymentFailed(event.OrderID); err != nil {
			return nil, err
		}
		return s.orderService.GetOrderByID(event.OrderID)
	default:
		return nil, apperrors.New(apperrors.KindValidation, "unsupported webhook event %q", event.Event)
	}
}
