package handlers

import (
	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// SignatureHeader carries the payment processor's hex HMAC-SHA256 signature
// over the raw request body.
const SignatureHeader = "X-Payment-Signature"

// WebhookHandler receives signed events from the payment processor. It is
// registered outside the authenticated route group: the signature is the
// authentication.
type WebhookHandler struct {
	service *services.PaymentWebhookService
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(service *services.PaymentWebhookService) *WebhookHandler {
	return &WebhookHandler{
		service: service,
	}
}

// RegisterRoutes registers the webhook routes with the Fiber app.
func (h *WebhookHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/webhooks/payment", h.HandlePaymentWebhook)
}

// HandlePaymentWebhook verifies and processes one payment event.
func (h *WebhookHandler) HandlePaymentWebhook(c *fiber.Ctx) error {
	signature := c.Get(SignatureHeader)
	if signature == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Missing payment signature header",
		})
	}

	order, err := h.service.ProcessEvent(c.Body(), signature)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Event processed",
		"order":   order,
	})
}
