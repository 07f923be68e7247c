package handlers

import (
	"storefront/internal/middleware"
	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuditHandler exposes the audit log to super admins.
type AuditHandler struct {
	service *services.AuditService
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(service *services.AuditService) *AuditHandler {
	return &AuditHandler{
		service: service,
	}
}

// RegisterRoutes registers the audit routes with the Fiber app.
func (h *AuditHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/audit", middleware.RequirePermission(models.PermViewAuditLog), h.HandleGetRecent)
}

// HandleGetRecent retrieves the most recent audit entries.
func (h *AuditHandler) HandleGetRecent(c *fiber.Ctx) error {
	entries, err := h.service.Recent(c.QueryInt("limit", 100))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entries)
}
