package handlers

import (
	"log"

	"storefront/internal/middleware"
	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetMyOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Post("/checkout", h.HandleCheckout)

	adminRoutes := orderRoutes.Group("", middleware.RequirePermission(models.PermManageOrders))
	adminRoutes.Get("/admin/all", h.HandleGetAllOrders)
	adminRoutes.Patch("/:id/status", h.HandleUpdateOrderStatus)
}

// HandleGetMyOrders retrieves the authenticated user's orders.
func (h *OrderHandler) HandleGetMyOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetOrdersByUser(middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(orders)
}

// HandleGetAllOrders retrieves all orders for the back office.
func (h *OrderHandler) HandleGetAllOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(orders)
}

// HandleGetOrderByID retrieves a single order. Users may only read their own
// orders; admins may read any.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	order, err := h.service.GetOrderByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if order.UserID != middleware.UserID(c) && !models.Authorize(middleware.UserRole(c), models.PermManageOrders) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "You do not have permission to view this order",
		})
	}
	return c.JSON(order)
}

// HandleCheckout converts the caller's cart into a new order.
func (h *OrderHandler) HandleCheckout(c *fiber.Ctx) error {
	var req services.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing checkout request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	order, err := h.service.Checkout(middleware.UserID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleUpdateOrderStatus transitions an order through the state machine.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	var updateData struct {
		Status models.OrderStatus `json:"status" validate:"required,oneof=PENDING CONFIRMED PROCESSING SHIPPED DELIVERED CANCELLED"`
	}
	if err := c.BodyParser(&updateData); err != nil {
		log.Printf("Error parsing request body for status update: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body for status update",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(updateData); err != nil {
		return respondValidationErrors(c, err)
	}

	order, err := h.service.TransitionStatus(actorFromCtx(c), c.Params("id"), updateData.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}
