package handlers

import (
	"log"

	"storefront/internal/middleware"
	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the authenticated user's cart.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Patch("/items/:itemId", h.HandleUpdateItem)
	cartRoutes.Delete("/items/:itemId", h.HandleRemoveItem)
}

// HandleGetCart retrieves the caller's cart.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	cart, err := h.service.GetCart(middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cart)
}

// AddCartItemRequest is the request body for adding a cart line.
type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// HandleAddItem adds a product to the caller's cart.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req AddCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add-to-cart body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	cart, err := h.service.AddItem(middleware.UserID(c), req.ProductID, req.VariantID, req.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cart)
}

// HandleUpdateItem changes a cart line's quantity.
func (h *CartHandler) HandleUpdateItem(c *fiber.Ctx) error {
	var req struct {
		Quantity int `json:"quantity" validate:"gte=0"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	cart, err := h.service.UpdateItemQuantity(middleware.UserID(c), c.Params("itemId"), req.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cart)
}

// HandleRemoveItem deletes a cart line.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	cart, err := h.service.RemoveItem(middleware.UserID(c), c.Params("itemId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cart)
}
