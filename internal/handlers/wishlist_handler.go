package handlers

import (
	"storefront/internal/middleware"
	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// WishlistHandler handles HTTP requests for the authenticated user's wishlist.
type WishlistHandler struct {
	service *services.WishlistService
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(service *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{
		service: service,
	}
}

// RegisterRoutes registers the wishlist routes with the Fiber app.
func (h *WishlistHandler) RegisterRoutes(router fiber.Router) {
	wishlistRoutes := router.Group("/wishlist")
	wishlistRoutes.Get("/", h.HandleGetWishlist)
	wishlistRoutes.Post("/:productId", h.HandleAddToWishlist)
	wishlistRoutes.Delete("/:productId", h.HandleRemoveFromWishlist)
}

// HandleGetWishlist retrieves the caller's wishlist.
func (h *WishlistHandler) HandleGetWishlist(c *fiber.Ctx) error {
	items, err := h.service.GetWishlist(middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

// HandleAddToWishlist adds a product to the caller's wishlist. Adding an
// already-wishlisted product succeeds without creating a duplicate.
func (h *WishlistHandler) HandleAddToWishlist(c *fiber.Ctx) error {
	item, err := h.service.AddToWishlist(middleware.UserID(c), c.Params("productId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// HandleRemoveFromWishlist removes a product from the caller's wishlist.
func (h *WishlistHandler) HandleRemoveFromWishlist(c *fiber.Ctx) error {
	if err := h.service.RemoveFromWishlist(middleware.UserID(c), c.Params("productId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Removed from wishlist",
	})
}
