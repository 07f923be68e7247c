package handlers

import (
	"log"

	"storefront/internal/middleware"
	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CouponHandler handles HTTP requests for coupons.
type CouponHandler struct {
	service  *services.CouponService
	validate *validator.Validate
}

// NewCouponHandler creates a new CouponHandler.
func NewCouponHandler(service *services.CouponService) *CouponHandler {
	return &CouponHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the coupon routes with the Fiber app.
// Validation is open to any authenticated user; everything else is admin-only.
func (h *CouponHandler) RegisterRoutes(router fiber.Router) {
	couponRoutes := router.Group("/coupons")
	couponRoutes.Post("/validate", h.HandleValidateCoupon)

	adminRoutes := couponRoutes.Group("", middleware.RequirePermission(models.PermManageCoupons))
	adminRoutes.Get("/", h.HandleListCoupons)
	adminRoutes.Post("/", h.HandleCreateCoupon)
	adminRoutes.Get("/:id", h.HandleGetCoupon)
	adminRoutes.Delete("/:id", h.HandleDeactivateCoupon)
}

// HandleCreateCoupon creates a new coupon.
func (h *CouponHandler) HandleCreateCoupon(c *fiber.Ctx) error {
	var coupon models.Coupon
	if err := c.BodyParser(&coupon); err != nil {
		log.Printf("Error parsing coupon request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(coupon); err != nil {
		return respondValidationErrors(c, err)
	}

	if err := h.service.CreateCoupon(actorFromCtx(c), &coupon); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(coupon)
}

// HandleListCoupons retrieves all coupons.
func (h *CouponHandler) HandleListCoupons(c *fiber.Ctx) error {
	coupons, err := h.service.ListCoupons()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(coupons)
}

// HandleGetCoupon retrieves a single coupon with its aggregate discount total.
func (h *CouponHandler) HandleGetCoupon(c *fiber.Ctx) error {
	coupon, err := h.service.GetCoupon(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	total, err := h.service.TotalDiscountGiven(coupon.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"coupon":               coupon,
		"total_discount_given": total,
	})
}

// HandleDeactivateCoupon marks a coupon inactive.
func (h *CouponHandler) HandleDeactivateCoupon(c *fiber.Ctx) error {
	if err := h.service.DeactivateCoupon(actorFromCtx(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Coupon deactivated",
	})
}

// ValidateCouponRequest is the request body for coupon validation.
type ValidateCouponRequest struct {
	Code      string            `json:"code" validate:"required,min=2,max=50"`
	CartTotal float64           `json:"cart_total" validate:"required,gt=0"`
	Items     []models.CartLine `json:"items" validate:"required,min=1,dive"`
}

// HandleValidateCoupon checks a coupon against a cart without consuming a use.
func (h *CouponHandler) HandleValidateCoupon(c *fiber.Ctx) error {
	var req ValidateCouponRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing coupon validation body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	discount, coupon, err := h.service.ValidateCoupon(req.Code, middleware.UserID(c), req.CartTotal, req.Items)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"valid":    true,
		"code":     coupon.Code,
		"discount": discount,
		"total":    req.CartTotal - discount,
	})
}
