package handlers

import (
	"log"

	"storefront/internal/middleware"
	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ReviewHandler handles HTTP requests for product reviews.
type ReviewHandler struct {
	service  *services.ReviewService
	validate *validator.Validate
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(service *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the review routes with the Fiber app.
func (h *ReviewHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/products/:id/reviews", h.HandleGetReviews)
	router.Post("/products/:id/reviews", h.HandleCreateReview)
}

// HandleGetReviews retrieves all reviews for a product.
func (h *ReviewHandler) HandleGetReviews(c *fiber.Ctx) error {
	reviews, err := h.service.GetReviewsByProduct(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(reviews)
}

// HandleCreateReview creates a review for a product.
func (h *ReviewHandler) HandleCreateReview(c *fiber.Ctx) error {
	var review models.Review
	if err := c.BodyParser(&review); err != nil {
		log.Printf("Error parsing review body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	review.ProductID = c.Params("id")
	review.UserID = middleware.UserID(c)
	if err := h.validate.Struct(review); err != nil {
		return respondValidationErrors(c, err)
	}

	if err := h.service.CreateReview(middleware.UserID(c), &review); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}
