package handlers

import (
	"log"
	"strings"

	"storefront/internal/middleware"
	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the catalog.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterPublicRoutes registers the read-only catalog routes. Listing,
// detail and categories are open to anonymous visitors.
func (h *ProductHandler) RegisterPublicRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Get("/:id/variants", h.HandleGetVariants)

	router.Group("/categories").Get("/", h.HandleGetCategories)
}

// RegisterAdminRoutes registers the catalog write routes. The router must
// already require authentication; writes additionally require catalog
// management.
func (h *ProductHandler) RegisterAdminRoutes(router fiber.Router) {
	adminRoutes := router.Group("/products", middleware.RequirePermission(models.PermManageProducts))
	adminRoutes.Post("/", h.HandleCreateProduct)
	adminRoutes.Put("/:id", h.HandleUpdateProduct)
	adminRoutes.Delete("/:id", h.HandleDeleteProduct)
	adminRoutes.Post("/:id/variants", h.HandleCreateVariant)

	router.Group("/categories").Post("/", middleware.RequirePermission(models.PermManageProducts), h.HandleCreateCategory)
}

// HandleGetProducts retrieves all products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		log.Printf("Error getting all products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
		})
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	product, err := h.service.GetProductByID(c.Params("id"))
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve product",
		})
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(product); err != nil {
		return respondValidationErrors(c, err)
	}
	if err := h.service.CreateProduct(actorFromCtx(c), &product); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct updates an existing product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	product.ID = c.Params("id")
	if err := h.validate.Struct(product); err != nil {
		return respondValidationErrors(c, err)
	}
	if err := h.service.UpdateProduct(actorFromCtx(c), &product); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
		return respondError(c, err)
	}
	return c.JSON(product)
}

// HandleDeleteProduct deletes a product.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	if err := h.service.DeleteProduct(actorFromCtx(c), c.Params("id")); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Product deleted",
	})
}

// HandleGetVariants retrieves the variants of a product.
func (h *ProductHandler) HandleGetVariants(c *fiber.Ctx) error {
	variants, err := h.service.GetVariantsByProduct(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve variants",
		})
	}
	return c.JSON(variants)
}

// HandleCreateVariant creates a new variant under a product.
func (h *ProductHandler) HandleCreateVariant(c *fiber.Ctx) error {
	var variant models.ProductVariant
	if err := c.BodyParser(&variant); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	variant.ProductID = c.Params("id")
	if err := h.validate.Struct(variant); err != nil {
		return respondValidationErrors(c, err)
	}
	if err := h.service.CreateVariant(actorFromCtx(c), &variant); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(variant)
}

// HandleGetCategories retrieves all categories.
func (h *ProductHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetCategories()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve categories",
		})
	}
	return c.JSON(categories)
}

// HandleCreateCategory creates a new category.
func (h *ProductHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(category); err != nil {
		return respondValidationErrors(c, err)
	}
	if err := h.service.CreateCategory(actorFromCtx(c), &category); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}
