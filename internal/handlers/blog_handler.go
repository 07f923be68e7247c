package handlers

import (
	"log"

	"storefront/internal/middleware"
	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// BlogHandler handles HTTP requests for blog posts.
type BlogHandler struct {
	service  *services.BlogService
	validate *validator.Validate
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(service *services.BlogService) *BlogHandler {
	return &BlogHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterPublicRoutes registers the published-post reads. The public site
// reads published posts without authentication.
func (h *BlogHandler) RegisterPublicRoutes(router fiber.Router) {
	blogRoutes := router.Group("/blog")
	blogRoutes.Get("/", h.HandleGetPublishedPosts)
	blogRoutes.Get("/:slug", h.HandleGetPostBySlug)
}

// RegisterAdminRoutes registers the blog write routes. The router must
// already require authentication; writes additionally require blog
// management.
func (h *BlogHandler) RegisterAdminRoutes(router fiber.Router) {
	adminRoutes := router.Group("/blog", middleware.RequirePermission(models.PermManageBlog))
	adminRoutes.Get("/admin/all", h.HandleGetAllPosts)
	adminRoutes.Post("/", h.HandleCreatePost)
	adminRoutes.Put("/:slug", h.HandleUpdatePost)
	adminRoutes.Post("/:slug/publish", h.HandlePublishPost)
}

// HandleGetPublishedPosts retrieves all published posts.
func (h *BlogHandler) HandleGetPublishedPosts(c *fiber.Ctx) error {
	posts, err := h.service.GetPublishedPosts()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}

// HandleGetAllPosts retrieves all posts, drafts included.
func (h *BlogHandler) HandleGetAllPosts(c *fiber.Ctx) error {
	posts, err := h.service.GetAllPosts()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}

// HandleGetPostBySlug retrieves a published post.
func (h *BlogHandler) HandleGetPostBySlug(c *fiber.Ctx) error {
	post, err := h.service.GetPostBySlug(c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// HandleCreatePost creates a draft post.
func (h *BlogHandler) HandleCreatePost(c *fiber.Ctx) error {
	var post models.BlogPost
	if err := c.BodyParser(&post); err != nil {
		log.Printf("Error parsing blog post body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(post); err != nil {
		return respondValidationErrors(c, err)
	}

	if err := h.service.CreatePost(actorFromCtx(c), &post); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// HandleUpdatePost edits a post's title and content.
func (h *BlogHandler) HandleUpdatePost(c *fiber.Ctx) error {
	var body struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&body); err != nil {
		log.Printf("Error parsing blog post body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	post, err := h.service.UpdatePost(actorFromCtx(c), c.Params("slug"), body.Title, body.Content)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// HandlePublishPost marks a post as published.
func (h *BlogHandler) HandlePublishPost(c *fiber.Ctx) error {
	post, err := h.service.PublishPost(actorFromCtx(c), c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}
