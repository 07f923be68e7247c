package handlers

import (
	"fmt"
	"log"

	"storefront/internal/apperrors"
	"storefront/internal/middleware"
	"storefront/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// statusForKind maps an error kind to its HTTP status code.
func statusForKind(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindValidation:
		return fiber.StatusBadRequest
	case apperrors.KindNotFound:
		return fiber.StatusNotFound
	case apperrors.KindUnauthorized:
		return fiber.StatusUnauthorized
	case apperrors.KindForbidden:
		return fiber.StatusForbidden
	case apperrors.KindConflict:
		return fiber.StatusConflict
	case apperrors.KindBusinessRule:
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError renders a service error. Business and validation errors carry
// their message to the client; internal errors are logged and surfaced
// generically so details never leak.
func respondError(c *fiber.Ctx, err error) error {
	kind := apperrors.KindOf(err)
	status := statusForKind(kind)
	if status == fiber.StatusInternalServerError {
		log.Printf("Internal error handling %s %s: %v", c.Method(), c.Path(), err)
		return c.Status(status).JSON(fiber.Map{
			"message": "An unexpected error occurred",
			"code":    apperrors.KindInternal.String(),
		})
	}
	return c.Status(status).JSON(fiber.Map{
		"message": err.Error(),
		"code":    kind.String(),
	})
}

// respondValidationErrors renders go-playground validation failures field by field.
func respondValidationErrors(c *fiber.Ctx, err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}

// actorFromCtx reconstructs the acting user from the JWT claims stored by the
// auth middleware. Used for audit attribution.
func actorFromCtx(c *fiber.Ctx) *models.User {
	return &models.User{
		ID:   middleware.UserID(c),
		Role: middleware.UserRole(c),
	}
}
