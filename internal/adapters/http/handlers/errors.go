package handlers

import (
	"context"
	"errors"
	"log"

	"careerhub/internal/core/domain"
	"careerhub/internal/core/services"
	"careerhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// handleError maps a service error onto the standard response envelope.
// Unclassified errors are logged and reported with fallback.
func handleError(c *fiber.Ctx, err error, fallback string) error {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return response.ValidationFailed(c, verr)
	case errors.Is(err, domain.ErrNotFound):
		return response.NotFound(c, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		return response.Unauthorized(c, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		return response.Forbidden(c, err.Error())
	case errors.Is(err, domain.ErrInvalidState), errors.Is(err, domain.ErrDuplicateEntry):
		return response.Conflict(c, err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		return response.BadRequest(c, err.Error())
	default:
		log.Printf("❌ %s %s: %v", c.Method(), c.Path(), err)
		return response.InternalServerError(c, fallback)
	}
}

// currentUserID returns the authenticated user set by the auth middleware
func currentUserID(c *fiber.Ctx) (string, bool) {
	userID, ok := c.Locals("userID").(string)
	return userID, ok && userID != ""
}

// requestContext carries the caller's address and agent into the activity log
func requestContext(c *fiber.Ctx) context.Context {
	return services.WithRequestMeta(c.UserContext(), c.IP(), c.Get(fiber.HeaderUserAgent))
}
