package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// PublicCache lets shared caches keep successful GET responses for maxAge.
// Used for the public notice board.
func PublicCache(maxAge time.Duration) fiber.Handler {
	return cacheFor("public", maxAge)
}

// PrivateCache lets only the browser keep successful GET responses
func PrivateCache(maxAge time.Duration) fiber.Handler {
	return cacheFor("private", maxAge)
}

func cacheFor(scope string, maxAge time.Duration) fiber.Handler {
	value := scope + ", max-age=" + strconv.Itoa(int(maxAge.Seconds()))
	return func(c *fiber.Ctx) error {
		err := c.Next()

		if c.Method() == fiber.MethodGet && c.Response().StatusCode() == fiber.StatusOK {
			c.Set(fiber.HeaderCacheControl, value)
		}

		return err
	}
}

// NoCacheHeaders marks responses as never cacheable (tokens, downloads, personal data)
func NoCacheHeaders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderCacheControl, "no-store, no-cache, must-revalidate")
		c.Set(fiber.HeaderPragma, "no-cache")
		c.Set(fiber.HeaderExpires, "0")
		return c.Next()
	}
}
