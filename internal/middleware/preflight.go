package middleware

import (
	"github.com/gofiber/fiber/v2"
)

type PreflightConfig struct {
	AllowOrigin  string
	AllowHeaders string
	AllowMethods string
}

// Preflight answers every OPTIONS request that got past the cors middleware
// (no Origin or no Access-Control-Request-Method) with the CORS headers and
// an empty body. Handlers therefore never see OPTIONS.
func Preflight(cfg PreflightConfig) fiber.Handler {
	if cfg.AllowOrigin == "" {
		cfg.AllowOrigin = "*"
	}

	return func(c *fiber.Ctx) error {
		if c.Method() != fiber.MethodOptions {
			return c.Next()
		}

		c.Set(fiber.HeaderAccessControlAllowOrigin, cfg.AllowOrigin)
		if cfg.AllowHeaders != "" {
			c.Set(fiber.HeaderAccessControlAllowHeaders, cfg.AllowHeaders)
		}
		if cfg.AllowMethods != "" {
			c.Set(fiber.HeaderAccessControlAllowMethods, cfg.AllowMethods)
		}

		c.Status(fiber.StatusOK)
		return c.Send(nil)
	}
}
