package middleware

import (
	"net/url"

	"resume-builder/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

// IdentityFrom returns the authenticated identity set by Authenticate.
func IdentityFrom(c *fiber.Ctx) (usecase.Identity, bool) {
	if v := c.Locals("identity"); v != nil {
		if id, ok := v.(usecase.Identity); ok {
			return id, true
		}
	}
	return usecase.Identity{}, false
}

// RequireAuth gates API routes: no identity means 401, never a redirect.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := IdentityFrom(c); !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}
		return c.Next()
	}
}

// RequireView gates browser views: an anonymous request is redirected to the
// login view with the originally requested path preserved for the post-login
// return.
func RequireView(loginPath string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := IdentityFrom(c); !ok {
			return c.Redirect(loginPath+"?redirectTo="+url.QueryEscape(c.OriginalURL()), fiber.StatusFound)
		}
		return c.Next()
	}
}
