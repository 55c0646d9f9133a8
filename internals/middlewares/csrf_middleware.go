package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/utils"
)

// CsrfMiddleware issues the per-session anti-forgery token as a cookie and
// requires it back in the X-Csrf-Token header on every mutating request.
func CsrfMiddleware() fiber.Handler {
	return csrf.New(csrf.Config{
		KeyLookup:      "header:X-Csrf-Token",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieHTTPOnly: false,
		Expiration:     2 * time.Hour,
		KeyGenerator:   utils.UUIDv4,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Invalid or missing anti-forgery token",
			})
		},
	})
}
