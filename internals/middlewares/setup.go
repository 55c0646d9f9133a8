package middlewares

import (
	"os"

	"github.com/gofiber/fiber/v2"

	"odontocare_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the base middleware chain. Order matters: recovery
// first so nothing below can escape as a raw panic.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())

	if os.Getenv("DISABLE_CSRF") != "true" {
		app.Use(CsrfMiddleware())
	}
}
