package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authcontroller "odontocare_backend/internals/features/users/auth/controller"
	"odontocare_backend/internals/middlewares"
	authmw "odontocare_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authcontroller.NewAuthController(db)

	g := app.Group("/api/auth")
	g.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	g.Post("/logout", ctrl.Logout)
	g.Get("/me", authmw.AuthMiddleware(db), ctrl.Me)
}
