package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"odontocare_backend/internals/constants"
	gcontroller "odontocare_backend/internals/features/guardians/controller"
	"odontocare_backend/internals/middlewares/auth"
)

func GuardianAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := gcontroller.NewGuardianController(db)

	gate := auth.OnlyRolesSlice(
		constants.RoleErrorAdmin("guardian management"),
		constants.AdminOnly,
	)

	guardians := admin.Group("/guardians", gate)
	guardians.Get("/", ctrl.List)
	guardians.Post("/", ctrl.Create)
	guardians.Get("/:id", ctrl.Details)
	guardians.Delete("/:id", ctrl.Delete)
	guardians.Post("/:id/children", ctrl.AddChild)

	admin.Delete("/children/:id", gate, ctrl.DeleteChild)
}
