package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"odontocare_backend/internals/constants"
	acontroller "odontocare_backend/internals/features/appointments/controller"
	"odontocare_backend/internals/middlewares/auth"
)

func AppointmentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := acontroller.NewAppointmentController(db)

	appointments := admin.Group("/appointments",
		auth.OnlyRolesSlice(
			constants.RoleErrorDentist("appointment management"),
			constants.StaffRoles,
		),
	)
	appointments.Get("/", ctrl.List)
	appointments.Get("/:id", ctrl.Details)
	appointments.Patch("/:id/cancel", ctrl.Cancel)
}
