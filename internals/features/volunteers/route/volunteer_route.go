package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"odontocare_backend/internals/constants"
	vcontroller "odontocare_backend/internals/features/volunteers/controller"
	vservice "odontocare_backend/internals/features/volunteers/service"
	"odontocare_backend/internals/middlewares/auth"
)

// Public intake: anyone may submit an application.
func VolunteerPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := vcontroller.NewVolunteerApplicationController(db, vservice.NewMailer())
	public.Post("/volunteer-applications", ctrl.Create)
}

// Admin review workflow. The approve/reject AJAX endpoints keep their own
// in-handler admin check so a non-admin gets the {success:false} payload;
// the rest of the group is gated up front.
func VolunteerAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := vcontroller.NewVolunteerApplicationController(db, vservice.NewMailer())

	apps := admin.Group("/volunteer-applications")

	apps.Post("/:id/approve", ctrl.Approve)
	apps.Post("/:id/reject", ctrl.Reject)

	gated := apps.Group("/",
		auth.OnlyRolesSlice(
			constants.RoleErrorAdmin("volunteer application review"),
			constants.AdminOnly,
		),
	)
	gated.Get("/", ctrl.List)
	gated.Get("/:id", ctrl.Detail)
	gated.Delete("/:id", ctrl.Delete)
}
