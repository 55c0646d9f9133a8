package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"odontocare_backend/internals/constants"
	dcontroller "odontocare_backend/internals/features/dentists/controller"
	"odontocare_backend/internals/middlewares/auth"
)

func DentistAdminRoutes(admin fiber.Router, db *gorm.DB) {
	dentistCtrl := dcontroller.NewDentistController(db)
	scheduleCtrl := dcontroller.NewWorkScheduleController(db)

	gate := auth.OnlyRolesSlice(
		constants.RoleErrorAdmin("dentist management"),
		constants.AdminOnly,
	)

	dentists := admin.Group("/dentists", gate)
	dentists.Get("/", dentistCtrl.Index)
	dentists.Get("/new", dentistCtrl.New)
	dentists.Post("/", dentistCtrl.Create)
	dentists.Get("/:id/edit", dentistCtrl.Edit)
	dentists.Put("/:id", dentistCtrl.Update)
	dentists.Get("/:id/delete", dentistCtrl.DeleteConfirm)
	dentists.Delete("/:id", dentistCtrl.Delete)
	dentists.Get("/:id", dentistCtrl.Details)

	admin.Get("/work-schedules", gate, scheduleCtrl.List)
}
