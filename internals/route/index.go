package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	admincontroller "odontocare_backend/internals/features/admin/controller"
	appointmentroute "odontocare_backend/internals/features/appointments/route"
	dentistroute "odontocare_backend/internals/features/dentists/route"
	guardianroute "odontocare_backend/internals/features/guardians/route"
	authroute "odontocare_backend/internals/features/users/auth/route"
	volunteerroute "odontocare_backend/internals/features/volunteers/route"
	authmw "odontocare_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authroute.AuthRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	volunteerroute.VolunteerPublicRoutes(public, db)

	// ===================== PRIVATE (ANY AUTHENTICATED) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", authmw.AuthMiddleware(db))
	private.Get("/dashboard", admincontroller.NewDashboardController(db).Dashboard)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a", authmw.AuthMiddleware(db))
	volunteerroute.VolunteerAdminRoutes(admin, db)
	dentistroute.DentistAdminRoutes(admin, db)
	guardianroute.GuardianAdminRoutes(admin, db)
	appointmentroute.AppointmentAdminRoutes(admin, db)
}
