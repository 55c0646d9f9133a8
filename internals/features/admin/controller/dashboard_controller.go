package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	amodel "odontocare_backend/internals/features/appointments/model"
	dmodel "odontocare_backend/internals/features/dentists/model"
	gmodel "odontocare_backend/internals/features/guardians/model"
	vmodel "odontocare_backend/internals/features/volunteers/model"
	helper "odontocare_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GET /api/u/dashboard
// Headline counts for the landing page; available to any authenticated user.
func (h *DashboardController) Dashboard(c *fiber.Ctx) error {
	counts := fiber.Map{}

	type counter struct {
		key   string
		query *gorm.DB
	}
	counters := []counter{
		{"total_guardians", h.DB.Model(&gmodel.GuardianModel{})},
		{"total_children", h.DB.Model(&gmodel.ChildModel{})},
		{"total_dentists", h.DB.Model(&dmodel.DentistModel{})},
		{"total_appointments", h.DB.Model(&amodel.AppointmentModel{})},
		{"total_volunteer_applications", h.DB.Model(&vmodel.VolunteerApplicationModel{})},
		{"unseen_volunteer_applications",
			h.DB.Model(&vmodel.VolunteerApplicationModel{}).Where("seen = ?", false)},
	}

	for _, ctr := range counters {
		var n int64
		if err := ctr.query.Count(&n).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to load dashboard counts")
		}
		counts[ctr.key] = n
	}

	return helper.Success(c, "OK", counts)
}
