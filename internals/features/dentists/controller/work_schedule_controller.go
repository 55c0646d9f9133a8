package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dmodel "odontocare_backend/internals/features/dentists/model"
	helper "odontocare_backend/internals/helpers"
)

// Work schedules are maintained elsewhere; this controller only lists them
// for the dentist forms.
type WorkScheduleController struct {
	DB *gorm.DB
}

func NewWorkScheduleController(db *gorm.DB) *WorkScheduleController {
	return &WorkScheduleController{DB: db}
}

// GET /api/a/work-schedules
func (h *WorkScheduleController) List(c *fiber.Ctx) error {
	var schedules []dmodel.WorkScheduleModel
	if err := h.DB.Order("name ASC").Find(&schedules).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load work schedules")
	}
	return helper.Success(c, "OK", schedules)
}
