package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	amodel "odontocare_backend/internals/features/appointments/model"
	helper "odontocare_backend/internals/helpers"
)

type AppointmentController struct {
	DB *gorm.DB
}

func NewAppointmentController(db *gorm.DB) *AppointmentController {
	return &AppointmentController{DB: db}
}

// GET /api/a/appointments
func (h *AppointmentController) List(c *fiber.Ctx) error {
	var appointments []amodel.AppointmentModel
	if err := h.DB.
		Preload("Child").
		Preload("Dentist").
		Order("scheduled_at DESC").
		Find(&appointments).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load appointments")
	}
	return helper.Success(c, "OK", appointments)
}

// GET /api/a/appointments/:id
func (h *AppointmentController) Details(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid appointment ID")
	}

	var appointment amodel.AppointmentModel
	if err := h.DB.
		Preload("Child").
		Preload("Dentist").
		First(&appointment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Appointment not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load appointment")
	}
	return helper.Success(c, "OK", appointment)
}

// PATCH /api/a/appointments/:id/cancel
// Only a scheduled appointment can be cancelled.
func (h *AppointmentController) Cancel(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid appointment ID")
	}

	var appointment amodel.AppointmentModel
	if err := h.DB.First(&appointment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Appointment not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load appointment")
	}

	if appointment.Status != amodel.AppointmentScheduled {
		return helper.Error(c, fiber.StatusConflict, "Appointment is not scheduled")
	}

	if err := h.DB.Model(&appointment).
		Update("status", amodel.AppointmentCancelled).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to cancel appointment: "+err.Error())
	}

	appointment.Status = amodel.AppointmentCancelled
	return helper.Success(c, "Appointment cancelled", appointment)
}
