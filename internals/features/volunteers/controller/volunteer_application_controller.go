package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	vdto "odontocare_backend/internals/features/volunteers/dto"
	vmodel "odontocare_backend/internals/features/volunteers/model"
	vservice "odontocare_backend/internals/features/volunteers/service"
	helper "odontocare_backend/internals/helpers"
)

var validate = validator.New()

type VolunteerApplicationController struct {
	DB     *gorm.DB
	Mailer vservice.Mailer
}

func NewVolunteerApplicationController(db *gorm.DB, mailer vservice.Mailer) *VolunteerApplicationController {
	return &VolunteerApplicationController{DB: db, Mailer: mailer}
}

/* ===================== INTAKE (PUBLIC) ===================== */

// POST /api/public/volunteer-applications
func (h *VolunteerApplicationController) Create(c *fiber.Ctx) error {
	var req vdto.CreateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to submit application")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Application submitted",
		vdto.NewApplicationResponse(m))
}

/* ===================== REVIEW (ADMIN) ===================== */

// GET /api/a/volunteer-applications?filter=all|pending|approved|rejected|unseen
func (h *VolunteerApplicationController) List(c *fiber.Ctx) error {
	filter := c.Query("filter", "all")

	query := h.DB.Model(&vmodel.VolunteerApplicationModel{})
	switch filter {
	case "pending":
		query = query.Where("status = ?", vmodel.ApplicationPending)
	case "approved":
		query = query.Where("status = ?", vmodel.ApplicationApproved)
	case "rejected":
		query = query.Where("status = ?", vmodel.ApplicationRejected)
	case "unseen":
		query = query.Where("seen = ?", false)
	}

	var apps []vmodel.VolunteerApplicationModel
	if err := query.Order("submitted_at DESC").Find(&apps).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load applications")
	}

	// badge counts are always global, independent of the active filter
	var totalPending, totalUnseen int64
	if err := h.DB.Model(&vmodel.VolunteerApplicationModel{}).
		Where("status = ?", vmodel.ApplicationPending).Count(&totalPending).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count applications")
	}
	if err := h.DB.Model(&vmodel.VolunteerApplicationModel{}).
		Where("seen = ?", false).Count(&totalUnseen).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count applications")
	}

	return helper.Success(c, "OK", fiber.Map{
		"applications":  vdto.NewApplicationResponses(apps),
		"filter":        filter,
		"total_pending": totalPending,
		"total_unseen":  totalUnseen,
	})
}

// GET /api/a/volunteer-applications/:id
// Viewing marks the application seen, whatever its status.
func (h *VolunteerApplicationController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid application ID")
	}

	var app vmodel.VolunteerApplicationModel
	if err := h.DB.First(&app, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Application not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load application")
	}

	if !app.Seen {
		if err := h.DB.Model(&app).Update("seen", true).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to mark application as seen")
		}
		app.Seen = true
	}

	return helper.Success(c, "OK", vdto.NewApplicationResponse(&app))
}

// POST /api/a/volunteer-applications/:id/approve
func (h *VolunteerApplicationController) Approve(c *fiber.Ctx) error {
	return h.decide(c, vmodel.ApplicationApproved, "Application approved", "Failed to approve application")
}

// POST /api/a/volunteer-applications/:id/reject
func (h *VolunteerApplicationController) Reject(c *fiber.Ctx) error {
	return h.decide(c, vmodel.ApplicationRejected, "Application rejected", "Failed to reject application")
}

// decide is the shared approve/reject path. These endpoints answer the admin
// page's AJAX calls, so every outcome is a {success, message} payload.
func (h *VolunteerApplicationController) decide(c *fiber.Ctx, status vmodel.ApplicationStatus, okMsg, failMsg string) error {
	if !helper.IsAdmin(c) {
		return c.JSON(fiber.Map{"success": false, "message": "Access denied"})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.JSON(fiber.Map{"success": false, "message": "Invalid application ID"})
	}

	// the note is optional and the body may be empty altogether
	var req vdto.DecisionRequest
	_ = c.BodyParser(&req)

	var app vmodel.VolunteerApplicationModel
	if err := h.DB.First(&app, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(fiber.Map{"success": false, "message": "Application not found"})
		}
		return c.JSON(fiber.Map{"success": false, "message": failMsg + ": " + err.Error()})
	}

	// status transitions are single-shot: pending is the only reviewable state
	if app.Status != vmodel.ApplicationPending {
		return c.JSON(fiber.Map{"success": false, "message": "Application already reviewed"})
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":        status,
		"responded_at":  now,
		"reviewer_note": req.Note,
		"seen":          true,
	}
	if err := h.DB.Model(&app).Updates(updates).Error; err != nil {
		return c.JSON(fiber.Map{"success": false, "message": failMsg + ": " + err.Error()})
	}

	app.Status = status
	app.RespondedAt = &now
	app.ReviewerNote = &req.Note
	app.Seen = true

	// decision mail is best-effort; the decision stands either way
	if err := h.Mailer.SendDecision(&app); err != nil {
		log.Printf("[MAIL ERROR] decision mail to %s: %v", app.Email, err)
	}

	return c.JSON(fiber.Map{"success": true, "message": okMsg})
}

// DELETE /api/a/volunteer-applications/:id
func (h *VolunteerApplicationController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid application ID")
	}

	var app vmodel.VolunteerApplicationModel
	if err := h.DB.First(&app, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Application not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load application")
	}

	if err := h.DB.Delete(&app).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete application: "+err.Error())
	}

	return helper.Success(c, "Application deleted", fiber.Map{"id": app.ID})
}
