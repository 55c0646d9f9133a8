package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	gdto "odontocare_backend/internals/features/guardians/dto"
	gmodel "odontocare_backend/internals/features/guardians/model"
	helper "odontocare_backend/internals/helpers"
)

var validate = validator.New()

type GuardianController struct {
	DB *gorm.DB
}

func NewGuardianController(db *gorm.DB) *GuardianController {
	return &GuardianController{DB: db}
}

// GET /api/a/guardians
func (h *GuardianController) List(c *fiber.Ctx) error {
	var guardians []gmodel.GuardianModel
	if err := h.DB.Preload("Children").Order("name ASC").Find(&guardians).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load guardians")
	}
	return helper.Success(c, "OK", guardians)
}

// GET /api/a/guardians/:id
func (h *GuardianController) Details(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid guardian ID")
	}

	var guardian gmodel.GuardianModel
	if err := h.DB.Preload("Children").First(&guardian, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Guardian not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load guardian")
	}
	return helper.Success(c, "OK", guardian)
}

// POST /api/a/guardians
func (h *GuardianController) Create(c *fiber.Ctx) error {
	var req gdto.CreateGuardianRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Tax ID already registered")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create guardian")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Guardian registered", m)
}

// DELETE /api/a/guardians/:id
func (h *GuardianController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid guardian ID")
	}

	var guardian gmodel.GuardianModel
	if err := h.DB.First(&guardian, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Guardian not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load guardian")
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("guardian_id = ?", guardian.ID).Delete(&gmodel.ChildModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&guardian).Error
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete guardian: "+err.Error())
	}
	return helper.Success(c, "Guardian removed", fiber.Map{"id": guardian.ID})
}

/* ===================== CHILDREN ===================== */

// POST /api/a/guardians/:id/children
func (h *GuardianController) AddChild(c *fiber.Ctx) error {
	guardianID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid guardian ID")
	}

	var req gdto.CreateChildRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var guardian gmodel.GuardianModel
	if err := h.DB.First(&guardian, "id = ?", guardianID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Guardian not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load guardian")
	}

	child := gmodel.ChildModel{
		GuardianID: guardian.ID,
		Name:       req.Name,
		BirthDate:  req.BirthDate,
		Notes:      req.Notes,
	}
	if err := h.DB.Create(&child).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to register child")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Child registered", child)
}

// DELETE /api/a/children/:id
func (h *GuardianController) DeleteChild(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid child ID")
	}

	var child gmodel.ChildModel
	if err := h.DB.First(&child, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Child not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load child")
	}

	if err := h.DB.Delete(&child).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete child: "+err.Error())
	}
	return helper.Success(c, "Child removed", fiber.Map{"id": child.ID})
}
