package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	ddto "odontocare_backend/internals/features/dentists/dto"
	dmodel "odontocare_backend/internals/features/dentists/model"
	dservice "odontocare_backend/internals/features/dentists/service"
	helper "odontocare_backend/internals/helpers"
)

var validate = validator.New()

type DentistController struct {
	DB *gorm.DB
}

func NewDentistController(db *gorm.DB) *DentistController {
	return &DentistController{DB: db}
}

/* ===================== HANDLERS ===================== */

// GET /api/a/dentists
func (h *DentistController) Index(c *fiber.Ctx) error {
	var dentists []dmodel.DentistModel
	if err := h.DB.
		Preload("Schedule").
		Preload("Availabilities").
		Find(&dentists).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load dentists")
	}
	return helper.Success(c, "OK", ddto.NewDentistResponses(dentists))
}

// GET /api/a/dentists/new
// Form payload for the create page: schedules + the untouched 12-slot template.
func (h *DentistController) New(c *fiber.Ctx) error {
	schedules, err := h.listSchedules()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load work schedules")
	}
	return helper.Success(c, "OK", ddto.FormResponse{
		Schedules: schedules,
		Options:   dservice.DefaultAvailabilityOptions(),
	})
}

// POST /api/a/dentists
func (h *DentistController) Create(c *fiber.Ctx) error {
	var req ddto.DentistRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	opts := dservice.CanonicalizeSelections(req.Availabilities)

	// dentist + slots stand or fall together
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		rows := dservice.SelectedToModels(m.ID, opts)
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Tax ID or license number already registered")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create dentist: "+err.Error())
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Dentist registered", ddto.NewDentistResponse(m))
}

// GET /api/a/dentists/:id/edit
// Edit-form payload with the dentist's current slots pre-selected.
func (h *DentistController) Edit(c *fiber.Ctx) error {
	dentist, err := h.findByID(c)
	if err != nil {
		return err
	}

	schedules, lerr := h.listSchedules()
	if lerr != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load work schedules")
	}

	resp := ddto.NewDentistResponse(dentist)
	return helper.Success(c, "OK", ddto.FormResponse{
		Dentist:   &resp,
		Schedules: schedules,
		Options:   dservice.MergeExistingSelections(dentist.Availabilities),
	})
}

// PUT /api/a/dentists/:id
func (h *DentistController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid dentist ID")
	}

	var req ddto.DentistRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var dentist dmodel.DentistModel
	if err := h.DB.First(&dentist, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Dentist not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load dentist")
	}

	req.ApplyToModel(&dentist)
	opts := dservice.CanonicalizeSelections(req.Availabilities)

	// full replace of the slot set, atomically: scalar update, delete all
	// existing rows, insert the current selection
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&dentist).Error; err != nil {
			return err
		}
		if err := tx.Where("dentist_id = ?", dentist.ID).
			Delete(&dmodel.DentistAvailabilityModel{}).Error; err != nil {
			return err
		}
		rows := dservice.SelectedToModels(dentist.ID, opts)
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Tax ID or license number already registered")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update dentist: "+err.Error())
	}

	return helper.Success(c, "Dentist updated", ddto.NewDentistResponse(&dentist))
}

// GET /api/a/dentists/:id/delete
// Confirmation step before the destructive call.
func (h *DentistController) DeleteConfirm(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid dentist ID")
	}

	var dentist dmodel.DentistModel
	if err := h.DB.Preload("Schedule").First(&dentist, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Dentist not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load dentist")
	}

	return helper.Success(c, "OK", ddto.NewDentistResponse(&dentist))
}

// DELETE /api/a/dentists/:id
// Deleting an id that is already gone is a silent no-op.
func (h *DentistController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid dentist ID")
	}

	var dentist dmodel.DentistModel
	if err := h.DB.First(&dentist, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Success(c, "Dentist removed", nil)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load dentist")
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("dentist_id = ?", dentist.ID).
			Delete(&dmodel.DentistAvailabilityModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&dentist).Error
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete dentist: "+err.Error())
	}

	return helper.Success(c, "Dentist removed", fiber.Map{"id": dentist.ID})
}

// GET /api/a/dentists/:id
func (h *DentistController) Details(c *fiber.Ctx) error {
	dentist, err := h.findByID(c)
	if err != nil {
		return err
	}
	return helper.Success(c, "OK", ddto.NewDentistResponse(dentist))
}

/* ===================== INTERNAL ===================== */

// findByID loads the dentist aggregate; errors come back as fiber errors so
// the handler can return them straight to the app error handler.
func (h *DentistController) findByID(c *fiber.Ctx) (*dmodel.DentistModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid dentist ID")
	}

	var dentist dmodel.DentistModel
	if err := h.DB.
		Preload("Schedule").
		Preload("Availabilities").
		First(&dentist, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Dentist not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load dentist")
	}
	return &dentist, nil
}

func (h *DentistController) listSchedules() ([]dmodel.WorkScheduleModel, error) {
	var schedules []dmodel.WorkScheduleModel
	if err := h.DB.Order("name ASC").Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}
