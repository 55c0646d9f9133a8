package dto

import (
	"time"

	gmodel "odontocare_backend/internals/features/guardians/model"
)

/* ===================== REQUESTS ===================== */

type CreateGuardianRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=150"`
	TaxID   string `json:"tax_id" validate:"required,min=5,max=20"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,max=30"`
	Address string `json:"address" validate:"omitempty,max=250"`
}

func (r *CreateGuardianRequest) ToModel() *gmodel.GuardianModel {
	return &gmodel.GuardianModel{
		Name:    r.Name,
		TaxID:   r.TaxID,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
	}
}

type CreateChildRequest struct {
	Name      string     `json:"name" validate:"required,min=2,max=150"`
	BirthDate *time.Time `json:"birth_date" validate:"omitempty"`
	Notes     string     `json:"notes" validate:"omitempty,max=2000"`
}
