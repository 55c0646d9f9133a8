package dto

import (
	"time"

	"github.com/google/uuid"

	dmodel "odontocare_backend/internals/features/dentists/model"
	dservice "odontocare_backend/internals/features/dentists/service"
)

/* ===================== REQUESTS ===================== */

type DentistRequest struct {
	Name          string     `json:"name" validate:"required,min=2,max=150"`
	TaxID         string     `json:"tax_id" validate:"required,min=5,max=20"`
	LicenseNumber string     `json:"license_number" validate:"required,min=3,max=30"`
	Address       string     `json:"address" validate:"omitempty,max=250"`
	Email         string     `json:"email" validate:"required,email"`
	Phone         string     `json:"phone" validate:"omitempty,max=30"`
	ScheduleID    *uuid.UUID `json:"schedule_id" validate:"omitempty"`

	Availabilities []dservice.AvailabilityOption `json:"availabilities" validate:"omitempty,max=12,dive"`
}

func (r *DentistRequest) ToModel() *dmodel.DentistModel {
	return &dmodel.DentistModel{
		Name:          r.Name,
		TaxID:         r.TaxID,
		LicenseNumber: r.LicenseNumber,
		Address:       r.Address,
		Email:         r.Email,
		Phone:         r.Phone,
		ScheduleID:    r.ScheduleID,
	}
}

func (r *DentistRequest) ApplyToModel(m *dmodel.DentistModel) {
	m.Name = r.Name
	m.TaxID = r.TaxID
	m.LicenseNumber = r.LicenseNumber
	m.Address = r.Address
	m.Email = r.Email
	m.Phone = r.Phone
	m.ScheduleID = r.ScheduleID
}

/* ===================== RESPONSES ===================== */

type DentistResponse struct {
	ID            string                        `json:"id"`
	Name          string                        `json:"name"`
	TaxID         string                        `json:"tax_id"`
	LicenseNumber string                        `json:"license_number"`
	Address       string                        `json:"address,omitempty"`
	Email         string                        `json:"email"`
	Phone         string                        `json:"phone,omitempty"`
	ScheduleID    *uuid.UUID                    `json:"schedule_id,omitempty"`
	Schedule      *dmodel.WorkScheduleModel     `json:"schedule,omitempty"`
	Availabilities []dmodel.DentistAvailabilityModel `json:"availabilities"`
	CreatedAt     time.Time                     `json:"created_at"`
}

func NewDentistResponse(m *dmodel.DentistModel) DentistResponse {
	avail := m.Availabilities
	if avail == nil {
		avail = []dmodel.DentistAvailabilityModel{}
	}
	return DentistResponse{
		ID:             m.ID.String(),
		Name:           m.Name,
		TaxID:          m.TaxID,
		LicenseNumber:  m.LicenseNumber,
		Address:        m.Address,
		Email:          m.Email,
		Phone:          m.Phone,
		ScheduleID:     m.ScheduleID,
		Schedule:       m.Schedule,
		Availabilities: avail,
		CreatedAt:      m.CreatedAt,
	}
}

func NewDentistResponses(ms []dmodel.DentistModel) []DentistResponse {
	out := make([]DentistResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewDentistResponse(&ms[i]))
	}
	return out
}

// FormResponse backs the create/edit forms: the scalar fields, the schedule
// choices, and the 12-slot template with current selections.
type FormResponse struct {
	Dentist   *DentistResponse              `json:"dentist,omitempty"`
	Schedules []dmodel.WorkScheduleModel    `json:"schedules"`
	Options   []dservice.AvailabilityOption `json:"availability_options"`
}
