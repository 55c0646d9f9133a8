package dto

import (
	"time"

	"gorm.io/datatypes"

	vmodel "odontocare_backend/internals/features/volunteers/model"
)

/* ===================== REQUESTS ===================== */

type CreateApplicationRequest struct {
	Name               string         `json:"name" validate:"required,min=2,max=150"`
	Email              string         `json:"email" validate:"required,email"`
	Phone              string         `json:"phone" validate:"omitempty,max=30"`
	LicenseNumber      string         `json:"license_number" validate:"omitempty,max=30"`
	Message            string         `json:"message" validate:"omitempty,max=2000"`
	WeeklyAvailability datatypes.JSON `json:"weekly_availability" validate:"omitempty"`
}

func (r *CreateApplicationRequest) ToModel() *vmodel.VolunteerApplicationModel {
	return &vmodel.VolunteerApplicationModel{
		Name:               r.Name,
		Email:              r.Email,
		Phone:              r.Phone,
		LicenseNumber:      r.LicenseNumber,
		Message:            r.Message,
		WeeklyAvailability: r.WeeklyAvailability,
		Status:             vmodel.ApplicationPending,
		Seen:               false,
		SubmittedAt:        time.Now(),
	}
}

type DecisionRequest struct {
	Note string `json:"note" validate:"omitempty,max=2000"`
}

/* ===================== RESPONSES ===================== */

type ApplicationResponse struct {
	ID                 string         `json:"id"`
	Name               string         `json:"name"`
	Email              string         `json:"email"`
	Phone              string         `json:"phone,omitempty"`
	LicenseNumber      string         `json:"license_number,omitempty"`
	Message            string         `json:"message,omitempty"`
	WeeklyAvailability datatypes.JSON `json:"weekly_availability,omitempty"`
	Status             string         `json:"status"`
	Seen               bool           `json:"seen"`
	SubmittedAt        time.Time      `json:"submitted_at"`
	RespondedAt        *time.Time     `json:"responded_at,omitempty"`
	ReviewerNote       *string        `json:"reviewer_note,omitempty"`
}

func NewApplicationResponse(m *vmodel.VolunteerApplicationModel) ApplicationResponse {
	return ApplicationResponse{
		ID:                 m.ID.String(),
		Name:               m.Name,
		Email:              m.Email,
		Phone:              m.Phone,
		LicenseNumber:      m.LicenseNumber,
		Message:            m.Message,
		WeeklyAvailability: m.WeeklyAvailability,
		Status:             string(m.Status),
		Seen:               m.Seen,
		SubmittedAt:        m.SubmittedAt,
		RespondedAt:        m.RespondedAt,
		ReviewerNote:       m.ReviewerNote,
	}
}

func NewApplicationResponses(ms []vmodel.VolunteerApplicationModel) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewApplicationResponse(&ms[i]))
	}
	return out
}
