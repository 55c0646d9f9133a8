package model

import (
	"database/sql/driver"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/*
Application status (ENUM in DB):
- "pending"
- "approved"
- "rejected"

pending is the only non-terminal state; the seen flag is an independent,
monotonic axis.
*/
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// Normalize to lower-case on scan/save in case the source is mixed-case.
func (s *ApplicationStatus) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*s = ApplicationStatus(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*s = ApplicationStatus(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*s = ""
	default:
		*s = ApplicationStatus(strings.ToLower(strings.TrimSpace(v.(string))))
	}
	return nil
}

func (s ApplicationStatus) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(s))), nil
}

type VolunteerApplicationModel struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`

	// Applicant
	Name          string `gorm:"type:varchar(150);not null;column:name" json:"name"`
	Email         string `gorm:"type:varchar(150);not null;column:email" json:"email"`
	Phone         string `gorm:"type:varchar(30);column:phone" json:"phone"`
	LicenseNumber string `gorm:"type:varchar(30);column:license_number" json:"license_number"`
	Message       string `gorm:"type:text;column:message" json:"message"`

	// Free-form weekly availability the applicant offered on intake
	WeeklyAvailability datatypes.JSON `gorm:"column:weekly_availability" json:"weekly_availability,omitempty"`

	// Review state
	Status       ApplicationStatus `gorm:"type:application_status_enum;not null;default:'pending';column:status" json:"status"`
	Seen         bool              `gorm:"not null;default:false;column:seen" json:"seen"`
	SubmittedAt  time.Time         `gorm:"not null;column:submitted_at" json:"submitted_at"`
	RespondedAt  *time.Time        `gorm:"column:responded_at" json:"responded_at,omitempty"`
	ReviewerNote *string           `gorm:"type:text;column:reviewer_note" json:"reviewer_note,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt *time.Time     `gorm:"column:updated_at;autoUpdateTime" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (VolunteerApplicationModel) TableName() string { return "volunteer_applications" }
