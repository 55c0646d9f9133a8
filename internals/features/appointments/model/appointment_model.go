package model

import (
	"database/sql/driver"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dmodel "odontocare_backend/internals/features/dentists/model"
	gmodel "odontocare_backend/internals/features/guardians/model"
)

type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

func (s *AppointmentStatus) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*s = AppointmentStatus(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*s = AppointmentStatus(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*s = ""
	default:
		*s = AppointmentStatus(strings.ToLower(strings.TrimSpace(v.(string))))
	}
	return nil
}

func (s AppointmentStatus) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(s))), nil
}

type AppointmentModel struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`

	ChildID   uuid.UUID `gorm:"type:uuid;not null;index;column:child_id" json:"child_id"`
	DentistID uuid.UUID `gorm:"type:uuid;not null;index;column:dentist_id" json:"dentist_id"`

	Child   *gmodel.ChildModel   `gorm:"foreignKey:ChildID" json:"child,omitempty"`
	Dentist *dmodel.DentistModel `gorm:"foreignKey:DentistID" json:"dentist,omitempty"`

	ScheduledAt time.Time         `gorm:"not null;column:scheduled_at" json:"scheduled_at"`
	Status      AppointmentStatus `gorm:"type:appointment_status_enum;not null;default:'scheduled';column:status" json:"status"`
	Notes       string            `gorm:"type:text;column:notes" json:"notes,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt *time.Time     `gorm:"column:updated_at;autoUpdateTime" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (AppointmentModel) TableName() string { return "appointments" }
