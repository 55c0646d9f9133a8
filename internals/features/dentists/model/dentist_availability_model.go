package model

import (
	"time"

	"github.com/google/uuid"
)

// DentistAvailabilityModel is one selected slot of the fixed weekly template
// (weekday x window). Times are "HH:MM" strings; equality against the
// template is exact on the three fields.
type DentistAvailabilityModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	DentistID uuid.UUID `gorm:"type:uuid;not null;index;column:dentist_id" json:"dentist_id"`

	Weekday   string `gorm:"type:varchar(10);not null;column:weekday" json:"weekday"`
	StartTime string `gorm:"type:varchar(5);not null;column:start_time" json:"start_time"`
	EndTime   string `gorm:"type:varchar(5);not null;column:end_time" json:"end_time"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (DentistAvailabilityModel) TableName() string { return "dentist_availabilities" }
