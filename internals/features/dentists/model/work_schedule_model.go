package model

import (
	"time"

	"github.com/google/uuid"
)

// WorkScheduleModel is managed elsewhere; this side only reads it for the
// dentist forms and the belongs-to link.
type WorkScheduleModel struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null;column:name" json:"name"`
	Description string    `gorm:"type:text;column:description" json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (WorkScheduleModel) TableName() string { return "work_schedules" }
