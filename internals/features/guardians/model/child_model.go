package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChildModel struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	GuardianID uuid.UUID `gorm:"type:uuid;not null;index;column:guardian_id" json:"guardian_id"`

	Name      string     `gorm:"type:varchar(150);not null;column:name" json:"name"`
	BirthDate *time.Time `gorm:"type:date;column:birth_date" json:"birth_date,omitempty"`
	Notes     string     `gorm:"type:text;column:notes" json:"notes,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt *time.Time     `gorm:"column:updated_at;autoUpdateTime" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (ChildModel) TableName() string { return "children" }
