package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DentistModel struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`

	Name          string `gorm:"type:varchar(150);not null;column:name" json:"name"`
	TaxID         string `gorm:"type:varchar(20);unique;not null;column:tax_id" json:"tax_id"`
	LicenseNumber string `gorm:"type:varchar(30);unique;not null;column:license_number" json:"license_number"`
	Address       string `gorm:"type:varchar(250);column:address" json:"address"`
	Email         string `gorm:"type:varchar(150);not null;column:email" json:"email"`
	Phone         string `gorm:"type:varchar(30);column:phone" json:"phone"`

	ScheduleID *uuid.UUID         `gorm:"type:uuid;column:schedule_id" json:"schedule_id,omitempty"`
	Schedule   *WorkScheduleModel `gorm:"foreignKey:ScheduleID" json:"schedule,omitempty"`

	Availabilities []DentistAvailabilityModel `gorm:"foreignKey:DentistID" json:"availabilities,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt *time.Time     `gorm:"column:updated_at;autoUpdateTime" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (DentistModel) TableName() string { return "dentists" }
