package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GuardianModel is the responsible adult who registers children for care.
type GuardianModel struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`

	Name    string `gorm:"type:varchar(150);not null;column:name" json:"name"`
	TaxID   string `gorm:"type:varchar(20);unique;not null;column:tax_id" json:"tax_id"`
	Email   string `gorm:"type:varchar(150);not null;column:email" json:"email"`
	Phone   string `gorm:"type:varchar(30);column:phone" json:"phone"`
	Address string `gorm:"type:varchar(250);column:address" json:"address"`

	Children []ChildModel `gorm:"foreignKey:GuardianID" json:"children,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt *time.Time     `gorm:"column:updated_at;autoUpdateTime" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (GuardianModel) TableName() string { return "guardians" }
