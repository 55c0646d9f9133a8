package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	UserName string    `gorm:"type:varchar(100);not null;column:user_name" json:"user_name"`
	Email    string    `gorm:"type:varchar(150);unique;not null;column:email" json:"email"`
	Password string    `gorm:"type:varchar(250);not null;column:password" json:"-"`

	// Role claim carried into the access token: admin | dentist | guardian
	Role     string `gorm:"type:varchar(20);not null;default:'guardian';column:role" json:"role"`
	IsActive bool   `gorm:"not null;default:true;column:is_active" json:"is_active"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt *time.Time     `gorm:"column:updated_at;autoUpdateTime" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (UserModel) TableName() string { return "users" }
