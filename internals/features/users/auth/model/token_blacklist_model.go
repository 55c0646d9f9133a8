package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TokenBlacklist holds revoked access tokens until they would have expired
// anyway; a background cleanup purges old rows.
type TokenBlacklist struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	Token     string         `gorm:"type:text;not null;column:token" json:"token"`
	ExpiredAt time.Time      `gorm:"not null;column:expired_at" json:"expired_at"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (TokenBlacklist) TableName() string { return "token_blacklist" }
