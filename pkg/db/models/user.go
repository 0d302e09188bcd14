package models

import (
	"time"

	"github.com/lizbakes/cakeapp-backend/pkg/enums"
)

// User represents the canonical identity entity.
type User struct {
	ID               uint           `gorm:"column:id;primaryKey;autoIncrement"`
	Name             string         `gorm:"column:name;not null"`
	Email            string         `gorm:"type:text;not null;uniqueIndex"`
	PasswordHash     string         `gorm:"column:password_hash;not null"`
	Phone            string         `gorm:"column:phone;not null"`
	Address          *string        `gorm:"column:address"`
	Role             enums.UserRole `gorm:"column:role;type:text;not null;default:customer"`
	IsVerified       bool           `gorm:"column:is_verified;not null;default:false"`
	VerificationCode *int           `gorm:"column:verification_code"`
	CreatedAt        time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
