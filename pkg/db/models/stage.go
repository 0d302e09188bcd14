package models

import (
	"time"

	"github.com/lizbakes/cakeapp-backend/pkg/enums"
)

// Stage represents a production milestone attached to an order.
type Stage struct {
	ID          uint            `gorm:"column:id;primaryKey;autoIncrement"`
	OrderID     uint            `gorm:"column:order_id;not null;index"`
	StageName   enums.StageName `gorm:"column:stage_name;type:text;not null"`
	CompletedAt *time.Time      `gorm:"column:completed_at"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
