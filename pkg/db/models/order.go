package models

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/lizbakes/cakeapp-backend/pkg/enums"
)

// Order represents a custom cake order placed by a user.
type Order struct {
	ID                  uint              `gorm:"column:id;primaryKey;autoIncrement"`
	UserID              uint              `gorm:"column:user_id;not null;index"`
	DesignID            *uint             `gorm:"column:design_id;index"`
	Size                string            `gorm:"column:size;not null"`
	Flavor              string            `gorm:"column:flavor;not null"`
	Message             *string           `gorm:"column:message"`
	Status              enums.OrderStatus `gorm:"column:status;type:text;not null;default:pending"`
	DeliveryDate        *time.Time        `gorm:"column:delivery_date"`
	Notes               *string           `gorm:"column:notes"`
	ExtendedDescription *string           `gorm:"column:extended_description"`
	SampleImages        pq.StringArray    `gorm:"column:sample_images;type:text[]"`
	ColorPreferences    pq.StringArray    `gorm:"column:color_preferences;type:text[]"`
	Price               decimal.Decimal   `gorm:"column:price;type:numeric(10,2);not null;default:0"`
	CreatedAt           time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
