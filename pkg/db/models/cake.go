package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cake represents a ready-made cake sold off the shelf.
type Cake struct {
	ID        uint            `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string          `gorm:"column:name;not null"`
	Flavor    string          `gorm:"column:flavor;not null"`
	Size      string          `gorm:"column:size;not null"`
	Price     decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null"`
	ImageURL  *string         `gorm:"column:image_url"`
	InStock   bool            `gorm:"column:in_stock;not null;default:true"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
