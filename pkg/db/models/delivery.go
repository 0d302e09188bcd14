package models

import (
	"time"

	"github.com/lizbakes/cakeapp-backend/pkg/enums"
)

// Delivery represents the courier handoff scheduled for an order.
type Delivery struct {
	ID             uint                 `gorm:"column:id;primaryKey;autoIncrement"`
	OrderID        uint                 `gorm:"column:order_id;not null;index"`
	Address        string               `gorm:"column:address;not null"`
	DeliveryDate   time.Time            `gorm:"column:delivery_date;not null"`
	CourierName    *string              `gorm:"column:courier_name"`
	CourierContact *string              `gorm:"column:courier_contact"`
	Status         enums.DeliveryStatus `gorm:"column:status;type:text;not null;default:scheduled"`
	CreatedAt      time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time            `gorm:"column:updated_at;autoUpdateTime"`
}
