package deliveries

import (
	"time"

	"github.com/lizbakes/cakeapp-backend/pkg/db/models"
	"github.com/lizbakes/cakeapp-backend/pkg/enums"
)

// DeliveryDTO is the delivery representation returned to clients.
type DeliveryDTO struct {
	ID             uint                 `json:"id"`
	OrderID        uint                 `json:"order_id"`
	Address        string               `json:"address"`
	DeliveryDate   time.Time            `json:"delivery_date"`
	CourierName    *string              `json:"courier_name,omitempty"`
	CourierContact *string              `json:"courier_contact,omitempty"`
	Status         enums.DeliveryStatus `json:"status"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

// ScheduleDeliveryRequest creates a delivery for an order.
type ScheduleDeliveryRequest struct {
	OrderID        uint      `json:"order_id" validate:"required"`
	Address        string    `json:"address" validate:"required"`
	DeliveryDate   time.Time `json:"delivery_date" validate:"required"`
	CourierName    *string   `json:"courier_name"`
	CourierContact *string   `json:"courier_contact"`
}

// UpdateDeliveryRequest replaces the mutable delivery fields. Field
// presence is checked in the service so a missing row still maps to 404.
type UpdateDeliveryRequest struct {
	Address        string               `json:"address"`
	DeliveryDate   time.Time            `json:"delivery_date"`
	CourierName    *string              `json:"courier_name"`
	CourierContact *string              `json:"courier_contact"`
	Status         enums.DeliveryStatus `json:"status"`
}

// FromModel maps a stored delivery row into its DTO.
func FromModel(delivery *models.Delivery) *DeliveryDTO {
	if delivery == nil {
		return nil
	}
	return &DeliveryDTO{
		ID:             delivery.ID,
		OrderID:        delivery.OrderID,
		Address:        delivery.Address,
		DeliveryDate:   delivery.DeliveryDate,
		CourierName:    delivery.CourierName,
		CourierContact: delivery.CourierContact,
		Status:         delivery.Status,
		CreatedAt:      delivery.CreatedAt,
		UpdatedAt:      delivery.UpdatedAt,
	}
}

// ToModel builds a new delivery row. Status always starts scheduled.
func (r ScheduleDeliveryRequest) ToModel() *models.Delivery {
	return &models.Delivery{
		OrderID:        r.OrderID,
		Address:        r.Address,
		DeliveryDate:   r.DeliveryDate,
		CourierName:    r.CourierName,
		CourierContact: r.CourierContact,
		Status:         enums.DeliveryStatusScheduled,
	}
}
