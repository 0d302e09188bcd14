package orders

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/lizbakes/cakeapp-backend/pkg/db/models"
	"github.com/lizbakes/cakeapp-backend/pkg/enums"
)

// OrderDTO is the transport shape for a custom cake order.
type OrderDTO struct {
	ID                  uint              `json:"id"`
	UserID              uint              `json:"user_id"`
	DesignID            *uint             `json:"design_id,omitempty"`
	Size                string            `json:"size"`
	Flavor              string            `json:"flavor"`
	Message             *string           `json:"message,omitempty"`
	Status              enums.OrderStatus `json:"status"`
	DeliveryDate        *time.Time        `json:"delivery_date,omitempty"`
	Notes               *string           `json:"notes,omitempty"`
	ExtendedDescription *string           `json:"extended_description,omitempty"`
	SampleImages        []string          `json:"sample_images"`
	ColorPreferences    []string          `json:"color_preferences"`
	Price               decimal.Decimal   `json:"price"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

// CreateOrderRequest is the payload accepted when placing an order.
type CreateOrderRequest struct {
	UserID              uint            `json:"user_id" validate:"required"`
	DesignID            *uint           `json:"design_id,omitempty"`
	Size                string          `json:"size" validate:"required"`
	Flavor              string          `json:"flavor" validate:"required"`
	Message             *string         `json:"message,omitempty"`
	DeliveryDate        *time.Time      `json:"delivery_date,omitempty"`
	Notes               *string         `json:"notes,omitempty"`
	ExtendedDescription *string         `json:"extended_description,omitempty"`
	SampleImages        []string        `json:"sample_images,omitempty"`
	ColorPreferences    []string        `json:"color_preferences,omitempty"`
	Price               decimal.Decimal `json:"price"`
}

// UpdateStatusRequest patches only the order status.
type UpdateStatusRequest struct {
	Status enums.OrderStatus `json:"status" validate:"required"`
}

// UpdateDetailsRequest patches the free-form order details. Nil pointers
// leave the stored values untouched.
type UpdateDetailsRequest struct {
	Notes               *string    `json:"notes,omitempty"`
	ExtendedDescription *string    `json:"extended_description,omitempty"`
	DeliveryDate        *time.Time `json:"delivery_date,omitempty"`
	SampleImages        []string   `json:"sample_images,omitempty"`
	ColorPreferences    []string   `json:"color_preferences,omitempty"`
}

// Page is a cursor-paginated slice of orders.
type Page struct {
	Orders     []OrderDTO `json:"orders"`
	NextCursor *string    `json:"next_cursor,omitempty"`
}

func FromModel(o *models.Order) *OrderDTO {
	if o == nil {
		return nil
	}
	return &OrderDTO{
		ID:                  o.ID,
		UserID:              o.UserID,
		DesignID:            o.DesignID,
		Size:                o.Size,
		Flavor:              o.Flavor,
		Message:             o.Message,
		Status:              o.Status,
		DeliveryDate:        o.DeliveryDate,
		Notes:               o.Notes,
		ExtendedDescription: o.ExtendedDescription,
		SampleImages:        append([]string{}, o.SampleImages...),
		ColorPreferences:    append([]string{}, o.ColorPreferences...),
		Price:               o.Price,
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           o.UpdatedAt,
	}
}

func (r CreateOrderRequest) ToModel() *models.Order {
	return &models.Order{
		UserID:              r.UserID,
		DesignID:            r.DesignID,
		Size:                r.Size,
		Flavor:              r.Flavor,
		Message:             r.Message,
		Status:              enums.OrderStatusPending,
		DeliveryDate:        r.DeliveryDate,
		Notes:               r.Notes,
		ExtendedDescription: r.ExtendedDescription,
		SampleImages:        pq.StringArray(r.SampleImages),
		ColorPreferences:    pq.StringArray(r.ColorPreferences),
		Price:               r.Price,
	}
}
