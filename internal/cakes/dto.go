package cakes

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lizbakes/cakeapp-backend/pkg/db/models"
)

// CakeDTO is the transport shape for a ready-made cake.
type CakeDTO struct {
	ID        uint            `json:"id"`
	Name      string          `json:"name"`
	Flavor    string          `json:"flavor"`
	Size      string          `json:"size"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  *string         `json:"image_url,omitempty"`
	InStock   bool            `json:"in_stock"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CreateCakeRequest is the payload accepted when adding a cake.
type CreateCakeRequest struct {
	Name     string          `json:"name" validate:"required"`
	Flavor   string          `json:"flavor" validate:"required"`
	Size     string          `json:"size" validate:"required"`
	Price    decimal.Decimal `json:"price" validate:"required"`
	ImageURL *string         `json:"image_url,omitempty" validate:"omitempty,url"`
	InStock  *bool           `json:"in_stock,omitempty"`
}

// UpdateCakeRequest replaces the stored cake wholesale (PUT semantics).
type UpdateCakeRequest struct {
	Name     string          `json:"name" validate:"required"`
	Flavor   string          `json:"flavor" validate:"required"`
	Size     string          `json:"size" validate:"required"`
	Price    decimal.Decimal `json:"price" validate:"required"`
	ImageURL *string         `json:"image_url,omitempty" validate:"omitempty,url"`
	InStock  bool            `json:"in_stock"`
}

func FromModel(c *models.Cake) *CakeDTO {
	if c == nil {
		return nil
	}
	return &CakeDTO{
		ID:        c.ID,
		Name:      c.Name,
		Flavor:    c.Flavor,
		Size:      c.Size,
		Price:     c.Price,
		ImageURL:  c.ImageURL,
		InStock:   c.InStock,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (r CreateCakeRequest) ToModel() *models.Cake {
	inStock := true
	if r.InStock != nil {
		inStock = *r.InStock
	}
	return &models.Cake{
		Name:     r.Name,
		Flavor:   r.Flavor,
		Size:     r.Size,
		Price:    r.Price,
		ImageURL: r.ImageURL,
		InStock:  inStock,
	}
}
