package designs

import (
	"time"

	"github.com/lizbakes/cakeapp-backend/pkg/db/models"
)

// DesignDTO is the transport shape for a cake design.
type DesignDTO struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	BaseFlavor  string    `json:"base_flavor"`
	Size        string    `json:"size"`
	Category    *string   `json:"category,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateDesignRequest is the payload accepted when adding a design.
type CreateDesignRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description,omitempty"`
	BaseFlavor  string  `json:"base_flavor" validate:"required"`
	Size        string  `json:"size" validate:"required"`
	Category    *string `json:"category,omitempty"`
	ImageURL    *string `json:"image_url,omitempty" validate:"omitempty,url"`
	Available   *bool   `json:"available,omitempty"`
}

// UpdateDesignRequest replaces the stored design wholesale (PUT semantics).
type UpdateDesignRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description,omitempty"`
	BaseFlavor  string  `json:"base_flavor" validate:"required"`
	Size        string  `json:"size" validate:"required"`
	Category    *string `json:"category,omitempty"`
	ImageURL    *string `json:"image_url,omitempty" validate:"omitempty,url"`
	Available   bool    `json:"available"`
}

func FromModel(d *models.Design) *DesignDTO {
	if d == nil {
		return nil
	}
	return &DesignDTO{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		BaseFlavor:  d.BaseFlavor,
		Size:        d.Size,
		Category:    d.Category,
		ImageURL:    d.ImageURL,
		Available:   d.Available,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (r CreateDesignRequest) ToModel() *models.Design {
	available := true
	if r.Available != nil {
		available = *r.Available
	}
	return &models.Design{
		Name:        r.Name,
		Description: r.Description,
		BaseFlavor:  r.BaseFlavor,
		Size:        r.Size,
		Category:    r.Category,
		ImageURL:    r.ImageURL,
		Available:   available,
	}
}
