package stages

import (
	"time"

	"github.com/lizbakes/cakeapp-backend/pkg/db/models"
	"github.com/lizbakes/cakeapp-backend/pkg/enums"
)

// StageDTO is the production stage representation returned to clients.
type StageDTO struct {
	ID          uint            `json:"id"`
	OrderID     uint            `json:"order_id"`
	StageName   enums.StageName `json:"stage_name"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CreateStageRequest attaches a production stage to an order.
type CreateStageRequest struct {
	OrderID   uint            `json:"order_id" validate:"required"`
	StageName enums.StageName `json:"stage_name" validate:"required"`
}

// FromModel maps a stored stage row into its DTO.
func FromModel(stage *models.Stage) *StageDTO {
	if stage == nil {
		return nil
	}
	return &StageDTO{
		ID:          stage.ID,
		OrderID:     stage.OrderID,
		StageName:   stage.StageName,
		CompletedAt: stage.CompletedAt,
		CreatedAt:   stage.CreatedAt,
		UpdatedAt:   stage.UpdatedAt,
	}
}

// ToModel builds a new stage row. New stages are always incomplete.
func (r CreateStageRequest) ToModel() *models.Stage {
	return &models.Stage{
		OrderID:   r.OrderID,
		StageName: r.StageName,
	}
}
