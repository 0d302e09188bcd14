package stages

import (
	"context"

	"gorm.io/gorm"

	"github.com/lizbakes/cakeapp-backend/pkg/db/models"
)

// Repository exposes stage persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a stages repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new stage and returns the persisted row.
func (r *Repository) Create(ctx context.Context, stage *models.Stage) (*models.Stage, error) {
	if err := r.db.WithContext(ctx).Create(stage).Error; err != nil {
		return nil, err
	}
	return stage, nil
}

// FindByID loads a stage by its numeric id.
func (r *Repository) FindByID(ctx context.Context, id uint) (*models.Stage, error) {
	var stage models.Stage
	if err := r.db.WithContext(ctx).First(&stage, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &stage, nil
}

// List returns every stage ordered by id.
func (r *Repository) List(ctx context.Context) ([]models.Stage, error) {
	var found []models.Stage
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&found).Error; err != nil {
		return nil, err
	}
	return found, nil
}

// ListByOrder returns the stages recorded for one order, oldest first.
func (r *Repository) ListByOrder(ctx context.Context, orderID uint) ([]models.Stage, error) {
	var found []models.Stage
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id ASC").
		Find(&found).Error; err != nil {
		return nil, err
	}
	return found, nil
}

// Save overwrites the stored stage row.
func (r *Repository) Save(ctx context.Context, stage *models.Stage) (*models.Stage, error) {
	if err := r.db.WithContext(ctx).Save(stage).Error; err != nil {
		return nil, err
	}
	return stage, nil
}

// Delete removes the stage row permanently.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Stage{}, "id = ?", id).Error
}
