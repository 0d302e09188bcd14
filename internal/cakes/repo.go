package cakes

import (
	"context"

	"gorm.io/gorm"

	"github.com/lizbakes/cakeapp-backend/pkg/db/models"
)

// Repository exposes cake persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a cakes repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new cake and returns the persisted row.
func (r *Repository) Create(ctx context.Context, cake *models.Cake) (*models.Cake, error) {
	if err := r.db.WithContext(ctx).Create(cake).Error; err != nil {
		return nil, err
	}
	return cake, nil
}

// FindByID loads a cake by its numeric id.
func (r *Repository) FindByID(ctx context.Context, id uint) (*models.Cake, error) {
	var cake models.Cake
	if err := r.db.WithContext(ctx).First(&cake, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &cake, nil
}

// List returns every cake ordered by id.
func (r *Repository) List(ctx context.Context) ([]models.Cake, error) {
	var found []models.Cake
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&found).Error; err != nil {
		return nil, err
	}
	return found, nil
}

// Save overwrites the stored cake row.
func (r *Repository) Save(ctx context.Context, cake *models.Cake) (*models.Cake, error) {
	if err := r.db.WithContext(ctx).Save(cake).Error; err != nil {
		return nil, err
	}
	return cake, nil
}

// Delete removes the cake row permanently.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Cake{}, "id = ?", id).Error
}
