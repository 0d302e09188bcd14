package deliveries

import (
	"context"

	"gorm.io/gorm"

	"github.com/lizbakes/cakeapp-backend/pkg/db/models"
)

// Repository exposes delivery persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a deliveries repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new delivery and returns the persisted row.
func (r *Repository) Create(ctx context.Context, delivery *models.Delivery) (*models.Delivery, error) {
	if err := r.db.WithContext(ctx).Create(delivery).Error; err != nil {
		return nil, err
	}
	return delivery, nil
}

// FindByID loads a delivery by its numeric id.
func (r *Repository) FindByID(ctx context.Context, id uint) (*models.Delivery, error) {
	var delivery models.Delivery
	if err := r.db.WithContext(ctx).First(&delivery, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &delivery, nil
}

// List returns every delivery ordered by id.
func (r *Repository) List(ctx context.Context) ([]models.Delivery, error) {
	var found []models.Delivery
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&found).Error; err != nil {
		return nil, err
	}
	return found, nil
}

// Save overwrites the stored delivery row.
func (r *Repository) Save(ctx context.Context, delivery *models.Delivery) (*models.Delivery, error) {
	if err := r.db.WithContext(ctx).Save(delivery).Error; err != nil {
		return nil, err
	}
	return delivery, nil
}

// Delete removes the delivery row permanently.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Delivery{}, "id = ?", id).Error
}
