package designs

import (
	"context"

	"gorm.io/gorm"

	"github.com/lizbakes/cakeapp-backend/pkg/db/models"
)

// Repository exposes design persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a designs repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new design and returns the persisted row.
func (r *Repository) Create(ctx context.Context, design *models.Design) (*models.Design, error) {
	if err := r.db.WithContext(ctx).Create(design).Error; err != nil {
		return nil, err
	}
	return design, nil
}

// FindByID loads a design by its numeric id.
func (r *Repository) FindByID(ctx context.Context, id uint) (*models.Design, error) {
	var design models.Design
	if err := r.db.WithContext(ctx).First(&design, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &design, nil
}

// List returns every design ordered by id.
func (r *Repository) List(ctx context.Context) ([]models.Design, error) {
	var found []models.Design
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&found).Error; err != nil {
		return nil, err
	}
	return found, nil
}

// Save overwrites the stored design row.
func (r *Repository) Save(ctx context.Context, design *models.Design) (*models.Design, error) {
	if err := r.db.WithContext(ctx).Save(design).Error; err != nil {
		return nil, err
	}
	return design, nil
}

// Delete removes the design row permanently.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Design{}, "id = ?", id).Error
}
