package cakes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/lizbakes/cakeapp-backend/pkg/db/models"
	pkgerrors "github.com/lizbakes/cakeapp-backend/pkg/errors"
)

// Service exposes the ready-made cake catalog operations.
type Service interface {
	Create(ctx context.Context, req CreateCakeRequest) (*CakeDTO, error)
	GetByID(ctx context.Context, id uint) (*CakeDTO, error)
	List(ctx context.Context) ([]CakeDTO, error)
	Update(ctx context.Context, id uint, req UpdateCakeRequest) (*CakeDTO, error)
	Delete(ctx context.Context, id uint) error
}

type repository interface {
	Create(ctx context.Context, cake *models.Cake) (*models.Cake, error)
	FindByID(ctx context.Context, id uint) (*models.Cake, error)
	List(ctx context.Context) ([]models.Cake, error)
	Save(ctx context.Context, cake *models.Cake) (*models.Cake, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo repository
}

// NewService constructs the cakes service.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cakes repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, req CreateCakeRequest) (*CakeDTO, error) {
	if err := validateCakeFields(req.Name, req.Flavor, req.Size); err != nil {
		return nil, err
	}
	if req.Price.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative")
	}
	created, err := s.repo.Create(ctx, req.ToModel())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create cake")
	}
	return FromModel(created), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*CakeDTO, error) {
	cake, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return FromModel(cake), nil
}

func (s *service) List(ctx context.Context) ([]CakeDTO, error) {
	found, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list cakes")
	}
	result := make([]CakeDTO, 0, len(found))
	for i := range found {
		result = append(result, *FromModel(&found[i]))
	}
	return result, nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateCakeRequest) (*CakeDTO, error) {
	if err := validateCakeFields(req.Name, req.Flavor, req.Size); err != nil {
		return nil, err
	}
	if req.Price.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative")
	}
	cake, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	cake.Name = req.Name
	cake.Flavor = req.Flavor
	cake.Size = req.Size
	cake.Price = req.Price
	cake.ImageURL = req.ImageURL
	cake.InStock = req.InStock

	saved, err := s.repo.Save(ctx, cake)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update cake")
	}
	return FromModel(saved), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete cake")
	}
	return nil
}

func (s *service) find(ctx context.Context, id uint) (*models.Cake, error) {
	cake, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cake not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup cake")
	}
	return cake, nil
}

func validateCakeFields(name, flavor, size string) error {
	if strings.TrimSpace(name) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if strings.TrimSpace(flavor) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "flavor is required")
	}
	if strings.TrimSpace(size) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "size is required")
	}
	return nil
}
