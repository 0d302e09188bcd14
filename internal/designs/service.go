package designs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/lizbakes/cakeapp-backend/pkg/db/models"
	pkgerrors "github.com/lizbakes/cakeapp-backend/pkg/errors"
)

// Service exposes the design catalog operations used by controllers.
type Service interface {
	Create(ctx context.Context, req CreateDesignRequest) (*DesignDTO, error)
	GetByID(ctx context.Context, id uint) (*DesignDTO, error)
	List(ctx context.Context) ([]DesignDTO, error)
	Update(ctx context.Context, id uint, req UpdateDesignRequest) (*DesignDTO, error)
	Delete(ctx context.Context, id uint) error
}

type repository interface {
	Create(ctx context.Context, design *models.Design) (*models.Design, error)
	FindByID(ctx context.Context, id uint) (*models.Design, error)
	List(ctx context.Context) ([]models.Design, error)
	Save(ctx context.Context, design *models.Design) (*models.Design, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo repository
}

// NewService constructs the designs service.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("designs repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, req CreateDesignRequest) (*DesignDTO, error) {
	if err := validateDesignFields(req.Name, req.BaseFlavor, req.Size); err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, req.ToModel())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create design")
	}
	return FromModel(created), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*DesignDTO, error) {
	design, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return FromModel(design), nil
}

func (s *service) List(ctx context.Context) ([]DesignDTO, error) {
	found, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list designs")
	}
	result := make([]DesignDTO, 0, len(found))
	for i := range found {
		result = append(result, *FromModel(&found[i]))
	}
	return result, nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateDesignRequest) (*DesignDTO, error) {
	if err := validateDesignFields(req.Name, req.BaseFlavor, req.Size); err != nil {
		return nil, err
	}
	design, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	design.Name = req.Name
	design.Description = req.Description
	design.BaseFlavor = req.BaseFlavor
	design.Size = req.Size
	design.Category = req.Category
	design.ImageURL = req.ImageURL
	design.Available = req.Available

	saved, err := s.repo.Save(ctx, design)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update design")
	}
	return FromModel(saved), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete design")
	}
	return nil
}

func (s *service) find(ctx context.Context, id uint) (*models.Design, error) {
	design, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "design not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup design")
	}
	return design, nil
}

func validateDesignFields(name, baseFlavor, size string) error {
	if strings.TrimSpace(name) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if strings.TrimSpace(baseFlavor) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "base_flavor is required")
	}
	if strings.TrimSpace(size) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "size is required")
	}
	return nil
}
