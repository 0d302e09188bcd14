package stages

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/lizbakes/cakeapp-backend/pkg/db/models"
	pkgerrors "github.com/lizbakes/cakeapp-backend/pkg/errors"
)

// Service exposes the production stage operations used by controllers.
type Service interface {
	Create(ctx context.Context, req CreateStageRequest) (*StageDTO, error)
	GetByID(ctx context.Context, id uint) (*StageDTO, error)
	List(ctx context.Context) ([]StageDTO, error)
	ListByOrder(ctx context.Context, orderID uint) ([]StageDTO, error)
	Complete(ctx context.Context, id uint) (*StageDTO, error)
	Delete(ctx context.Context, id uint) error
}

type repository interface {
	Create(ctx context.Context, stage *models.Stage) (*models.Stage, error)
	FindByID(ctx context.Context, id uint) (*models.Stage, error)
	List(ctx context.Context) ([]models.Stage, error)
	ListByOrder(ctx context.Context, orderID uint) ([]models.Stage, error)
	Save(ctx context.Context, stage *models.Stage) (*models.Stage, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo repository
	now  func() time.Time
}

// NewService constructs the stages service.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("stages repository is required")
	}
	return &service{repo: repo, now: time.Now}, nil
}

func (s *service) Create(ctx context.Context, req CreateStageRequest) (*StageDTO, error) {
	if req.OrderID == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order_id is required")
	}
	if req.StageName == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "stage_name is required")
	}
	if !req.StageName.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid stage name")
	}
	created, err := s.repo.Create(ctx, req.ToModel())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create stage")
	}
	return FromModel(created), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*StageDTO, error) {
	stage, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return FromModel(stage), nil
}

func (s *service) List(ctx context.Context) ([]StageDTO, error) {
	found, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list stages")
	}
	return toDTOs(found), nil
}

func (s *service) ListByOrder(ctx context.Context, orderID uint) ([]StageDTO, error) {
	found, err := s.repo.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list stages for order")
	}
	return toDTOs(found), nil
}

// Complete stamps the stage with the completion time. Completing an
// already completed stage refreshes the timestamp.
func (s *service) Complete(ctx context.Context, id uint) (*StageDTO, error) {
	stage, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	completedAt := s.now().UTC()
	stage.CompletedAt = &completedAt

	saved, err := s.repo.Save(ctx, stage)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "complete stage")
	}
	return FromModel(saved), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete stage")
	}
	return nil
}

func (s *service) find(ctx context.Context, id uint) (*models.Stage, error) {
	stage, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "stage not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup stage")
	}
	return stage, nil
}

func toDTOs(found []models.Stage) []StageDTO {
	result := make([]StageDTO, 0, len(found))
	for i := range found {
		result = append(result, *FromModel(&found[i]))
	}
	return result
}
