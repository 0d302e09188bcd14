package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/lizbakes/cakeapp-backend/pkg/db/models"
	pkgerrors "github.com/lizbakes/cakeapp-backend/pkg/errors"
	"github.com/lizbakes/cakeapp-backend/pkg/pagination"
)

// Service exposes the order operations used by controllers.
type Service interface {
	Create(ctx context.Context, req CreateOrderRequest) (*OrderDTO, error)
	GetByID(ctx context.Context, id uint) (*OrderDTO, error)
	List(ctx context.Context, params pagination.Params) (*Page, error)
	ListByUser(ctx context.Context, userID uint) ([]OrderDTO, error)
	UpdateStatus(ctx context.Context, id uint, req UpdateStatusRequest) (*OrderDTO, error)
	UpdateDetails(ctx context.Context, id uint, req UpdateDetailsRequest) (*OrderDTO, error)
	Delete(ctx context.Context, id uint) error
}

type repository interface {
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	FindByID(ctx context.Context, id uint) (*models.Order, error)
	List(ctx context.Context, cursor *pagination.Cursor, limit int) ([]models.Order, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Order, error)
	Updates(ctx context.Context, id uint, updates map[string]any) error
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo repository
}

// NewService constructs the orders service.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, req CreateOrderRequest) (*OrderDTO, error) {
	if req.UserID == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user_id is required")
	}
	if strings.TrimSpace(req.Size) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "size is required")
	}
	if strings.TrimSpace(req.Flavor) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "flavor is required")
	}
	if req.Price.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative")
	}

	created, err := s.repo.Create(ctx, req.ToModel())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create order")
	}
	return FromModel(created), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*OrderDTO, error) {
	order, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return FromModel(order), nil
}

func (s *service) List(ctx context.Context, params pagination.Params) (*Page, error) {
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid cursor")
	}

	limit := pagination.NormalizeLimit(params.Limit)
	found, err := s.repo.List(ctx, cursor, pagination.LimitWithBuffer(params.Limit))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list orders")
	}

	page := &Page{Orders: make([]OrderDTO, 0, limit)}
	hasMore := len(found) > limit
	if hasMore {
		found = found[:limit]
	}
	for i := range found {
		page.Orders = append(page.Orders, *FromModel(&found[i]))
	}
	if hasMore {
		last := found[len(found)-1]
		next := pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
		page.NextCursor = &next
	}
	return page, nil
}

func (s *service) ListByUser(ctx context.Context, userID uint) ([]OrderDTO, error) {
	found, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list user orders")
	}
	result := make([]OrderDTO, 0, len(found))
	for i := range found {
		result = append(result, *FromModel(&found[i]))
	}
	return result, nil
}

func (s *service) UpdateStatus(ctx context.Context, id uint, req UpdateStatusRequest) (*OrderDTO, error) {
	if req.Status == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "status is required")
	}
	if !req.Status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid status %q", req.Status))
	}
	if _, err := s.find(ctx, id); err != nil {
		return nil, err
	}

	if err := s.repo.Updates(ctx, id, map[string]any{"status": req.Status}); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update order status")
	}
	return s.GetByID(ctx, id)
}

func (s *service) UpdateDetails(ctx context.Context, id uint, req UpdateDetailsRequest) (*OrderDTO, error) {
	if _, err := s.find(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.ExtendedDescription != nil {
		updates["extended_description"] = *req.ExtendedDescription
	}
	if req.DeliveryDate != nil {
		updates["delivery_date"] = *req.DeliveryDate
	}
	if req.SampleImages != nil {
		updates["sample_images"] = pq.StringArray(req.SampleImages)
	}
	if req.ColorPreferences != nil {
		updates["color_preferences"] = pq.StringArray(req.ColorPreferences)
	}

	if err := s.repo.Updates(ctx, id, updates); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update order details")
	}
	return s.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete order")
	}
	return nil
}

func (s *service) find(ctx context.Context, id uint) (*models.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup order")
	}
	return order, nil
}
