package deliveries

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/lizbakes/cakeapp-backend/pkg/db/models"
	pkgerrors "github.com/lizbakes/cakeapp-backend/pkg/errors"
)

// Service exposes the delivery scheduling operations used by controllers.
type Service interface {
	Schedule(ctx context.Context, req ScheduleDeliveryRequest) (*DeliveryDTO, error)
	GetByID(ctx context.Context, id uint) (*DeliveryDTO, error)
	List(ctx context.Context) ([]DeliveryDTO, error)
	Update(ctx context.Context, id uint, req UpdateDeliveryRequest) (*DeliveryDTO, error)
	Delete(ctx context.Context, id uint) error
}

type repository interface {
	Create(ctx context.Context, delivery *models.Delivery) (*models.Delivery, error)
	FindByID(ctx context.Context, id uint) (*models.Delivery, error)
	List(ctx context.Context) ([]models.Delivery, error)
	Save(ctx context.Context, delivery *models.Delivery) (*models.Delivery, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo repository
}

// NewService constructs the deliveries service.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("deliveries repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Schedule(ctx context.Context, req ScheduleDeliveryRequest) (*DeliveryDTO, error) {
	if req.OrderID == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order_id is required")
	}
	if err := validateDeliveryFields(req.Address, req.DeliveryDate); err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, req.ToModel())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "schedule delivery")
	}
	return FromModel(created), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*DeliveryDTO, error) {
	delivery, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return FromModel(delivery), nil
}

func (s *service) List(ctx context.Context) ([]DeliveryDTO, error) {
	found, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list deliveries")
	}
	result := make([]DeliveryDTO, 0, len(found))
	for i := range found {
		result = append(result, *FromModel(&found[i]))
	}
	return result, nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateDeliveryRequest) (*DeliveryDTO, error) {
	delivery, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateDeliveryFields(req.Address, req.DeliveryDate); err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = delivery.Status
	}
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid delivery status")
	}

	delivery.Address = req.Address
	delivery.DeliveryDate = req.DeliveryDate
	delivery.CourierName = req.CourierName
	delivery.CourierContact = req.CourierContact
	delivery.Status = status

	saved, err := s.repo.Save(ctx, delivery)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update delivery")
	}
	return FromModel(saved), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete delivery")
	}
	return nil
}

func (s *service) find(ctx context.Context, id uint) (*models.Delivery, error) {
	delivery, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "delivery not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup delivery")
	}
	return delivery, nil
}

func validateDeliveryFields(address string, deliveryDate time.Time) error {
	if strings.TrimSpace(address) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "address is required")
	}
	if deliveryDate.IsZero() {
		return pkgerrors.New(pkgerrors.CodeValidation, "delivery_date is required")
	}
	return nil
}
