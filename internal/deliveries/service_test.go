package deliveries

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lizbakes/cakeapp-backend/pkg/db/models"
	"github.com/lizbakes/cakeapp-backend/pkg/enums"
	pkgerrors "github.com/lizbakes/cakeapp-backend/pkg/errors"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:deliveries_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.Delivery{}))
	t.Cleanup(func() {
		sqlDB, err := conn.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})
	return conn
}

func buildService(t *testing.T) Service {
	t.Helper()
	svc, err := NewService(NewRepository(openTestDB(t)))
	require.NoError(t, err)
	return svc
}

func validSchedule(orderID uint) ScheduleDeliveryRequest {
	return ScheduleDeliveryRequest{
		OrderID:      orderID,
		Address:      "12 Rose Lane",
		DeliveryDate: time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC),
	}
}

func expectCode(t *testing.T, err error, code pkgerrors.Code) {
	t.Helper()
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, code, typed.Code())
}

func TestScheduleStartsScheduled(t *testing.T) {
	svc := buildService(t)
	ctx := context.Background()

	created, err := svc.Schedule(ctx, validSchedule(7))
	require.NoError(t, err)
	assert.Equal(t, enums.DeliveryStatusScheduled, created.Status)
	assert.Equal(t, uint(7), created.OrderID)

	found, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "12 Rose Lane", found.Address)
}

func TestScheduleValidation(t *testing.T) {
	svc := buildService(t)
	ctx := context.Background()

	missingOrder := validSchedule(0)
	_, err := svc.Schedule(ctx, missingOrder)
	expectCode(t, err, pkgerrors.CodeValidation)

	missingAddress := validSchedule(1)
	missingAddress.Address = "  "
	_, err = svc.Schedule(ctx, missingAddress)
	expectCode(t, err, pkgerrors.CodeValidation)

	missingDate := validSchedule(1)
	missingDate.DeliveryDate = time.Time{}
	_, err = svc.Schedule(ctx, missingDate)
	expectCode(t, err, pkgerrors.CodeValidation)
}

func TestUpdateReplacesFields(t *testing.T) {
	svc := buildService(t)
	ctx := context.Background()

	courier := "Ana"
	created, err := svc.Schedule(ctx, ScheduleDeliveryRequest{
		OrderID:      1,
		Address:      "12 Rose Lane",
		DeliveryDate: time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC),
		CourierName:  &courier,
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, UpdateDeliveryRequest{
		Address:      "98 Elm Street",
		DeliveryDate: time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC),
		Status:       enums.DeliveryStatusInTransit,
	})
	require.NoError(t, err)
	assert.Equal(t, "98 Elm Street", updated.Address)
	assert.Equal(t, enums.DeliveryStatusInTransit, updated.Status)
	assert.Nil(t, updated.CourierName, "omitted courier is cleared on put")
}

func TestUpdateNotFoundBeforeValidation(t *testing.T) {
	svc := buildService(t)

	_, err := svc.Update(context.Background(), 999, UpdateDeliveryRequest{})
	expectCode(t, err, pkgerrors.CodeNotFound)
}

func TestUpdateRejectsInvalidStatus(t *testing.T) {
	svc := buildService(t)
	ctx := context.Background()

	created, err := svc.Schedule(ctx, validSchedule(1))
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, UpdateDeliveryRequest{
		Address:      created.Address,
		DeliveryDate: created.DeliveryDate,
		Status:       "teleported",
	})
	expectCode(t, err, pkgerrors.CodeValidation)
}

func TestListDeliveries(t *testing.T) {
	svc := buildService(t)
	ctx := context.Background()

	for i := uint(1); i <= 3; i++ {
		_, err := svc.Schedule(ctx, validSchedule(i))
		require.NoError(t, err)
	}

	found, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, found, 3)
	assert.Equal(t, uint(1), found[0].OrderID)
}

func TestDeleteDelivery(t *testing.T) {
	svc := buildService(t)
	ctx := context.Background()

	created, err := svc.Schedule(ctx, validSchedule(1))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.GetByID(ctx, created.ID)
	expectCode(t, err, pkgerrors.CodeNotFound)

	err = svc.Delete(ctx, created.ID)
	expectCode(t, err, pkgerrors.CodeNotFound)
}
