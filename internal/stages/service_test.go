package stages

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
	dsn := fmt.Sprintf("file:stages_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.Stage{}))
	t.Cleanup(func() {
		sqlDB, err := conn.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})
	return conn
}

func buildService(t *testing.T) *service {
	t.Helper()
	svc, err := NewService(NewRepository(openTestDB(t)))
	require.NoError(t, err)
	return svc.(*service)
}

func expectCode(t *testing.T, err error, code pkgerrors.Code) {
	t.Helper()
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, code, typed.Code())
}

func TestCreateStageIncomplete(t *testing.T) {
	svc := buildService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateStageRequest{OrderID: 3, StageName: enums.StageNameBaking})
	require.NoError(t, err)
	assert.Nil(t, created.CompletedAt)

	found, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.StageNameBaking, found.StageName)
}

func TestCreateStageValidation(t *testing.T) {
	svc := buildService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateStageRequest{StageName: enums.StageNameBaking})
	expectCode(t, err, pkgerrors.CodeValidation)

	_, err = svc.Create(ctx, CreateStageRequest{OrderID: 1})
	expectCode(t, err, pkgerrors.CodeValidation)

	_, err = svc.Create(ctx, CreateStageRequest{OrderID: 1, StageName: "frosting"})
	expectCode(t, err, pkgerrors.CodeValidation)
}

func TestCompleteStampsTime(t *testing.T) {
	svc := buildService(t)
	ctx := context.Background()

	fixed := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	created, err := svc.Create(ctx, CreateStageRequest{OrderID: 1, StageName: enums.StageNameDecorating})
	require.NoError(t, err)

	completed, err := svc.Complete(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, completed.CompletedAt)
	assert.True(t, completed.CompletedAt.Equal(fixed))

	later := fixed.Add(time.Hour)
	svc.now = func() time.Time { return later }
	again, err := svc.Complete(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, again.CompletedAt)
	assert.True(t, again.CompletedAt.Equal(later), "re-completion refreshes the stamp")
}

func TestCompleteNotFound(t *testing.T) {
	svc := buildService(t)

	_, err := svc.Complete(context.Background(), 999)
	expectCode(t, err, pkgerrors.CodeNotFound)
}

func TestListByOrder(t *testing.T) {
	svc := buildService(t)
	ctx := context.Background()

	names := []enums.StageName{enums.StageNameBaking, enums.StageNameDecorating, enums.StageNameQualityCheck}
	for _, name := range names {
		_, err := svc.Create(ctx, CreateStageRequest{OrderID: 1, StageName: name})
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, CreateStageRequest{OrderID: 2, StageName: enums.StageNameReady})
	require.NoError(t, err)

	found, err := svc.ListByOrder(ctx, 1)
	require.NoError(t, err)
	require.Len(t, found, 3)
	for i, stage := range found {
		assert.Equal(t, names[i], stage.StageName)
	}

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestDeleteStage(t *testing.T) {
	svc := buildService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateStageRequest{OrderID: 1, StageName: enums.StageNameBaking})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.GetByID(ctx, created.ID)
	expectCode(t, err, pkgerrors.CodeNotFound)

	err = svc.Delete(ctx, created.ID)
	expectCode(t, err, pkgerrors.CodeNotFound)
}
