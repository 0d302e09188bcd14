package designs

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lizbakes/cakeapp-backend/pkg/db/models"
	pkgerrors "github.com/lizbakes/cakeapp-backend/pkg/errors"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:designs_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.Design{}))
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

func validCreate() CreateDesignRequest {
	return CreateDesignRequest{
		Name:       "Rose Garden",
		BaseFlavor: "vanilla",
		Size:       "medium",
	}
}

func TestCreateAndGetDesign(t *testing.T) {
	svc := buildService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)
	assert.True(t, created.Available, "designs default to available")

	found, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rose Garden", found.Name)
	assert.Equal(t, "vanilla", found.BaseFlavor)
}

func TestCreateDesignValidation(t *testing.T) {
	svc := buildService(t)
	ctx := context.Background()

	cases := []struct {
		name string
		req  CreateDesignRequest
	}{
		{name: "missing name", req: CreateDesignRequest{BaseFlavor: "vanilla", Size: "medium"}},
		{name: "missing flavor", req: CreateDesignRequest{Name: "X", Size: "medium"}},
		{name: "missing size", req: CreateDesignRequest{Name: "X", BaseFlavor: "vanilla"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.req)
			require.Error(t, err)
			typed := pkgerrors.As(err)
			require.NotNil(t, typed)
			assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
		})
	}
}

func TestGetDesignNotFound(t *testing.T) {
	svc := buildService(t)

	_, err := svc.GetByID(context.Background(), 999)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestUpdateDesignReplaces(t *testing.T) {
	svc := buildService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, UpdateDesignRequest{
		Name:       "Rose Garden Deluxe",
		BaseFlavor: "chocolate",
		Size:       "large",
		Available:  false,
	})
	require.NoError(t, err)
	assert.Equal(t, "Rose Garden Deluxe", updated.Name)
	assert.Equal(t, "chocolate", updated.BaseFlavor)
	assert.False(t, updated.Available)
	assert.Nil(t, updated.Description, "PUT clears fields omitted from the payload")
}

func TestDeleteDesign(t *testing.T) {
	svc := buildService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.GetByID(ctx, created.ID)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())

	err = svc.Delete(ctx, created.ID)
	require.Error(t, err)
	typed = pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestListDesigns(t *testing.T) {
	svc := buildService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		req := validCreate()
		req.Name = fmt.Sprintf("Design %d", i)
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
	}

	found, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, found, 3)
}
