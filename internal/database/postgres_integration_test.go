//go:build integration
// +build integration

package database_test

import (
	"context"
	"testing"
	"time"

	catdto "github.com/fekuna/omnipos-component-shop/internal/category/dto"
	catrepo "github.com/fekuna/omnipos-component-shop/internal/category/repository"
	catuc "github.com/fekuna/omnipos-component-shop/internal/category/usecase"
	"github.com/fekuna/omnipos-component-shop/internal/database"
	"github.com/fekuna/omnipos-component-shop/internal/logger"
	"github.com/fekuna/omnipos-component-shop/internal/model"
	proddto "github.com/fekuna/omnipos-component-shop/internal/product/dto"
	prodrepo "github.com/fekuna/omnipos-component-shop/internal/product/repository"
	produc "github.com/fekuna/omnipos-component-shop/internal/product/usecase"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupPostgres starts a PostgreSQL container and returns a schema-ready store.
func setupPostgres(t *testing.T) *sqlx.DB {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:alpine",
		postgres.WithDatabase("shop"),
		postgres.WithUsername("shop"),
		postgres.WithPassword("shop"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "start postgres container")
	t.Cleanup(func() {
		if err := pgContainer.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.OpenDSN(ctx, database.DriverPostgres, connStr, &database.Config{MaxOpenConns: 4})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.EnsureSchema(ctx, db))
	require.NoError(t, database.EnsureSchema(ctx, db), "schema creation is idempotent")
	return db
}

func TestPostgresInventory(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()
	log := logger.NewNop()

	cats := catrepo.NewSQLRepository(db)
	categories := catuc.NewCategoryUseCase(cats, log)
	products := produc.NewProductUseCase(prodrepo.NewSQLRepository(db), cats, log)

	resistors, err := categories.CreateCategory(ctx, &catdto.CreateCategoryInput{Name: "Resistors"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resistors.ID)

	id := resistors.ID
	p, err := products.CreateProduct(ctx, &proddto.CreateProductInput{Name: "10k Resistor", Price: 0.1, Quantity: 500, CategoryID: &id})
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)

	missing := int64(99)
	_, err = products.CreateProduct(ctx, &proddto.CreateProductInput{Name: "Ghost", Price: 1, Quantity: 1, CategoryID: &missing})
	assert.ErrorIs(t, err, model.ErrInvalidReference)

	cat, err := products.ListProductsInCategory(ctx, id)
	require.NoError(t, err)
	require.Len(t, cat.Products, 1)
	assert.Equal(t, "10k Resistor", cat.Products[0].Name)
	assert.Equal(t, 0.1, cat.Products[0].Price)

	found, err := categories.FindCategoryByName(ctx, "Resistors")
	require.NoError(t, err)
	assert.Equal(t, id, found.ID)

	require.NoError(t, categories.DeleteCategory(ctx, id))
	assert.ErrorIs(t, categories.DeleteCategory(ctx, id), model.ErrCategoryNotFound)

	orphan, err := products.GetProduct(ctx, p.ID)
	require.NoError(t, err, "products survive their category")
	require.NotNil(t, orphan.CategoryID)
	assert.Equal(t, id, *orphan.CategoryID)
	assert.Nil(t, orphan.Category)

	require.NoError(t, products.DeleteProduct(ctx, p.ID))
	all, err := products.ListProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
