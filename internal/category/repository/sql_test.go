package repository

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-component-shop/internal/database/dbtest"
	"github.com/fekuna/omnipos-component-shop/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLRepository(dbtest.NewSQLite(t))

	t.Run("lookups on empty store return nil without error", func(t *testing.T) {
		got, err := repo.FindByID(ctx, 1)
		require.NoError(t, err)
		assert.Nil(t, got)

		got, err = repo.FindByName(ctx, "Resistors")
		require.NoError(t, err)
		assert.Nil(t, got)

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("create assigns id", func(t *testing.T) {
		c := &model.Category{Name: "Resistors"}
		require.NoError(t, repo.Create(ctx, c))
		assert.Equal(t, int64(1), c.ID)

		got, err := repo.FindByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, &model.Category{ID: 1, Name: "Resistors"}, got)
	})

	t.Run("find by name is exact and picks lowest id", func(t *testing.T) {
		dup := &model.Category{Name: "Resistors"}
		require.NoError(t, repo.Create(ctx, dup))

		got, err := repo.FindByName(ctx, "Resistors")
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.ID)

		got, err = repo.FindByName(ctx, "Resistor")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("delete leaves products alone", func(t *testing.T) {
		_, err := repo.DB.ExecContext(ctx, `INSERT INTO products (name, price, quantity, category_id) VALUES ('10k', 0.1, 500, 1)`)
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, 1))

		got, err := repo.FindByID(ctx, 1)
		require.NoError(t, err)
		assert.Nil(t, got)

		var categoryID int64
		require.NoError(t, repo.DB.GetContext(ctx, &categoryID, `SELECT category_id FROM products WHERE name = '10k'`))
		assert.Equal(t, int64(1), categoryID)
	})
}
