package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fekuna/omnipos-component-shop/internal/model"
	"github.com/fekuna/omnipos-component-shop/internal/product/dto"
	"github.com/jmoiron/sqlx"
)

const productColumns = `id, category_id, name, price, quantity`

type SQLRepository struct {
	DB *sqlx.DB
}

func NewSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{DB: db}
}

func (r *SQLRepository) Create(ctx context.Context, p *model.Product) error {
	var categoryID interface{}
	if p.CategoryID != nil {
		categoryID = *p.CategoryID
	}

	query := r.DB.Rebind(`
        INSERT INTO products (category_id, name, price, quantity)
        VALUES (?, ?, ?, ?)
        RETURNING id
    `)
	if err := r.DB.GetContext(ctx, &p.ID, query, categoryID, p.Name, p.Price, p.Quantity); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *SQLRepository) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	return r.findOne(ctx, `SELECT `+productColumns+` FROM products WHERE id = ? LIMIT 1`, id)
}

func (r *SQLRepository) FindByName(ctx context.Context, name string) (*model.Product, error) {
	return r.findOne(ctx, `SELECT `+productColumns+` FROM products WHERE name = ? ORDER BY id LIMIT 1`, name)
}

func (r *SQLRepository) findOne(ctx context.Context, query string, arg interface{}) (*model.Product, error) {
	var product model.Product
	err := r.DB.GetContext(ctx, &product, r.DB.Rebind(query), arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select product: %w", err)
	}
	return &product, nil
}

func (r *SQLRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, error) {
	products := []model.Product{}

	query := `SELECT ` + productColumns + ` FROM products`
	args := []interface{}{}
	if f != nil && f.CategoryID != nil {
		query += ` WHERE category_id = ?`
		args = append(args, *f.CategoryID)
	}
	query += ` ORDER BY id`

	if err := r.DB.SelectContext(ctx, &products, r.DB.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	return products, nil
}

func (r *SQLRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.DB.ExecContext(ctx, r.DB.Rebind(`DELETE FROM products WHERE id = ?`), id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
