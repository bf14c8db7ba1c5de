package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fekuna/omnipos-component-shop/internal/model"
	"github.com/jmoiron/sqlx"
)

// SQLRepository stores categories through sqlx. Queries are written with ?
// placeholders and rebound for the connected driver.
type SQLRepository struct {
	DB *sqlx.DB
}

func NewSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{DB: db}
}

func (r *SQLRepository) Create(ctx context.Context, c *model.Category) error {
	query := r.DB.Rebind(`INSERT INTO categories (name) VALUES (?) RETURNING id`)
	if err := r.DB.GetContext(ctx, &c.ID, query, c.Name); err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (r *SQLRepository) FindByID(ctx context.Context, id int64) (*model.Category, error) {
	return r.findOne(ctx, `SELECT id, name FROM categories WHERE id = ? LIMIT 1`, id)
}

// FindByName returns the first exact match. Names are not unique; the
// lowest id wins.
func (r *SQLRepository) FindByName(ctx context.Context, name string) (*model.Category, error) {
	return r.findOne(ctx, `SELECT id, name FROM categories WHERE name = ? ORDER BY id LIMIT 1`, name)
}

func (r *SQLRepository) findOne(ctx context.Context, query string, arg interface{}) (*model.Category, error) {
	var category model.Category
	err := r.DB.GetContext(ctx, &category, r.DB.Rebind(query), arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select category: %w", err)
	}
	return &category, nil
}

func (r *SQLRepository) FindAll(ctx context.Context) ([]model.Category, error) {
	categories := []model.Category{}
	if err := r.DB.SelectContext(ctx, &categories, `SELECT id, name FROM categories ORDER BY id`); err != nil {
		return nil, fmt.Errorf("select categories: %w", err)
	}
	return categories, nil
}

// Delete removes the category row only. Products that reference it keep
// their category_id.
func (r *SQLRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.DB.ExecContext(ctx, r.DB.Rebind(`DELETE FROM categories WHERE id = ?`), id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
