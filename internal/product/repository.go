package product

import (
	"context"

	"github.com/fekuna/omnipos-component-shop/internal/model"
	"github.com/fekuna/omnipos-component-shop/internal/product/dto"
)

// Repository lookups return (nil, nil) when no row matches.
type Repository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	FindByName(ctx context.Context, name string) (*model.Product, error)
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error)
	Delete(ctx context.Context, id int64) error
}
