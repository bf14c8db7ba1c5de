package product

import (
	"context"

	"github.com/fekuna/omnipos-component-shop/internal/model"
	"github.com/fekuna/omnipos-component-shop/internal/product/dto"
)

type UseCase interface {
	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, id int64) (*model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	ListProductsInCategory(ctx context.Context, categoryID int64) (*model.Category, error)
	FindProductByName(ctx context.Context, name string) (*model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}
