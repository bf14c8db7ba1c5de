package category

import (
	"context"

	"github.com/fekuna/omnipos-component-shop/internal/category/dto"
	"github.com/fekuna/omnipos-component-shop/internal/model"
)

type UseCase interface {
	CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error)
	GetCategory(ctx context.Context, id int64) (*model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	FindCategoryByName(ctx context.Context, name string) (*model.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}
