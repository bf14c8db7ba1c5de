package category

import (
	"context"

	"github.com/fekuna/omnipos-component-shop/internal/model"
)

// Repository lookups return (nil, nil) when no row matches.
type Repository interface {
	Create(ctx context.Context, category *model.Category) error
	FindByID(ctx context.Context, id int64) (*model.Category, error)
	FindByName(ctx context.Context, name string) (*model.Category, error)
	FindAll(ctx context.Context) ([]model.Category, error)
	Delete(ctx context.Context, id int64) error
}
