package usecase

import (
	"context"
	"fmt"

	"github.com/fekuna/omnipos-component-shop/internal/category"
	"github.com/fekuna/omnipos-component-shop/internal/logger"
	"github.com/fekuna/omnipos-component-shop/internal/model"
	"github.com/fekuna/omnipos-component-shop/internal/product"
	"github.com/fekuna/omnipos-component-shop/internal/product/dto"
	"github.com/fekuna/omnipos-component-shop/internal/validation"
	"go.uber.org/zap"
)

type productUseCase struct {
	repo       product.Repository
	categories category.Repository
	logger     logger.ZapLogger
}

func NewProductUseCase(repo product.Repository, categories category.Repository, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:       repo,
		categories: categories,
		logger:     log,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	if err := validation.Struct(ctx, input); err != nil {
		return nil, err
	}

	if input.CategoryID != nil {
		cat, err := uc.categories.FindByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, fmt.Errorf("%w: category %d not found", model.ErrInvalidReference, *input.CategoryID)
		}
	}

	p := &model.Product{
		CategoryID: input.CategoryID,
		Name:       input.Name,
		Price:      input.Price,
		Quantity:   input.Quantity,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.logger.Debug("product created", zap.Int64("product_id", p.ID), zap.String("name", p.Name))
	return p, nil
}

// GetProduct resolves the product's category when the reference is still
// live. A dangling category_id leaves Category nil.
func (uc *productUseCase) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, model.ErrProductNotFound
	}

	if p.CategoryID != nil {
		cat, err := uc.categories.FindByID(ctx, *p.CategoryID)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			uc.logger.Debug("product references a deleted category",
				zap.Int64("product_id", p.ID), zap.Int64("category_id", *p.CategoryID))
		}
		p.Category = cat
	}
	return p, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context) ([]model.Product, error) {
	return uc.repo.FindAll(ctx, &dto.ProductFilters{})
}

func (uc *productUseCase) ListProductsInCategory(ctx context.Context, categoryID int64) (*model.Category, error) {
	cat, err := uc.categories.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, model.ErrCategoryNotFound
	}

	products, err := uc.repo.FindAll(ctx, &dto.ProductFilters{CategoryID: &categoryID})
	if err != nil {
		return nil, err
	}
	cat.Products = products
	return cat, nil
}

func (uc *productUseCase) FindProductByName(ctx context.Context, name string) (*model.Product, error) {
	p, err := uc.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, model.ErrProductNotFound
	}
	return p, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id int64) error {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return model.ErrProductNotFound
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.logger.Debug("product deleted", zap.Int64("product_id", id))
	return nil
}
