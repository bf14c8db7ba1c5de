package usecase

import (
	"context"

	"github.com/fekuna/omnipos-component-shop/internal/category"
	"github.com/fekuna/omnipos-component-shop/internal/category/dto"
	"github.com/fekuna/omnipos-component-shop/internal/logger"
	"github.com/fekuna/omnipos-component-shop/internal/model"
	"github.com/fekuna/omnipos-component-shop/internal/validation"
	"go.uber.org/zap"
)

type categoryUseCase struct {
	repo   category.Repository
	logger logger.ZapLogger
}

func NewCategoryUseCase(repo category.Repository, log logger.ZapLogger) category.UseCase {
	return &categoryUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error) {
	if err := validation.Struct(ctx, input); err != nil {
		return nil, err
	}

	cat := &model.Category{Name: input.Name}
	if err := uc.repo.Create(ctx, cat); err != nil {
		return nil, err
	}

	uc.logger.Debug("category created", zap.Int64("category_id", cat.ID), zap.String("name", cat.Name))
	return cat, nil
}

func (uc *categoryUseCase) GetCategory(ctx context.Context, id int64) (*model.Category, error) {
	cat, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, model.ErrCategoryNotFound
	}
	return cat, nil
}

func (uc *categoryUseCase) ListCategories(ctx context.Context) ([]model.Category, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *categoryUseCase) FindCategoryByName(ctx context.Context, name string) (*model.Category, error) {
	cat, err := uc.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, model.ErrCategoryNotFound
	}
	return cat, nil
}

// DeleteCategory does not touch products; their category_id is left as is.
func (uc *categoryUseCase) DeleteCategory(ctx context.Context, id int64) error {
	cat, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if cat == nil {
		return model.ErrCategoryNotFound
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.logger.Debug("category deleted", zap.Int64("category_id", id))
	return nil
}
