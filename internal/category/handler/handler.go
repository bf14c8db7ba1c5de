package handler

import (
	"context"
	"errors"

	"github.com/fekuna/omnipos-component-shop/internal/category"
	"github.com/fekuna/omnipos-component-shop/internal/category/dto"
	"github.com/fekuna/omnipos-component-shop/internal/cli/output"
	"github.com/fekuna/omnipos-component-shop/internal/logger"
	"github.com/fekuna/omnipos-component-shop/internal/model"
	"go.uber.org/zap"
)

// CategoryHandler turns category usecase results into terminal output.
// Business failures are printed and swallowed; only storage failures are
// returned.
type CategoryHandler struct {
	uc     category.UseCase
	logger logger.ZapLogger
}

func NewCategoryHandler(uc category.UseCase, log logger.ZapLogger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *CategoryHandler) CreateCategory(ctx context.Context, out *output.Printer, name string) error {
	cat, err := h.uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: name})
	if err != nil {
		if errors.Is(err, model.ErrInvalidInput) {
			out.Error("Error: %s.", err)
			return nil
		}
		h.logger.Error("failed to create category", zap.Error(err))
		return err
	}

	if out.JSON() {
		return out.Encode(cat)
	}
	out.Success("Category '%s' created successfully.", cat.Name)
	return nil
}

func (h *CategoryHandler) ShowCategories(ctx context.Context, out *output.Printer) error {
	cats, err := h.uc.ListCategories(ctx)
	if err != nil {
		h.logger.Error("failed to list categories", zap.Error(err))
		return err
	}

	if out.JSON() {
		return out.Encode(cats)
	}
	if len(cats) == 0 {
		out.Info("No categories found.")
		return nil
	}
	for _, c := range cats {
		out.Line("%d: %s", c.ID, c.Name)
	}
	return nil
}

func (h *CategoryHandler) FindCategoryByName(ctx context.Context, out *output.Printer, name string) error {
	cat, err := h.uc.FindCategoryByName(ctx, name)
	if err != nil {
		if errors.Is(err, model.ErrCategoryNotFound) {
			out.Error("No category found with the name '%s'.", name)
			return nil
		}
		h.logger.Error("failed to find category", zap.String("name", name), zap.Error(err))
		return err
	}

	if out.JSON() {
		return out.Encode(cat)
	}
	out.Success("Found category: %d - %s", cat.ID, cat.Name)
	return nil
}

func (h *CategoryHandler) DeleteCategory(ctx context.Context, out *output.Printer, id int64) error {
	err := h.uc.DeleteCategory(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrCategoryNotFound) {
			out.Error("Category with ID %d not found.", id)
			return nil
		}
		h.logger.Error("failed to delete category", zap.Int64("category_id", id), zap.Error(err))
		return err
	}

	out.Success("Category with ID %d deleted successfully.", id)
	return nil
}
