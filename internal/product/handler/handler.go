package handler

import (
	"context"
	"errors"
	"strconv"

	"github.com/fekuna/omnipos-component-shop/internal/cli/output"
	"github.com/fekuna/omnipos-component-shop/internal/logger"
	"github.com/fekuna/omnipos-component-shop/internal/model"
	"github.com/fekuna/omnipos-component-shop/internal/product"
	"github.com/fekuna/omnipos-component-shop/internal/product/dto"
	"go.uber.org/zap"
)

type ProductHandler struct {
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ProductHandler) CreateProduct(ctx context.Context, out *output.Printer, name string, price float64, quantity, categoryID int64) error {
	input := &dto.CreateProductInput{
		Name:       name,
		Price:      price,
		Quantity:   quantity,
		CategoryID: &categoryID,
	}

	p, err := h.uc.CreateProduct(ctx, input)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidReference):
			out.Error("Error: Category with ID %d not found.", categoryID)
			return nil
		case errors.Is(err, model.ErrInvalidInput):
			out.Error("Error: %s.", err)
			return nil
		}
		h.logger.Error("failed to create product", zap.Error(err))
		return err
	}

	if out.JSON() {
		return out.Encode(p)
	}
	out.Success("Product '%s' created successfully.", p.Name)
	return nil
}

func (h *ProductHandler) ShowProducts(ctx context.Context, out *output.Printer) error {
	products, err := h.uc.ListProducts(ctx)
	if err != nil {
		h.logger.Error("failed to list products", zap.Error(err))
		return err
	}

	if out.JSON() {
		return out.Encode(products)
	}
	if len(products) == 0 {
		out.Info("No products found.")
		return nil
	}
	for _, p := range products {
		out.Line("%d: %s, Price: %s, Quantity: %d", p.ID, p.Name, formatPrice(p.Price), p.Quantity)
	}
	return nil
}

func (h *ProductHandler) ShowProductsInCategory(ctx context.Context, out *output.Printer, categoryID int64) error {
	cat, err := h.uc.ListProductsInCategory(ctx, categoryID)
	if err != nil {
		if errors.Is(err, model.ErrCategoryNotFound) {
			out.Error("Category with ID %d not found.", categoryID)
			return nil
		}
		h.logger.Error("failed to list products in category", zap.Int64("category_id", categoryID), zap.Error(err))
		return err
	}

	if out.JSON() {
		products := cat.Products
		if products == nil {
			products = []model.Product{}
		}
		// Always emit the products key, even for an empty category.
		return out.Encode(struct {
			*model.Category
			Products []model.Product `json:"products"`
		}{cat, products})
	}
	out.Info("Products in category '%s':", cat.Name)
	for _, p := range cat.Products {
		out.Line("- %s, Price: %s, Quantity: %d", p.Name, formatPrice(p.Price), p.Quantity)
	}
	return nil
}

func (h *ProductHandler) FindProductByName(ctx context.Context, out *output.Printer, name string) error {
	p, err := h.uc.FindProductByName(ctx, name)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			out.Error("No product found with the name '%s'.", name)
			return nil
		}
		h.logger.Error("failed to find product", zap.String("name", name), zap.Error(err))
		return err
	}

	if out.JSON() {
		return out.Encode(p)
	}
	out.Success("Found product: %d - %s, Price: %s, Quantity: %d", p.ID, p.Name, formatPrice(p.Price), p.Quantity)
	return nil
}

// ShowProduct prints one product together with the category it belongs to.
func (h *ProductHandler) ShowProduct(ctx context.Context, out *output.Printer, id int64) error {
	p, err := h.uc.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			out.Error("Product with ID %d not found.", id)
			return nil
		}
		h.logger.Error("failed to get product", zap.Int64("product_id", id), zap.Error(err))
		return err
	}

	if out.JSON() {
		return out.Encode(p)
	}
	out.Line("%d: %s, Price: %s, Quantity: %d", p.ID, p.Name, formatPrice(p.Price), p.Quantity)
	switch {
	case p.Category != nil:
		out.Line("Category: %d - %s", p.Category.ID, p.Category.Name)
	case p.CategoryID != nil:
		out.Muted("Category: %d (deleted)", *p.CategoryID)
	default:
		out.Muted("Category: none")
	}
	return nil
}

func (h *ProductHandler) DeleteProduct(ctx context.Context, out *output.Printer, id int64) error {
	err := h.uc.DeleteProduct(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			out.Error("Product with ID %d not found.", id)
			return nil
		}
		h.logger.Error("failed to delete product", zap.Int64("product_id", id), zap.Error(err))
		return err
	}

	out.Success("Product with ID %d deleted successfully.", id)
	return nil
}

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
