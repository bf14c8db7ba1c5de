package dto

type CreateProductInput struct {
	Name       string `validate:"required"`
	Price      float64
	Quantity   int64
	CategoryID *int64 // Optional; when set it must name an existing category
}
