package dto

type CreateCategoryInput struct {
	Name string `validate:"required"`
}
