package dto

type ProductFilters struct {
	CategoryID *int64 // Nil means every product
}
