package model

type Product struct {
	ID         int64     `db:"id" json:"id"`
	CategoryID *int64    `db:"category_id" json:"category_id"` // Nullable, may dangle after a category delete
	Name       string    `db:"name" json:"name"`
	Price      float64   `db:"price" json:"price"`
	Quantity   int64     `db:"quantity" json:"quantity"`
	Category   *Category `db:"-" json:"category,omitempty"` // Joined data
}
