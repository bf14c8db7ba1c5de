package model

type Category struct {
	ID       int64     `db:"id" json:"id"`
	Name     string    `db:"name" json:"name"`
	Products []Product `db:"-" json:"products,omitempty"` // Filled by ListProductsInCategory only
}
