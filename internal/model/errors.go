package model

import "errors"

// Business outcomes. Callers report these and carry on; anything else coming
// out of a usecase is a storage failure.
var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrProductNotFound  = errors.New("product not found")

	// ErrInvalidReference is returned when a product names a category that
	// does not exist.
	ErrInvalidReference = errors.New("category reference is invalid")

	ErrInvalidInput = errors.New("invalid input")
)
