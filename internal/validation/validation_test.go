package validation

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-component-shop/internal/model"
	"github.com/stretchr/testify/assert"
)

type input struct {
	Name  string `validate:"required"`
	Label string `validate:"max=3"`
}

func TestStruct(t *testing.T) {
	ctx := context.Background()

	assert.NoError(t, Struct(ctx, &input{Name: "10k Resistor"}))

	err := Struct(ctx, &input{})
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	assert.EqualError(t, err, "invalid input: name is required")

	err = Struct(ctx, &input{Label: "long"})
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	assert.EqualError(t, err, "invalid input: name is required, label failed max")
}

func TestStructRejectsNonStruct(t *testing.T) {
	err := Struct(context.Background(), "not a struct")
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}
