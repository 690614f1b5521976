package models

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	RegisterValidations(v)
	return v
}

func TestDiscountRequestValidation(t *testing.T) {
	v := newValidator()

	assert.NoError(t, v.Struct(DiscountRequest{Type: DiscountPercent, Value: *dec("100")}))
	assert.NoError(t, v.Struct(DiscountRequest{Type: DiscountAmount, Value: *dec("250")}))

	err := v.Struct(DiscountRequest{Type: DiscountPercent, Value: *dec("100.01")})
	require.Error(t, err)
	assert.Equal(t, "lte", err.(validator.ValidationErrors)[0].Tag())

	err = v.Struct(DiscountRequest{Type: DiscountAmount, Value: *dec("0")})
	require.Error(t, err)
	assert.Equal(t, "gt", err.(validator.ValidationErrors)[0].Tag())

	assert.Error(t, v.Struct(DiscountRequest{Type: "bogo", Value: *dec("5")}))
}

func TestCreateProductRequestValidation(t *testing.T) {
	v := newValidator()
	req := CreateProductRequest{
		SubcategoryID: uuid.Must(uuid.NewV7()),
		Name:          "Sourdough",
		Price:         dec("10"),
		Discount:      &DiscountRequest{Type: DiscountPercent, Value: *dec("150")},
	}

	err := v.Struct(req)
	require.Error(t, err)
	assert.Equal(t, "lte", err.(validator.ValidationErrors)[0].Tag())

	req.Discount.Value = *dec("15")
	assert.NoError(t, v.Struct(req))

	req.Price = dec("-1")
	assert.Error(t, v.Struct(req))
}
