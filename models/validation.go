package models

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidations adds the struct-level rules that tags cannot express.
func RegisterValidations(v *validator.Validate) {
	v.RegisterStructValidation(validateDiscountRequest, DiscountRequest{})
	v.RegisterStructValidation(validateCreateProductRequest, CreateProductRequest{})
	v.RegisterStructValidation(validateUpdateProductRequest, UpdateProductRequest{})
}

func validateDiscountRequest(sl validator.StructLevel) {
	d := sl.Current().Interface().(DiscountRequest)
	if !d.Value.IsPositive() {
		sl.ReportError(d.Value, "Value", "value", "gt", "0")
		return
	}
	if d.Type == DiscountPercent && d.Value.GreaterThan(hundred) {
		sl.ReportError(d.Value, "Value", "value", "lte", "100")
	}
}

func validateCreateProductRequest(sl validator.StructLevel) {
	r := sl.Current().Interface().(CreateProductRequest)
	reportNegativePrice(sl, r.Price)
}

func validateUpdateProductRequest(sl validator.StructLevel) {
	r := sl.Current().Interface().(UpdateProductRequest)
	reportNegativePrice(sl, r.Price)
}

func reportNegativePrice(sl validator.StructLevel, price *decimal.Decimal) {
	if price != nil && price.IsNegative() {
		sl.ReportError(*price, "Price", "price", "gte", "0")
	}
}
