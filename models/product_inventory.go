package models

import "github.com/shopspring/decimal"

// DefaultLowStockThreshold is the stock level at or below which a product counts as low on stock.
const DefaultLowStockThreshold = 5

var hundred = decimal.NewFromInt(100)

// HasDiscount reports whether both discount fields are set.
func (p *Product) HasDiscount() bool {
	return p.DiscountType != nil && p.DiscountValue != nil
}

// DiscountedPrice returns the price after the discount, rounded to two places.
// It returns nil when the product has no price, and the price itself when there
// is no discount or the discount type is unknown. The result is never negative.
func (p *Product) DiscountedPrice() *decimal.Decimal {
	if p.Price == nil {
		return nil
	}
	price := *p.Price
	if !p.HasDiscount() {
		return &price
	}

	value := *p.DiscountValue
	var discounted decimal.Decimal
	switch *p.DiscountType {
	case DiscountPercent:
		discounted = price.Mul(decimal.NewFromInt(1).Sub(value.Div(hundred)))
	case DiscountAmount:
		discounted = price.Sub(value)
	default:
		return &price
	}

	discounted = decimal.Max(decimal.Zero, discounted).Round(2)
	return &discounted
}

// SavingsAmount is price minus discounted price, or nil when nothing is discounted.
func (p *Product) SavingsAmount() *decimal.Decimal {
	if p.Price == nil || !p.HasDiscount() {
		return nil
	}
	savings := p.Price.Sub(*p.DiscountedPrice()).Round(2)
	return &savings
}

func (p *Product) IsInStock() bool {
	return p.StockQuantity > 0
}

func (p *Product) IsOutOfStock() bool {
	return p.StockQuantity <= 0
}

// IsLowStock uses DefaultLowStockThreshold.
func (p *Product) IsLowStock() bool {
	return p.IsLowStockAt(DefaultLowStockThreshold)
}

func (p *Product) IsLowStockAt(threshold int) bool {
	return p.StockQuantity > 0 && p.StockQuantity <= threshold
}

// DecrementStock subtracts n and reports true, or leaves stock untouched and
// reports false when n is negative or exceeds the current stock.
func (p *Product) DecrementStock(n int) bool {
	if n < 0 || n > p.StockQuantity {
		return false
	}
	p.StockQuantity -= n
	return true
}

func (p *Product) IncrementStock(n int) {
	p.StockQuantity += n
}

// SetDiscount replaces the discount. A nil request clears it.
func (p *Product) SetDiscount(d *DiscountRequest) {
	if d == nil {
		p.DiscountType = nil
		p.DiscountValue = nil
		return
	}
	kind := d.Type
	value := d.Value
	p.DiscountType = &kind
	p.DiscountValue = &value
}
