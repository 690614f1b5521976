package models

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func discounted(price string, kind DiscountType, value string) *Product {
	p := &Product{Price: dec(price)}
	if kind != "" {
		k := kind
		p.DiscountType = &k
		p.DiscountValue = dec(value)
	}
	return p
}

func TestDiscountedPrice(t *testing.T) {
	tests := []struct {
		name    string
		product *Product
		want    string
		savings string
	}{
		{"percent", discounted("100", DiscountPercent, "15"), "85", "15"},
		{"percent rounds down", discounted("19.99", DiscountPercent, "10"), "17.99", "2"},
		{"percent rounds half away from zero", discounted("10.05", DiscountPercent, "50"), "5.03", "5.02"},
		{"percent full", discounted("12.50", DiscountPercent, "100"), "0", "12.5"},
		{"amount", discounted("45.50", DiscountAmount, "5.25"), "40.25", "5.25"},
		{"amount larger than price", discounted("50", DiscountAmount, "60"), "0", "50"},
		{"unknown type", discounted("30", DiscountType("bogo"), "10"), "30", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.product.DiscountedPrice()
			require.NotNil(t, got)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(*got), "got %s", got)

			savings := tt.product.SavingsAmount()
			require.NotNil(t, savings)
			assert.True(t, decimal.RequireFromString(tt.savings).Equal(*savings), "got %s", savings)
		})
	}
}

func TestDiscountedPriceWithoutDiscount(t *testing.T) {
	p := &Product{Price: dec("12.34")}
	assert.False(t, p.HasDiscount())
	assert.True(t, dec("12.34").Equal(*p.DiscountedPrice()))
	assert.Nil(t, p.SavingsAmount())

	half := &Product{Price: dec("12.34"), DiscountValue: dec("5")}
	assert.False(t, half.HasDiscount())
	assert.True(t, dec("12.34").Equal(*half.DiscountedPrice()))
}

func TestDiscountedPriceWithoutPrice(t *testing.T) {
	p := discounted("1", DiscountPercent, "10")
	p.Price = nil
	assert.Nil(t, p.DiscountedPrice())
	assert.Nil(t, p.SavingsAmount())
}

func TestDiscountedPriceBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	one := decimal.NewFromInt(1)

	for i := 0; i < 500; i++ {
		price := decimal.New(rng.Int63n(1_000_000), -2)

		percent := decimal.New(rng.Int63n(10_001), -2)
		p := &Product{Price: &price}
		p.SetDiscount(&DiscountRequest{Type: DiscountPercent, Value: percent})
		got := *p.DiscountedPrice()
		want := price.Mul(one.Sub(percent.Div(hundred))).Round(2)
		assert.True(t, want.Equal(got), "percent %s of %s: want %s got %s", percent, price, want, got)
		assert.True(t, got.LessThanOrEqual(price))
		assert.False(t, got.IsNegative())

		amount := decimal.New(rng.Int63n(1_200_000), -2)
		p.SetDiscount(&DiscountRequest{Type: DiscountAmount, Value: amount})
		got = *p.DiscountedPrice()
		want = decimal.Max(decimal.Zero, price.Sub(amount)).Round(2)
		assert.True(t, want.Equal(got), "amount %s off %s: want %s got %s", amount, price, want, got)
		assert.True(t, got.LessThanOrEqual(price))
		assert.False(t, got.IsNegative())
	}
}

func TestSetDiscountClears(t *testing.T) {
	p := discounted("10", DiscountAmount, "1")
	p.SetDiscount(nil)
	assert.Nil(t, p.DiscountType)
	assert.Nil(t, p.DiscountValue)
	assert.False(t, p.HasDiscount())
}

func TestStockState(t *testing.T) {
	tests := []struct {
		stock    int
		inStock  bool
		lowStock bool
	}{
		{-1, false, false},
		{0, false, false},
		{1, true, true},
		{5, true, true},
		{6, true, false},
	}

	for _, tt := range tests {
		p := &Product{StockQuantity: tt.stock}
		assert.Equal(t, tt.inStock, p.IsInStock(), "stock %d", tt.stock)
		assert.Equal(t, !tt.inStock, p.IsOutOfStock(), "stock %d", tt.stock)
		assert.Equal(t, tt.lowStock, p.IsLowStock(), "stock %d", tt.stock)
	}

	assert.True(t, (&Product{StockQuantity: 8}).IsLowStockAt(10))
}

func TestDecrementStock(t *testing.T) {
	for current := 0; current <= 5; current++ {
		for n := 0; n <= 7; n++ {
			p := &Product{StockQuantity: current}
			ok := p.DecrementStock(n)
			if n > current {
				assert.False(t, ok)
				assert.Equal(t, current, p.StockQuantity)
			} else {
				assert.True(t, ok)
				assert.Equal(t, current-n, p.StockQuantity)
			}
		}
	}

	p := &Product{StockQuantity: 3}
	assert.False(t, p.DecrementStock(-1))
	assert.Equal(t, 3, p.StockQuantity)

	p.IncrementStock(4)
	assert.Equal(t, 7, p.StockQuantity)
}

func TestToResponse(t *testing.T) {
	p := discounted("200", DiscountPercent, "25")
	p.StockQuantity = 2

	resp := p.ToResponse()
	assert.True(t, resp.HasDiscount)
	assert.True(t, resp.InStock)
	assert.True(t, resp.LowStock)
	assert.True(t, dec("150").Equal(*resp.DiscountedPrice))
	assert.True(t, dec("50").Equal(*resp.SavingsAmount))
}
