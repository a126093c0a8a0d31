// internal/services/pricing.go
package services

import (
	"github.com/shopspring/decimal"

	"github.com/javajoker/catalog-admin/internal/models"
)

var hundred = decimal.NewFromInt(100)

// FinalPrice applies the discount to price and rounds to two decimals.
// The result never goes below zero. Unknown methods leave the price as is.
func FinalPrice(price float64, discount models.Discount) float64 {
	p := decimal.NewFromFloat(price)
	v := decimal.NewFromFloat(discount.Value)

	switch discount.Method {
	case models.DiscountMethodPercent:
		p = p.Sub(p.Mul(v).Div(hundred))
	case models.DiscountMethodFlat:
		p = p.Sub(v)
	}

	if p.IsNegative() {
		p = decimal.Zero
	}
	f, _ := p.Round(2).Float64()
	return f
}
