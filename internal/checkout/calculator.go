package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/girishsunnykumar006-arch/bitesaver/internal/domain"
)

// Observed storefront defaults: flat delivery and a 10% tax on the subtotal.
var (
	DefaultDeliveryCharge = decimal.NewFromInt(29)
	DefaultTaxRate        = decimal.RequireFromString("0.10")
)

// Calculator derives the amount due from a cart subtotal. The tax is rounded
// once, half up, to whole currency units, and the grand total is the exact
// sum of subtotal, delivery and the rounded tax — the displayed breakdown
// always adds up to the displayed total.
type Calculator struct {
	deliveryCharge decimal.Decimal
	taxRate        decimal.Decimal
}

func NewCalculator(deliveryCharge, taxRate decimal.Decimal) *Calculator {
	return &Calculator{deliveryCharge: deliveryCharge, taxRate: taxRate}
}

func NewDefaultCalculator() *Calculator {
	return NewCalculator(DefaultDeliveryCharge, DefaultTaxRate)
}

func (c *Calculator) ComputeTotals(subtotal decimal.Decimal) domain.OrderTotals {
	tax := subtotal.Mul(c.taxRate).Round(0)
	return domain.OrderTotals{
		Subtotal:       subtotal,
		DeliveryCharge: c.deliveryCharge,
		Tax:            tax,
		GrandTotal:     subtotal.Add(c.deliveryCharge).Add(tax),
	}
}
