package domain

import (
	"github.com/shopspring/decimal"
)

// ItemKey identifies a catalog entry unambiguously. The mock catalogs reuse
// small integer ids (featured deals count from 1, store items from 101), so
// the raw id alone would merge unrelated entries into one cart line.
type ItemKey struct {
	Catalog string `json:"catalog"`
	ID      int    `json:"id"`
}

// CartEntry is what a caller supplies when adding to a cart. Quantity is
// implicit: a new line starts at 1, an existing line is incremented.
type CartEntry struct {
	Key           ItemKey         `json:"key"`
	Store         string          `json:"store"`
	Discount      int             `json:"discount"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"original_price"`
	Image         string          `json:"image"`
}

// CartLineItem is one aggregated cart line. Quantity stays >= 1 while the
// line exists; dropping it to zero removes the line instead.
type CartLineItem struct {
	Key           ItemKey         `json:"key"`
	Store         string          `json:"store"`
	Discount      int             `json:"discount"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"original_price"`
	Image         string          `json:"image"`
	Quantity      int             `json:"quantity"`
}

// LineTotal is the line's contribution to the cart subtotal.
func (li CartLineItem) LineTotal() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// CartSummary is a point-in-time snapshot of a cart with its derived
// aggregates.
type CartSummary struct {
	Items      []CartLineItem  `json:"items"`
	TotalItems int             `json:"total_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

type AddToCartRequest struct {
	Catalog string `json:"catalog" binding:"required"`
	ID      int    `json:"id" binding:"required"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}
