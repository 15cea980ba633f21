package store

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ShippingFee is the flat shipping charge added to every order.
var ShippingFee = decimal.NewFromInt(99)

// Totals are derived from cart items on every read, never stored.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`
}

// ComputeTotals sums price*quantity over the items and adds the shipping fee.
// An unparsable price is an error for the caller to surface, not a zero.
func ComputeTotals(items []LineItem) (Totals, error) {
	subtotal := decimal.Zero
	for _, item := range items {
		price, err := decimal.NewFromString(item.Price)
		if err != nil {
			return Totals{}, fmt.Errorf("invalid price %q for product %d: %w", item.Price, item.ID, err)
		}
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return Totals{
		Subtotal: subtotal,
		Shipping: ShippingFee,
		Total:    subtotal.Add(ShippingFee),
	}, nil
}
