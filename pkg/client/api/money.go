package api

import "github.com/shopspring/decimal"

var oneHundred = decimal.NewFromInt(100)

// DiscountedPrice returns the unit price after applying the product's
// percentage discount.
func (p Product) DiscountedPrice() decimal.Decimal {
	factor := oneHundred.Sub(p.Discount).Div(oneHundred)
	return p.Price.Mul(factor)
}

// LineTotal returns the discounted price multiplied by the line quantity.
func (i CartItem) LineTotal() decimal.Decimal {
	return i.Product.DiscountedPrice().Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Subtotal sums the line totals of a cart. The server never computes this;
// it is always derived from raw line data on the client.
func Subtotal(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return total
}
