package domain

import "github.com/shopspring/decimal"

type (
	// CartItem embeds a product summary; the subtotal is server-computed
	// and treated as authoritative on fetch.
	CartItem struct {
		ID       int
		Product  CartProduct
		Quantity int
		Active   bool
		Subtotal decimal.Decimal
	}

	CartProduct struct {
		ID       int
		Name     string
		Price    decimal.Decimal
		ImageURL string
	}
)

// CartTotal sums the server-computed subtotals of the given items.
func CartTotal(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal)
	}
	return total
}
