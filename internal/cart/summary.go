package cart

import (
	"github.com/shopspring/decimal"
)

// Summary is the order summary shown next to a cart.
type Summary struct {
	Subtotal decimal.Decimal
	Delivery decimal.Decimal
	Total    decimal.Decimal
	// Units is the number of cakes in the cart.
	Units int
}

// FreeDelivery reports whether delivery costs nothing.
func (s Summary) FreeDelivery() bool {
	return s.Delivery.IsZero()
}

// Summarize builds the order summary for items with the given delivery fee.
// An empty cart is never charged for delivery.
func Summarize(items []LineItem, deliveryFee float64) Summary {
	s := Summary{Subtotal: Sum(items), Delivery: decimal.Zero}
	for _, li := range items {
		s.Units += li.Quantity
	}
	if s.Units > 0 && deliveryFee > 0 {
		s.Delivery = decimal.NewFromFloat(deliveryFee)
	}
	s.Total = s.Subtotal.Add(s.Delivery)
	return s
}

// Summary returns the order summary of the current cart.
func (s *Store) Summary(deliveryFee float64) Summary {
	return Summarize(s.Items(), deliveryFee)
}

// FormatMoney renders amount with two decimals behind the currency symbol.
func FormatMoney(currency string, amount decimal.Decimal) string {
	return currency + amount.StringFixed(2)
}
