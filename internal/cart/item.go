// Package cart provides the shopping cart store for sweetcakes: an ordered
// set of line items that is mirrored to local storage after every change
// and announces changes to notification sinks.
package cart

import (
	"github.com/shopspring/decimal"

	apperrors "github.com/wexinc/sweetcakes/internal/errors"
)

// Item is the payload for adding a product to the cart.
type Item struct {
	ID    string
	Name  string
	Price float64
	Image string
}

// Validate checks item against the rules Decode applies to stored carts.
func (item Item) Validate() error {
	switch {
	case item.ID == "":
		return apperrors.InvalidItem(item.ID, "missing id")
	case item.Price < 0:
		return apperrors.InvalidItem(item.ID, "negative price")
	}
	return nil
}

// LineItem is one product in the cart with its quantity.
// The JSON form is the persisted format.
type LineItem struct {
	// ID is the product identity, unique per cart.
	ID string `json:"id"`
	// Name is the product display name.
	Name string `json:"name"`
	// Price is the unit price in currency units.
	Price float64 `json:"price"`
	// Image is a reference to the product image.
	Image string `json:"image"`
	// Quantity is always >= 1 for stored items.
	Quantity int `json:"quantity"`
}

// UnitPrice returns the price as a decimal.
func (li LineItem) UnitPrice() decimal.Decimal {
	return decimal.NewFromFloat(li.Price)
}

// Subtotal returns price × quantity.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice().Mul(decimal.NewFromInt(int64(li.Quantity)))
}

func newLineItem(item Item) LineItem {
	return LineItem{
		ID:       item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Image:    item.Image,
		Quantity: 1,
	}
}

// Sum returns the total of price × quantity over items.
func Sum(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, li := range items {
		total = total.Add(li.Subtotal())
	}
	return total
}
