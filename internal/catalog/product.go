package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/wexinc/sweetcakes/internal/cart"
)

// Product is a cake offered by the shop.
type Product struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description,omitempty"`
	Price       float64 `yaml:"price"`
	Image       string  `yaml:"image,omitempty"`
	Rating      float64 `yaml:"rating,omitempty"`
	Category    string  `yaml:"category"`
	Featured    bool    `yaml:"featured,omitempty"`
}

// CartItem returns the payload for adding the product to a cart.
func (p Product) CartItem() cart.Item {
	return cart.Item{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
		Image: p.Image,
	}
}

// PriceDecimal returns the price as a decimal.
func (p Product) PriceDecimal() decimal.Decimal {
	return decimal.NewFromFloat(p.Price)
}
