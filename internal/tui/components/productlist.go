package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/sweetcakes/internal/cart"
	"github.com/wexinc/sweetcakes/internal/catalog"
	"github.com/wexinc/sweetcakes/internal/tui/styles"
)

// ProductList is a scrollable list of catalog products.
type ProductList struct {
	products []catalog.Product
	category string
	currency string
	cursor   cursor
	width    int
	focused  bool
}

// NewProductList creates a new ProductList component.
func NewProductList(currency string) *ProductList {
	return &ProductList{
		category: catalog.AllCategories,
		currency: currency,
		cursor:   newCursor(),
		focused:  true,
	}
}

// SetProducts replaces the listed products and the category they belong to.
func (p *ProductList) SetProducts(category string, products []catalog.Product) {
	p.category = category
	p.products = products
	p.cursor.setCount(len(products))
}

// Category returns the category being shown.
func (p *ProductList) Category() string {
	return p.category
}

// Len returns the number of listed products.
func (p *ProductList) Len() int {
	return len(p.products)
}

// SetSize sets the width and visible row count.
func (p *ProductList) SetSize(width, height int) {
	p.width = width
	p.cursor.setHeight(height)
}

// SetFocused sets whether the list has focus.
func (p *ProductList) SetFocused(focused bool) {
	p.focused = focused
}

// Selected returns the index of the selected product.
func (p *ProductList) Selected() int {
	return p.cursor.selected
}

// SelectedProduct returns the selected product, or false if the list is empty.
func (p *ProductList) SelectedProduct() (catalog.Product, bool) {
	if len(p.products) == 0 {
		return catalog.Product{}, false
	}
	return p.products[p.cursor.selected], true
}

// MoveUp moves the selection up.
func (p *ProductList) MoveUp() { p.cursor.up() }

// MoveDown moves the selection down.
func (p *ProductList) MoveDown() { p.cursor.down() }

// GoToTop selects the first product.
func (p *ProductList) GoToTop() { p.cursor.top() }

// GoToBottom selects the last product.
func (p *ProductList) GoToBottom() { p.cursor.bottom() }

// View renders the product list.
func (p *ProductList) View() string {
	var b strings.Builder

	b.WriteString(styles.PaneTitleStyle.Render("Our Cakes"))
	b.WriteString(" ")
	b.WriteString(styles.CategoryStyle.Render(p.category))
	b.WriteString("\n\n")

	if len(p.products) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Foreground(styles.Muted).
			Italic(true).
			Render("No cakes in this category"))
		return b.String()
	}

	start, end := p.cursor.window()
	for i := start; i < end; i++ {
		b.WriteString(p.renderRow(i))
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	if prod, ok := p.SelectedProduct(); ok && prod.Description != "" {
		desc := lipgloss.NewStyle().Foreground(styles.Muted)
		if p.width > 4 {
			desc = desc.Width(p.width - 4)
		}
		b.WriteString("\n\n")
		b.WriteString(desc.Render(prod.Description))
	}

	return b.String()
}

func (p *ProductList) renderRow(i int) string {
	prod := p.products[i]

	marker := "  "
	rowStyle := styles.ItemStyle
	if i == p.cursor.selected {
		if p.focused {
			marker = lipgloss.NewStyle().Foreground(styles.Primary).Render("▸ ")
		} else {
			marker = "› "
		}
		rowStyle = styles.SelectedItemStyle
	}

	badge := " "
	if prod.Featured {
		badge = styles.FeaturedBadge
	}

	price := styles.PriceStyle.Render(cart.FormatMoney(p.currency, prod.PriceDecimal()))
	rating := styles.RatingStyle.Render(fmt.Sprintf("%.1f", prod.Rating))

	return fmt.Sprintf("%s%s %s  %s  %s", marker, badge, rowStyle.Render(prod.Name), price, rating)
}
