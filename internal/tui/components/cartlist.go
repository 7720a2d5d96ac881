package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/sweetcakes/internal/cart"
	"github.com/wexinc/sweetcakes/internal/tui/styles"
)

// CartList is a scrollable list of cart line items.
type CartList struct {
	items    []cart.LineItem
	currency string
	cursor   cursor
	width    int
	focused  bool
}

// NewCartList creates a new CartList component.
func NewCartList(currency string) *CartList {
	return &CartList{
		currency: currency,
		cursor:   newCursor(),
	}
}

// SetItems replaces the listed line items, keeping the selection in range.
func (c *CartList) SetItems(items []cart.LineItem) {
	c.items = items
	c.cursor.setCount(len(items))
}

// Len returns the number of line items.
func (c *CartList) Len() int {
	return len(c.items)
}

// SetSize sets the width and visible row count.
func (c *CartList) SetSize(width, height int) {
	c.width = width
	c.cursor.setHeight(height)
}

// SetFocused sets whether the list has focus.
func (c *CartList) SetFocused(focused bool) {
	c.focused = focused
}

// SelectedItem returns the selected line item, or false if the cart is empty.
func (c *CartList) SelectedItem() (cart.LineItem, bool) {
	if len(c.items) == 0 {
		return cart.LineItem{}, false
	}
	return c.items[c.cursor.selected], true
}

// MoveUp moves the selection up.
func (c *CartList) MoveUp() { c.cursor.up() }

// MoveDown moves the selection down.
func (c *CartList) MoveDown() { c.cursor.down() }

// View renders the cart list.
func (c *CartList) View() string {
	var b strings.Builder

	b.WriteString(styles.PaneTitleStyle.Render("Your Cart"))
	b.WriteString("\n\n")

	if len(c.items) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Foreground(styles.Muted).
			Italic(true).
			Render("Your cart is empty"))
		return b.String()
	}

	start, end := c.cursor.window()
	for i := start; i < end; i++ {
		li := c.items[i]

		marker := "  "
		rowStyle := styles.ItemStyle
		if i == c.cursor.selected {
			if c.focused {
				marker = lipgloss.NewStyle().Foreground(styles.Primary).Render("▸ ")
			} else {
				marker = "› "
			}
			rowStyle = styles.SelectedItemStyle
		}

		qty := lipgloss.NewStyle().Foreground(styles.Secondary).Render(fmt.Sprintf("%d×", li.Quantity))
		unit := styles.MutedTextStyle.Render(cart.FormatMoney(c.currency, li.UnitPrice()))
		sub := styles.PriceStyle.Render(cart.FormatMoney(c.currency, li.Subtotal()))

		b.WriteString(fmt.Sprintf("%s%s %s  %s  %s", marker, qty, rowStyle.Render(li.Name), unit, sub))
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}
