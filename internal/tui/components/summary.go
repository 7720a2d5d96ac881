package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/sweetcakes/internal/cart"
	"github.com/wexinc/sweetcakes/internal/tui/styles"
)

// OrderSummary renders subtotal, delivery and total of a cart.
type OrderSummary struct {
	summary  cart.Summary
	currency string
	width    int
}

// NewOrderSummary creates a new OrderSummary component.
func NewOrderSummary(currency string) *OrderSummary {
	return &OrderSummary{
		summary:  cart.Summarize(nil, 0),
		currency: currency,
		width:    30,
	}
}

// SetSummary updates the displayed amounts.
func (o *OrderSummary) SetSummary(s cart.Summary) {
	o.summary = s
}

// SetWidth sets the width of the summary.
func (o *OrderSummary) SetWidth(width int) {
	o.width = width
}

// View renders the order summary.
func (o *OrderSummary) View() string {
	delivery := "Free"
	deliveryStyle := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
	if !o.summary.FreeDelivery() {
		delivery = cart.FormatMoney(o.currency, o.summary.Delivery)
		deliveryStyle = styles.HeaderValueStyle
	}

	lines := []string{
		styles.PaneTitleStyle.Render("Order Summary"),
		o.row("Subtotal:", styles.HeaderValueStyle.Render(cart.FormatMoney(o.currency, o.summary.Subtotal))),
		o.row("Delivery:", deliveryStyle.Render(delivery)),
		styles.MutedTextStyle.Render(strings.Repeat("─", o.innerWidth())),
		o.row("Total:", styles.PriceStyle.Render(cart.FormatMoney(o.currency, o.summary.Total))),
	}
	return strings.Join(lines, "\n")
}

func (o *OrderSummary) innerWidth() int {
	if o.width < 20 {
		return 20
	}
	return o.width - 4
}

// row renders a label on the left and value on the right.
func (o *OrderSummary) row(label, value string) string {
	left := styles.HeaderLabelStyle.Render(label)
	gap := o.innerWidth() - lipgloss.Width(left) - lipgloss.Width(value)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + value
}
