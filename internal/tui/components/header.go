package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/sweetcakes/internal/tui/styles"
)

// HeaderData contains the data to display in the header.
type HeaderData struct {
	ShopName  string
	Category  string
	CartUnits int
	Storage   string
}

// Header is a component that displays the shop name and cart badge.
type Header struct {
	data  HeaderData
	width int
}

// NewHeader creates a new Header component.
func NewHeader() *Header {
	return &Header{
		data: HeaderData{
			ShopName: "Sweet Cakes",
			Category: "All",
		},
	}
}

// SetData updates the header data.
func (h *Header) SetData(data HeaderData) {
	h.data = data
}

// SetCategory sets the active category.
func (h *Header) SetCategory(category string) {
	h.data.Category = category
}

// SetCartUnits sets the number shown in the cart badge.
func (h *Header) SetCartUnits(n int) {
	h.data.CartUnits = n
}

// SetWidth sets the width for the header.
func (h *Header) SetWidth(width int) {
	h.width = width
}

// View renders the header.
func (h *Header) View() string {
	title := styles.TitleStyle.Render("🧁 " + h.data.ShopName)

	sep := lipgloss.NewStyle().
		Foreground(styles.MutedLight).
		Render(" │ ")

	categoryLabel := styles.HeaderLabelStyle.Render("Category: ")
	categoryValue := styles.HeaderValueStyle.Render(h.data.Category)

	cartLabel := styles.HeaderLabelStyle.Render("Cart: ")
	cartValue := styles.HeaderValueStyle.Render(fmt.Sprintf("%d", h.data.CartUnits))

	content := fmt.Sprintf("%s%s%s%s%s%s%s",
		title, sep,
		categoryLabel, categoryValue, sep,
		cartLabel, cartValue,
	)

	if h.data.Storage != "" {
		storageLabel := styles.HeaderLabelStyle.Render("Storage: ")
		storageValue := styles.HeaderValueStyle.Render(h.data.Storage)
		content = fmt.Sprintf("%s%s%s%s", content, sep, storageLabel, storageValue)
	}

	headerStyle := lipgloss.NewStyle().
		Background(styles.Background).
		Foreground(styles.Foreground).
		Padding(0, 1)

	if h.width > 0 {
		headerStyle = headerStyle.Width(h.width)
	}

	return headerStyle.Render(content)
}
