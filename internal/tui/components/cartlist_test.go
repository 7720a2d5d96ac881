package components

import (
	"strings"
	"testing"

	"github.com/wexinc/sweetcakes/internal/cart"
)

func TestCartList(t *testing.T) {
	c := NewCartList("$")

	if !strings.Contains(c.View(), "Your cart is empty") {
		t.Errorf("empty View() = %q", c.View())
	}

	c.SetItems([]cart.LineItem{
		{ID: "1", Name: "Strawberry Dream Cake", Price: 45.99, Quantity: 2},
		{ID: "3", Name: "Elegant Wedding Cake", Price: 199.99, Quantity: 1},
	})
	c.MoveDown()

	li, ok := c.SelectedItem()
	if !ok || li.ID != "3" {
		t.Errorf("SelectedItem() = %v, %v; want 3", li.ID, ok)
	}

	view := c.View()
	for _, want := range []string{"2×", "Strawberry Dream Cake", "$91.98", "$45.99", "$199.99"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}

	// Removing the selected row keeps the selection in range
	c.SetItems(c.items[:1])
	if li, _ := c.SelectedItem(); li.ID != "1" {
		t.Errorf("SelectedItem() after shrink = %q, want 1", li.ID)
	}
}
