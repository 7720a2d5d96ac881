package components

import (
	"strings"
	"testing"
)

func TestHeader(t *testing.T) {
	h := NewHeader()
	h.SetCategory("Wedding Cakes")
	h.SetCartUnits(3)
	h.SetWidth(100)

	view := h.View()
	for _, want := range []string{"Sweet Cakes", "Wedding Cakes", "Cart: ", "3"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "Storage:") {
		t.Error("storage should be hidden when unset")
	}

	h.SetData(HeaderData{ShopName: "Sweet Cakes", Category: "All", Storage: "sqlite"})
	if !strings.Contains(h.View(), "sqlite") {
		t.Error("View() should show the storage driver")
	}
}
