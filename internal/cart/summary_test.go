package cart

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSummarize(t *testing.T) {
	items := []LineItem{
		{ID: "1", Name: "Strawberry Dream Cake", Price: 45.99, Quantity: 2},
		{ID: "5", Name: "Lemon Bliss", Price: 42.99, Quantity: 1},
	}

	tests := []struct {
		name         string
		items        []LineItem
		fee          float64
		wantSubtotal string
		wantTotal    string
		wantFree     bool
		wantUnits    int
	}{
		{"free delivery", items, 0, "134.97", "134.97", true, 3},
		{"paid delivery", items, 5, "134.97", "139.97", false, 3},
		{"empty cart pays nothing", nil, 5, "0", "0", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Summarize(tt.items, tt.fee)
			if !s.Subtotal.Equal(decimal.RequireFromString(tt.wantSubtotal)) {
				t.Errorf("Subtotal = %s, want %s", s.Subtotal, tt.wantSubtotal)
			}
			if !s.Total.Equal(decimal.RequireFromString(tt.wantTotal)) {
				t.Errorf("Total = %s, want %s", s.Total, tt.wantTotal)
			}
			if s.FreeDelivery() != tt.wantFree {
				t.Errorf("FreeDelivery() = %v, want %v", s.FreeDelivery(), tt.wantFree)
			}
			if s.Units != tt.wantUnits {
				t.Errorf("Units = %d, want %d", s.Units, tt.wantUnits)
			}
		})
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		currency string
		amount   string
		want     string
	}{
		{"$", "91.98", "$91.98"},
		{"$", "0", "$0.00"},
		{"€", "199.99", "€199.99"},
		{"$", "45.5", "$45.50"},
	}

	for _, tt := range tests {
		if got := FormatMoney(tt.currency, decimal.RequireFromString(tt.amount)); got != tt.want {
			t.Errorf("FormatMoney(%q, %s) = %q, want %q", tt.currency, tt.amount, got, tt.want)
		}
	}
}

func TestStore_Summary(t *testing.T) {
	s, _, _ := newTestStore(t)
	s.AddItem(strawberry)
	s.AddItem(strawberry)

	sum := s.Summary(0)
	if got := FormatMoney("$", sum.Total); got != "$91.98" {
		t.Errorf("Total = %s, want $91.98", got)
	}
	if !sum.FreeDelivery() {
		t.Error("expected free delivery")
	}
}
