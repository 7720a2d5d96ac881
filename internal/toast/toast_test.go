package toast

import (
	"bytes"
	"strings"
	"testing"

	"github.com/wexinc/sweetcakes/internal/cart"
	"github.com/wexinc/sweetcakes/internal/logging"
	"github.com/wexinc/sweetcakes/internal/storage"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		n    cart.Notification
		want string
	}{
		{
			name: "added",
			n:    cart.Notification{Kind: cart.KindAdded, Title: "Added to cart", Description: "Lemon Bliss has been added to your cart"},
			want: "✓ Added to cart: Lemon Bliss has been added to your cart",
		},
		{
			name: "no description",
			n:    cart.Notification{Kind: cart.KindCleared, Title: "Cart cleared"},
			want: "○ Cart cleared",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Text(tt.n); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIcon(t *testing.T) {
	seen := map[string]cart.Kind{}
	for _, k := range []cart.Kind{cart.KindAdded, cart.KindUpdated, cart.KindRemoved, cart.KindCleared} {
		icon := Icon(k)
		if prev, dup := seen[icon]; dup {
			t.Errorf("kinds %s and %s share icon %q", prev, k, icon)
		}
		seen[icon] = k
	}
	if Icon(cart.Kind("other")) != "•" {
		t.Errorf("unknown kind icon = %q", Icon(cart.Kind("other")))
	}
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	s := cart.New(nil, cart.WithNotifier(p), cart.WithLogger(logging.NewNoop()))
	defer s.Close()

	s.AddItem(cart.Item{ID: "2", Name: "Chocolate Indulgence", Price: 52.99})
	s.AddItem(cart.Item{ID: "2", Name: "Chocolate Indulgence", Price: 52.99})
	s.ClearCart()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}

	wants := []string{
		"Added to cart",
		"Increased Chocolate Indulgence quantity",
		"All items have been removed from your cart",
	}
	for i, want := range wants {
		if !strings.Contains(lines[i], want) {
			t.Errorf("line %d = %q, want it to contain %q", i, lines[i], want)
		}
	}
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLogSink(logging.NewWithWriter(&buf, logging.LevelInfo))

	s := cart.New(cart.NewKVPersister(storage.NewMemoryStore(), ""),
		cart.WithNotifier(sink),
		cart.WithLogger(logging.NewNoop()),
	)
	defer s.Close()

	s.AddItem(cart.Item{ID: "6", Name: "Carrot Garden Cake", Price: 46.99})
	s.RemoveItem("6")

	out := buf.String()
	for _, want := range []string{"cart notification", "kind=added", "kind=removed", "item_id=6", "Removed from cart"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestLogSink_NilLogger(t *testing.T) {
	// Falls back to the global logger, which is a no-op until initialized
	NewLogSink(nil).Notify(cart.Notification{Kind: cart.KindCleared, Title: "Cart cleared"})
}
