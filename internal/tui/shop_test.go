package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wexinc/sweetcakes/internal/cart"
	"github.com/wexinc/sweetcakes/internal/catalog"
	"github.com/wexinc/sweetcakes/internal/logging"
	"github.com/wexinc/sweetcakes/internal/storage"
	"github.com/wexinc/sweetcakes/internal/tui/components"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestShop(t *testing.T, opts Options) (*Model, *cart.Store) {
	t.Helper()
	store := cart.New(cart.NewKVPersister(storage.NewMemoryStore(), ""), cart.WithLogger(logging.NewNoop()))
	m := NewShop(store, catalog.Default(), opts)
	t.Cleanup(func() {
		m.Close()
		store.Close()
	})
	m.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	return m, store
}

// press sends keys to the model and returns the last command.
func press(m *Model, keys ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(k)
	}
	return cmd
}

// nextNotification delivers the next queued notification to the model.
func nextNotification(t *testing.T, m *Model) cart.Notification {
	t.Helper()
	msg, ok := m.queue.wait()().(NotificationMsg)
	if !ok {
		t.Fatal("expected a queued notification")
	}
	m.Update(msg)
	return msg.Notification
}

func TestNewShop(t *testing.T) {
	m, _ := newTestShop(t, Options{})

	if m.focusedPane != FocusProducts {
		t.Error("products pane should have focus initially")
	}
	if m.products.Len() != 6 {
		t.Errorf("expected 6 products, got %d", m.products.Len())
	}
	if m.opts.Currency != "$" {
		t.Errorf("expected default currency, got %q", m.opts.Currency)
	}
	if m.opts.ToastDuration != DefaultToastDuration {
		t.Errorf("expected default toast duration, got %v", m.opts.ToastDuration)
	}
	if m.Init() == nil {
		t.Error("Init should start listening for notifications")
	}
}

func TestShop_AddProduct(t *testing.T) {
	m, store := newTestShop(t, Options{})

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	press(m, runes("a"))

	li, ok := store.Get("1")
	if !ok || li.Quantity != 2 {
		t.Fatalf("expected product 1 with quantity 2, got %+v (%v)", li, ok)
	}
	if m.cartList.Len() != 1 {
		t.Errorf("cart pane should list 1 item, got %d", m.cartList.Len())
	}

	if n := nextNotification(t, m); n.Kind != cart.KindAdded {
		t.Errorf("first notification = %s, want added", n.Kind)
	}
	if n := nextNotification(t, m); n.Kind != cart.KindUpdated {
		t.Errorf("second notification = %s, want updated", n.Kind)
	}
	if current, ok := m.toastBar.Current(); !ok || current.Title != "Updated cart" {
		t.Errorf("toast bar shows %+v", current)
	}

	view := m.View()
	for _, want := range []string{"Strawberry Dream Cake", "$91.98", "Free", "Updated cart"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestShop_ToastExpires(t *testing.T) {
	m, _ := newTestShop(t, Options{})

	press(m, runes("a"))
	nextNotification(t, m)
	if !m.toastBar.Visible() {
		t.Fatal("toast should be visible")
	}

	m.Update(ToastExpiredMsg{Seq: 1})
	if m.toastBar.Visible() {
		t.Error("toast should be hidden after expiry")
	}
}

func TestShop_CartPaneQuantity(t *testing.T) {
	m, store := newTestShop(t, Options{})

	press(m, runes("a"), tea.KeyMsg{Type: tea.KeyTab})
	if m.focusedPane != FocusCart {
		t.Fatal("tab should focus the cart pane")
	}

	press(m, runes("+"), runes("+"))
	if li, _ := store.Get("1"); li.Quantity != 3 {
		t.Errorf("expected quantity 3, got %d", li.Quantity)
	}

	press(m, runes("-"))
	if li, _ := store.Get("1"); li.Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", li.Quantity)
	}

	press(m, runes("-"), runes("-"))
	if store.Len() != 0 {
		t.Errorf("decreasing to zero should remove the item, cart has %d", store.Len())
	}
}

func TestShop_RemoveFromCartPane(t *testing.T) {
	m, store := newTestShop(t, Options{})

	press(m, runes("a"), runes("j"), runes("a"), tea.KeyMsg{Type: tea.KeyTab}, runes("d"))

	if _, ok := store.Get("1"); ok {
		t.Error("selected item 1 should be removed")
	}
	if _, ok := store.Get("2"); !ok {
		t.Error("item 2 should remain")
	}
}

func TestShop_ClearAsksFirst(t *testing.T) {
	m, store := newTestShop(t, Options{})
	press(m, runes("a"))

	press(m, runes("C"))
	if !m.confirm.IsVisible() {
		t.Fatal("clearing a non-empty cart should ask for confirmation")
	}
	if store.Len() != 1 {
		t.Fatal("cart must not be cleared before confirmation")
	}

	cmd := press(m, runes("y"))
	msg := cmd()
	if _, ok := msg.(components.ConfirmYesMsg); !ok {
		t.Fatalf("expected ConfirmYesMsg, got %T", msg)
	}
	m.Update(msg)

	if store.Len() != 0 {
		t.Errorf("cart should be empty, has %d", store.Len())
	}
	if m.cartList.Len() != 0 {
		t.Error("cart pane should be empty")
	}
}

func TestShop_ClearCancelled(t *testing.T) {
	m, store := newTestShop(t, Options{})
	press(m, runes("a"), runes("C"))

	cmd := press(m, runes("n"))
	m.Update(cmd())

	if store.Len() != 1 {
		t.Error("cancelled clear must keep the cart")
	}
}

func TestShop_CategoryFilter(t *testing.T) {
	m, _ := newTestShop(t, Options{})

	press(m, runes("f"))
	if m.products.Category() != "Fruit Cakes" || m.products.Len() != 2 {
		t.Errorf("expected 2 fruit cakes, got %q with %d", m.products.Category(), m.products.Len())
	}

	press(m, runes("f"), runes("f"), runes("f"), runes("f"))
	if m.products.Category() != catalog.AllCategories {
		t.Errorf("categories should wrap around to All, got %q", m.products.Category())
	}

	press(m, runes("F"))
	if m.products.Len() != 3 {
		t.Errorf("featured filter should show 3 cakes, got %d", m.products.Len())
	}
}

func TestShop_DeliveryFee(t *testing.T) {
	m, _ := newTestShop(t, Options{Currency: "€", DeliveryFee: 4.5})
	press(m, runes("a"))

	view := m.View()
	if !strings.Contains(view, "€4.50") || !strings.Contains(view, "€50.49") {
		t.Errorf("View() should include fee and total:\n%s", view)
	}
}

func TestShop_CartError(t *testing.T) {
	m, _ := newTestShop(t, Options{})

	m.Update(CartErrorMsg{Err: errors.New("failed to save cart")})
	if !strings.Contains(m.View(), "failed to save cart") {
		t.Error("errors should be shown in the toast bar")
	}
}

func TestShop_HelpToggle(t *testing.T) {
	m, _ := newTestShop(t, Options{})

	press(m, runes("?"))
	if !m.help.ShowAll {
		t.Error("? should show full help")
	}
	if !strings.Contains(m.View(), "clear cart") {
		t.Error("full help should list the clear binding")
	}
}

func TestShop_Quit(t *testing.T) {
	m, _ := newTestShop(t, Options{})

	cmd := press(m, runes("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestShop_CloseUnsubscribes(t *testing.T) {
	m, store := newTestShop(t, Options{})
	m.Close()

	// Must not panic on the closed queue
	if err := store.AddItem(cart.Item{ID: "9", Name: "Test"}); err != nil {
		t.Fatal(err)
	}
	m.Close()
}

func TestQueue_DropsWhenFull(t *testing.T) {
	q := newQueue()
	for i := 0; i < notificationBuffer+5; i++ {
		q.Notify(cart.Notification{Kind: cart.KindAdded})
	}
	if len(q.ch) != notificationBuffer {
		t.Errorf("expected %d buffered notifications, got %d", notificationBuffer, len(q.ch))
	}
}

func TestQueue_NotifyAfterClose(t *testing.T) {
	q := newQueue()
	q.Notify(cart.Notification{Kind: cart.KindAdded})
	q.close()
	q.close()

	// Late notifications from a store still holding the queue are dropped.
	q.Notify(cart.Notification{Kind: cart.KindCleared})

	if msg, ok := q.wait()().(NotificationMsg); !ok || msg.Notification.Kind != cart.KindAdded {
		t.Errorf("first wait = %v, want the buffered added notification", msg)
	}
	if msg := q.wait()(); msg != nil {
		t.Errorf("wait after close = %v, want nil", msg)
	}
}

func TestShop_CloseWhileStoreMutates(t *testing.T) {
	m, store := newTestShop(t, Options{})

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			_ = store.AddItem(cart.Item{ID: "1", Name: "Strawberry Dream Cake", Price: 45.99})
		}
	}()
	m.Close()
	<-done
}

func TestKeyMap_Help(t *testing.T) {
	k := DefaultKeyMap()
	if len(k.ShortHelp()) == 0 {
		t.Error("ShortHelp should not be empty")
	}
	total := 0
	for _, col := range k.FullHelp() {
		total += len(col)
	}
	if total != 14 {
		t.Errorf("FullHelp should list all 14 bindings, got %d", total)
	}
}
