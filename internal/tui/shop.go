// Package tui provides the terminal storefront for sweetcakes.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/sweetcakes/internal/cart"
	"github.com/wexinc/sweetcakes/internal/catalog"
	"github.com/wexinc/sweetcakes/internal/logging"
	"github.com/wexinc/sweetcakes/internal/tui/components"
	"github.com/wexinc/sweetcakes/internal/tui/styles"
)

// DefaultToastDuration is how long a notification stays on screen.
const DefaultToastDuration = 3 * time.Second

// FocusedPane indicates which pane has focus.
type FocusedPane int

const (
	FocusProducts FocusedPane = iota
	FocusCart
)

// Options configures the shop.
type Options struct {
	// Currency is the symbol printed before prices.
	Currency string
	// DeliveryFee is shown in the order summary. Zero means free delivery.
	DeliveryFee float64
	// StorageName is shown in the header, e.g. the storage driver.
	StorageName string
	// ToastDuration overrides DefaultToastDuration.
	ToastDuration time.Duration
}

// Model is the Bubble Tea model for the shop.
type Model struct {
	// Components
	header   *components.Header
	products *components.ProductList
	cartList *components.CartList
	summary  *components.OrderSummary
	toastBar *components.ToastBar
	confirm  *components.ConfirmDialog
	help     help.Model
	keys     KeyMap

	// Dependencies
	store   *cart.Store
	catalog *catalog.Catalog
	opts    Options

	// Notifications from the store
	queue       *queue
	unsubscribe func()

	// State
	categories   []string
	categoryIdx  int
	featuredOnly bool
	focusedPane  FocusedPane
	quitting     bool

	// Window dimensions
	width  int
	height int
}

// NewShop creates a shop model over store and cat. The model subscribes
// to the store's notifications until Close is called.
func NewShop(store *cart.Store, cat *catalog.Catalog, opts Options) *Model {
	if opts.Currency == "" {
		opts.Currency = "$"
	}
	if opts.ToastDuration <= 0 {
		opts.ToastDuration = DefaultToastDuration
	}

	m := &Model{
		header:     components.NewHeader(),
		products:   components.NewProductList(opts.Currency),
		cartList:   components.NewCartList(opts.Currency),
		summary:    components.NewOrderSummary(opts.Currency),
		toastBar:   components.NewToastBar(),
		confirm:    components.NewConfirmDialog(),
		help:       help.New(),
		keys:       DefaultKeyMap(),
		store:      store,
		catalog:    cat,
		opts:       opts,
		queue:      newQueue(),
		categories: cat.Categories(),
	}
	m.unsubscribe = store.Subscribe(m.queue)
	m.header.SetData(components.HeaderData{
		ShopName: "Sweet Cakes",
		Category: catalog.AllCategories,
		Storage:  opts.StorageName,
	})

	m.applyFilter()
	m.refreshCart()
	m.setFocus(FocusProducts)
	return m
}

// Close stops listening to the store.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
		m.queue.close()
	}
}

// Init is the Bubble Tea initialization function.
func (m *Model) Init() tea.Cmd {
	return m.queue.wait()
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The dialog captures input while visible
	if m.confirm.IsVisible() {
		if _, isKey := msg.(tea.KeyMsg); isKey {
			return m, m.confirm.Update(msg)
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil

	case NotificationMsg:
		seq := m.toastBar.Show(msg.Notification)
		m.refreshCart()
		return m, tea.Batch(m.queue.wait(), m.expireToast(seq))

	case ToastExpiredMsg:
		m.toastBar.Expire(msg.Seq)
		return m, nil

	case CartErrorMsg:
		seq := m.toastBar.ShowError(msg.Err.Error())
		return m, m.expireToast(seq)

	case components.ConfirmYesMsg:
		if msg.Action == components.ConfirmActionClear {
			return m, m.mutate(m.store.ClearCart)
		}
		return m, nil

	case components.ConfirmNoMsg:
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.updateLayout()
		return m, nil

	case key.Matches(msg, m.keys.SwitchPane):
		if m.focusedPane == FocusProducts {
			m.setFocus(FocusCart)
		} else {
			m.setFocus(FocusProducts)
		}
		return m, nil

	case key.Matches(msg, m.keys.NextCategory):
		m.categoryIdx = (m.categoryIdx + 1) % len(m.categories)
		m.applyFilter()
		return m, nil

	case key.Matches(msg, m.keys.Featured):
		m.featuredOnly = !m.featuredOnly
		m.applyFilter()
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		if m.store.Len() > 0 {
			m.confirm.ShowClear(m.store.Count())
			return m, nil
		}
		return m, m.mutate(m.store.ClearCart)
	}

	if m.focusedPane == FocusProducts {
		return m, m.handleProductKey(msg)
	}
	return m, m.handleCartKey(msg)
}

func (m *Model) handleProductKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.products.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.products.MoveDown()
	case key.Matches(msg, m.keys.Top):
		m.products.GoToTop()
	case key.Matches(msg, m.keys.Bottom):
		m.products.GoToBottom()
	case key.Matches(msg, m.keys.Add), key.Matches(msg, m.keys.Increase):
		if p, ok := m.products.SelectedProduct(); ok {
			return m.mutate(func() error { return m.store.AddItem(p.CartItem()) })
		}
	case key.Matches(msg, m.keys.Decrease), key.Matches(msg, m.keys.Remove):
		if p, ok := m.products.SelectedProduct(); ok {
			if li, inCart := m.store.Get(p.ID); inCart {
				return m.changeQuantity(li, msg)
			}
		}
	}
	return nil
}

func (m *Model) handleCartKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.cartList.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.cartList.MoveDown()
	case key.Matches(msg, m.keys.Add), key.Matches(msg, m.keys.Increase),
		key.Matches(msg, m.keys.Decrease), key.Matches(msg, m.keys.Remove):
		if li, ok := m.cartList.SelectedItem(); ok {
			return m.changeQuantity(li, msg)
		}
	}
	return nil
}

// changeQuantity applies +, - or remove to a line item.
func (m *Model) changeQuantity(li cart.LineItem, msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Remove):
		return m.mutate(func() error { return m.store.RemoveItem(li.ID) })
	case key.Matches(msg, m.keys.Decrease):
		return m.mutate(func() error { return m.store.UpdateQuantity(li.ID, li.Quantity-1) })
	default:
		return m.mutate(func() error { return m.store.UpdateQuantity(li.ID, li.Quantity+1) })
	}
}

// mutate runs a store operation and refreshes the cart views. Errors are
// shown in the toast bar.
func (m *Model) mutate(op func() error) tea.Cmd {
	err := op()
	m.refreshCart()
	if err != nil {
		logging.Error("cart operation failed", "error", err)
		return func() tea.Msg { return CartErrorMsg{Err: err} }
	}
	return nil
}

func (m *Model) expireToast(seq int) tea.Cmd {
	return tea.Tick(m.opts.ToastDuration, func(time.Time) tea.Msg {
		return ToastExpiredMsg{Seq: seq}
	})
}

func (m *Model) setFocus(p FocusedPane) {
	m.focusedPane = p
	m.products.SetFocused(p == FocusProducts)
	m.cartList.SetFocused(p == FocusCart)
}

func (m *Model) applyFilter() {
	category := m.categories[m.categoryIdx]
	products := m.catalog.ByCategory(category)
	label := category
	if m.featuredOnly {
		featured := products[:0:0]
		for _, p := range products {
			if p.Featured {
				featured = append(featured, p)
			}
		}
		products = featured
		label += " ★"
	}
	m.products.SetProducts(label, products)
	m.header.SetCategory(label)
}

func (m *Model) refreshCart() {
	items := m.store.Items()
	s := cart.Summarize(items, m.opts.DeliveryFee)
	m.cartList.SetItems(items)
	m.summary.SetSummary(s)
	m.header.SetCartUnits(s.Units)
}

func (m *Model) updateLayout() {
	if m.width == 0 {
		return
	}
	paneWidth := m.width/2 - 2
	// header, toast, help and box borders
	chrome := 8
	if m.help.ShowAll {
		chrome += 4
	}
	listHeight := m.height - chrome - 8
	if listHeight < 3 {
		listHeight = 3
	}

	m.header.SetWidth(m.width)
	m.toastBar.SetWidth(m.width)
	m.help.Width = m.width
	m.products.SetSize(paneWidth, listHeight-4)
	m.cartList.SetSize(paneWidth, listHeight-6)
	m.summary.SetWidth(paneWidth)
	m.confirm.SetSize(min(60, m.width-4))
}

// View renders the shop.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	productBox, cartBox := styles.BoxStyle, styles.BoxStyle
	if m.focusedPane == FocusProducts {
		productBox = styles.FocusedBoxStyle
	} else {
		cartBox = styles.FocusedBoxStyle
	}
	if m.width > 0 {
		productBox = productBox.Width(m.width/2 - 2)
		cartBox = cartBox.Width(m.width/2 - 2)
	}

	left := productBox.Render(m.products.View())
	right := cartBox.Render(m.cartList.View() + "\n\n" + m.summary.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	if m.confirm.IsVisible() {
		w, h := lipgloss.Width(body), lipgloss.Height(body)
		body = lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, m.confirm.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		body,
		m.toastBar.View(),
		m.help.View(m.keys),
	)
}

// Run runs the shop until the user quits or ctx is done.
func Run(ctx context.Context, store *cart.Store, cat *catalog.Catalog, opts Options) error {
	m := NewShop(store, cat, opts)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
