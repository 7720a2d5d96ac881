package tui

import (
	"github.com/wexinc/sweetcakes/internal/cart"
)

// Message types for TUI state updates.

// NotificationMsg carries a cart notification to the model.
type NotificationMsg struct {
	Notification cart.Notification
}

// ToastExpiredMsg hides the toast with the given sequence number.
type ToastExpiredMsg struct {
	Seq int
}

// CartErrorMsg reports a cart operation that failed.
type CartErrorMsg struct {
	Err error
}
