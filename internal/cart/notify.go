package cart

import "fmt"

// Kind identifies the cart change a notification reports.
type Kind string

const (
	// KindAdded reports a product added to the cart for the first time.
	KindAdded Kind = "added"
	// KindUpdated reports an increased quantity of a product already in the cart.
	KindUpdated Kind = "updated"
	// KindRemoved reports a product removed from the cart.
	KindRemoved Kind = "removed"
	// KindCleared reports that the cart was emptied.
	KindCleared Kind = "cleared"
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// Notification is a user-facing message about a cart change.
type Notification struct {
	Kind        Kind
	Title       string
	Description string
	// ItemID is the affected product, empty for KindCleared.
	ItemID string
}

// Notifier receives cart notifications. Calls are fire-and-forget.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(n Notification)

// Notify calls f(n).
func (f NotifierFunc) Notify(n Notification) {
	f(n)
}

func addedNotification(li LineItem) Notification {
	return Notification{
		Kind:        KindAdded,
		Title:       "Added to cart",
		Description: fmt.Sprintf("%s has been added to your cart", li.Name),
		ItemID:      li.ID,
	}
}

func updatedNotification(li LineItem) Notification {
	return Notification{
		Kind:        KindUpdated,
		Title:       "Updated cart",
		Description: fmt.Sprintf("Increased %s quantity", li.Name),
		ItemID:      li.ID,
	}
}

func removedNotification(li LineItem) Notification {
	return Notification{
		Kind:        KindRemoved,
		Title:       "Removed from cart",
		Description: fmt.Sprintf("%s has been removed from your cart", li.Name),
		ItemID:      li.ID,
	}
}

func clearedNotification() Notification {
	return Notification{
		Kind:        KindCleared,
		Title:       "Cart cleared",
		Description: "All items have been removed from your cart",
	}
}
