package cart

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	apperrors "github.com/wexinc/sweetcakes/internal/errors"
	"github.com/wexinc/sweetcakes/internal/logging"
)

// ErrClosed is returned by mutations on a closed Store.
var ErrClosed = errors.New("cart store is closed")

// Option configures a Store.
type Option func(*Store)

// WithNotifier registers a notification sink.
func WithNotifier(n Notifier) Option {
	return func(s *Store) {
		s.subs = append(s.subs, &subscription{n: n})
	}
}

// WithLogger sets the logger used for diagnostics. Defaults to logging.Global().
func WithLogger(l *logging.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

type subscription struct {
	n Notifier
}

// Store owns the cart. It is the single writer of the line items: every
// mutation is mirrored to the Persister as a full snapshot before the
// notifiers hear about it.
type Store struct {
	mu        sync.RWMutex
	items     []LineItem
	persister Persister
	subs      []*subscription
	logger    *logging.Logger
	closed    bool
}

// New creates a Store and loads the cart from p. A cart that cannot be
// read or parsed is logged and replaced by an empty cart. A nil p keeps
// the cart in memory only.
func New(p Persister, opts ...Option) *Store {
	if p == nil {
		p = nopPersister{}
	}
	s := &Store{
		items:     []LineItem{},
		persister: p,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.Global()
	}

	s.load()
	return s
}

func (s *Store) load() {
	items, err := s.persister.Load()
	if err != nil {
		key := persisterKey(s.persister)
		s.logger.Warn("error loading cart, starting with an empty cart",
			"key", key,
			"error", apperrors.CartCorrupt(key, err).Error(),
		)
		return
	}
	if len(items) > 0 {
		s.items = append([]LineItem(nil), items...)
	}
	s.logger.Debug("cart loaded", "key", persisterKey(s.persister), "items", len(s.items))
}

func persisterKey(p Persister) string {
	if k, ok := p.(interface{ Key() string }); ok {
		return k.Key()
	}
	return ""
}

// Subscribe registers an additional notifier and returns a function that
// removes it again.
func (s *Store) Subscribe(n Notifier) (unsubscribe func()) {
	sub := &subscription{n: n}

	s.mu.Lock()
	s.subs = append(s.subs, sub)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, existing := range s.subs {
			if existing == sub {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// AddItem adds one unit of item. A product already in the cart has its
// quantity incremented; otherwise a new line item with quantity 1 is
// appended. Items that fail Validate are rejected with an ErrCart error
// and leave the cart unchanged.
func (s *Store) AddItem(item Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}

	var n Notification
	if i := s.indexOf(item.ID); i >= 0 {
		s.items[i].Quantity++
		n = updatedNotification(LineItem{ID: item.ID, Name: item.Name})
	} else {
		li := newLineItem(item)
		s.items = append(s.items, li)
		n = addedNotification(li)
	}
	err := s.persistLocked()
	s.mu.Unlock()

	s.logger.Debug("cart item added", "id", item.ID, "kind", n.Kind)
	s.notify(n)
	return err
}

// RemoveItem deletes the line item with the given ID. Unknown IDs are
// ignored: nothing is written and nobody is notified.
func (s *Store) RemoveItem(id string) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}

	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return nil
	}
	removed := s.items[i]
	s.items = append(s.items[:i], s.items[i+1:]...)
	err := s.persistLocked()
	s.mu.Unlock()

	s.logger.Debug("cart item removed", "id", id)
	s.notify(removedNotification(removed))
	return err
}

// UpdateQuantity sets the quantity of the line item with the given ID.
// A quantity of zero or less removes the item. Unknown IDs are ignored.
func (s *Store) UpdateQuantity(id string, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	s.items[i].Quantity = quantity
	s.logger.Debug("cart quantity updated", "id", id, "quantity", quantity)
	return s.persistLocked()
}

// ClearCart removes every line item.
func (s *Store) ClearCart() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	s.items = []LineItem{}
	err := s.persistLocked()
	s.mu.Unlock()

	s.logger.Debug("cart cleared")
	s.notify(clearedNotification())
	return err
}

// Items returns a copy of the line items in insertion order.
func (s *Store) Items() []LineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]LineItem{}, s.items...)
}

// Get returns the line item with the given ID.
func (s *Store) Get(id string) (LineItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.items[i], true
	}
	return LineItem{}, false
}

// Len returns the number of line items.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Count returns the number of units across all line items.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, li := range s.items {
		n += li.Quantity
	}
	return n
}

// Total returns the sum of price × quantity over all line items.
// It is computed on every call.
func (s *Store) Total() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Sum(s.items)
}

// Subtotal returns price × quantity of one line item.
func (s *Store) Subtotal(id string) (decimal.Decimal, bool) {
	li, ok := s.Get(id)
	if !ok {
		return decimal.Zero, false
	}
	return li.Subtotal(), true
}

// Close closes the persister. Reads keep working on the last state;
// mutations return ErrClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.persister.Close()
}

func (s *Store) indexOf(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

// persistLocked writes a snapshot of the items. Caller must hold s.mu.
func (s *Store) persistLocked() error {
	snapshot := append([]LineItem{}, s.items...)
	if err := s.persister.Save(snapshot); err != nil {
		key := persisterKey(s.persister)
		s.logger.Error("failed to save cart", "key", key, "error", err)
		return apperrors.Wrap(err, apperrors.ErrStorage, "failed to save cart").WithDetails("key", key)
	}
	return nil
}

func (s *Store) notify(n Notification) {
	s.mu.RLock()
	subs := append([]*subscription(nil), s.subs...)
	s.mu.RUnlock()

	for _, sub := range subs {
		sub.n.Notify(n)
	}
}

type nopPersister struct{}

func (nopPersister) Load() ([]LineItem, error) { return nil, nil }
func (nopPersister) Save([]LineItem) error     { return nil }
func (nopPersister) Close() error              { return nil }
