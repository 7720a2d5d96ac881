package cart

import (
	"encoding/json"
	"fmt"

	"github.com/wexinc/sweetcakes/internal/storage"
)

// DefaultKey is the storage key holding the cart.
const DefaultKey = "sweet-cakes-cart"

// Persister is the persistence observer of a Store: it loads the cart once
// at construction and receives a full snapshot after every mutation.
type Persister interface {
	// Load returns the stored items. A missing value yields no items and no error.
	Load() ([]LineItem, error)
	// Save overwrites the stored value with items.
	Save(items []LineItem) error
	// Close releases the underlying storage.
	Close() error
}

// KVPersister stores the cart as a JSON array under one key of a KV.
type KVPersister struct {
	kv  storage.KV
	key string
}

// NewKVPersister creates a KVPersister. An empty key selects DefaultKey.
func NewKVPersister(kv storage.KV, key string) *KVPersister {
	if key == "" {
		key = DefaultKey
	}
	return &KVPersister{kv: kv, key: key}
}

// Key returns the storage key.
func (p *KVPersister) Key() string {
	return p.key
}

// Load implements Persister.
func (p *KVPersister) Load() ([]LineItem, error) {
	raw, ok, err := p.kv.Get(p.key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return Decode([]byte(raw))
}

// Save implements Persister.
func (p *KVPersister) Save(items []LineItem) error {
	data, err := Encode(items)
	if err != nil {
		return err
	}
	return p.kv.Set(p.key, string(data))
}

// Close implements Persister.
func (p *KVPersister) Close() error {
	return p.kv.Close()
}

// Encode serializes items as a JSON array. A nil slice encodes as [].
func Encode(items []LineItem) ([]byte, error) {
	if items == nil {
		items = []LineItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cart: %w", err)
	}
	return data, nil
}

// Decode parses a stored JSON array of line items. Values that break the
// cart invariants (empty or duplicate IDs, quantity below 1, negative
// price) are rejected as a whole.
func Decode(data []byte) ([]LineItem, error) {
	var items []LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse cart: %w", err)
	}

	seen := make(map[string]bool, len(items))
	for i, li := range items {
		switch {
		case li.ID == "":
			return nil, fmt.Errorf("item %d: missing id", i)
		case seen[li.ID]:
			return nil, fmt.Errorf("item %d: duplicate id %q", i, li.ID)
		case li.Quantity < 1:
			return nil, fmt.Errorf("item %q: quantity %d is below 1", li.ID, li.Quantity)
		case li.Price < 0:
			return nil, fmt.Errorf("item %q: negative price", li.ID)
		}
		seen[li.ID] = true
	}
	return items, nil
}
