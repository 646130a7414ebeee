package cart

import (
	"context"
	"encoding/json"
	"sync"

	"shopsphere/storefront/internal/domain"
	"shopsphere/storefront/internal/storage"

	log "github.com/sirupsen/logrus"
)

const storageKey = "cart"

// Store owns the cart for the current browsing session: an ordered list
// of line items, at most one per product ID. Totals are derived from the
// items on every read, never stored. Contents are persisted to local
// storage after each mutation so carts survive a reload.
type Store struct {
	mutex   sync.Mutex
	items   []domain.LineItem
	storage storage.Storage
}

// NewStore restores the cart from storage. Missing or corrupt data is
// treated as an empty cart, never as a failure.
func NewStore(ctx context.Context, store storage.Storage) *Store {
	s := &Store{storage: store}

	data, ok, err := store.Get(ctx, storageKey)
	if err != nil {
		log.Warnf("Failed to load cart from storage, starting empty: %v", err)
		return s
	}
	if !ok {
		return s
	}

	if err := json.Unmarshal(data, &s.items); err != nil {
		log.Warnf("Corrupt cart data in storage, starting empty: %v", err)
		s.items = nil
	}

	return s
}

// AddItem adds one unit of the product. A product already in the cart has
// its quantity incremented; a new product is appended with quantity 1.
func (s *Store) AddItem(ctx context.Context, p domain.Product) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == p.ID {
			s.items[i].Quantity++
			s.persist(ctx)
			return
		}
	}

	s.items = append(s.items, domain.LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Image:     p.Image,
		Quantity:  1,
	})
	s.persist(ctx)
}

// UpdateQuantity sets the quantity for a product. Unknown IDs and
// non-positive quantities are ignored rather than clamped; the quantity
// comes straight from a user-editable field and a half-typed value must
// not reset the line item.
func (s *Store) UpdateQuantity(ctx context.Context, id string, quantity int) {
	if quantity < 1 {
		return
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == id {
			s.items[i].Quantity = quantity
			s.persist(ctx)
			return
		}
	}
}

// RemoveItem deletes the product's line item; removal is the only way a
// line item leaves the cart. Unknown IDs are a no-op.
func (s *Store) RemoveItem(ctx context.Context, id string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist(ctx)
			return
		}
	}
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.items = nil
	s.persist(ctx)
}

// Items returns the line items in insertion order.
func (s *Store) Items() []domain.LineItem {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	items := make([]domain.LineItem, len(s.items))
	copy(items, s.items)
	return items
}

// TotalItems is the sum of all quantities.
func (s *Store) TotalItems() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice is the sum of unit price times quantity over all line items.
func (s *Store) TotalPrice() float64 {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	total := 0.0
	for _, item := range s.items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	return total
}

// persist is called with the mutex held.
func (s *Store) persist(ctx context.Context) {
	data, err := json.Marshal(s.items)
	if err != nil {
		log.Errorf("Failed to serialize cart: %v", err)
		return
	}

	if err := s.storage.Set(ctx, storageKey, data); err != nil {
		log.Warnf("Failed to persist cart: %v", err)
	}
}
