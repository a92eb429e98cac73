package cart

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/girishsunnykumar006-arch/bitesaver/internal/domain"
)

// Store holds the authoritative line-item collection for one session and is
// the only mutation surface for it. Lines keep first-add order; adding an
// already-present key merges into the existing line instead of appending.
//
// Each logical user is a single actor, but the HTTP surface can deliver
// concurrent requests for one session, so access is mutex-guarded.
type Store struct {
	mu    sync.RWMutex
	items []domain.CartLineItem
}

func NewStore() *Store {
	return &Store{}
}

// Add merges the entry into an existing line with the same key (quantity+1)
// or appends a new line at quantity 1. Entries with negative amounts are
// rejected with ErrInvalidArgument.
func (s *Store) Add(entry domain.CartEntry) error {
	if entry.Price.IsNegative() || entry.OriginalPrice.IsNegative() {
		return fmt.Errorf("%w: negative price for %s#%d", domain.ErrInvalidArgument, entry.Key.Catalog, entry.Key.ID)
	}
	if entry.Discount < 0 || entry.Discount > 100 {
		return fmt.Errorf("%w: discount %d out of range", domain.ErrInvalidArgument, entry.Discount)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Key == entry.Key {
			s.items[i].Quantity++
			return nil
		}
	}

	s.items = append(s.items, domain.CartLineItem{
		Key:           entry.Key,
		Store:         entry.Store,
		Discount:      entry.Discount,
		Price:         entry.Price,
		OriginalPrice: entry.OriginalPrice,
		Image:         entry.Image,
		Quantity:      1,
	})
	return nil
}

// Remove deletes the line matching key. Removing an absent key is a no-op.
func (s *Store) Remove(key domain.ItemKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(key)
}

func (s *Store) removeLocked(key domain.ItemKey) {
	for i := range s.items {
		if s.items[i].Key == key {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the line's quantity exactly. A quantity of zero or
// below removes the line; an unknown key is a no-op.
func (s *Store) UpdateQuantity(key domain.ItemKey, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(key)
		return
	}
	for i := range s.items {
		if s.items[i].Key == key {
			s.items[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Items returns a copy of the lines in first-add order.
func (s *Store) Items() []domain.CartLineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.CartLineItem, len(s.items))
	copy(out, s.items)
	return out
}

// TotalItems is the sum of quantities over all lines.
func (s *Store) TotalItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, li := range s.items {
		total += li.Quantity
	}
	return total
}

// TotalPrice is the sum of price*quantity over all lines. Recomputed on
// every read so it can never go stale against the live collection.
func (s *Store) TotalPrice() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := decimal.Zero
	for _, li := range s.items {
		total = total.Add(li.LineTotal())
	}
	return total
}

// Summary snapshots the lines and both aggregates under one lock hold.
func (s *Store) Summary() domain.CartSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sum := domain.CartSummary{
		Items:      make([]domain.CartLineItem, len(s.items)),
		TotalPrice: decimal.Zero,
	}
	copy(sum.Items, s.items)
	for _, li := range s.items {
		sum.TotalItems += li.Quantity
		sum.TotalPrice = sum.TotalPrice.Add(li.LineTotal())
	}
	return sum
}
