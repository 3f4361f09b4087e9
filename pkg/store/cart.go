package store

import (
	"sync"

	"github.com/mlefevre/boutique-api/pkg/models"
)

// Carts maps user ids to their pending cart lines. A user without a cart
// and a user with an empty cart answer the same way on reads; carts are
// created lazily on the first write.
type Carts struct {
	mu    sync.RWMutex
	carts map[string][]models.CartItem
}

func NewCarts() *Carts {
	return &Carts{carts: make(map[string][]models.CartItem)}
}

// Items returns a copy of the user's cart lines, empty if no cart exists.
func (s *Carts) Items(userID string) []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := s.carts[userID]
	out := make([]models.CartItem, len(items))
	copy(out, items)
	return out
}

// UpsertItem adds productID to the user's cart or adjusts its quantity.
// With a nil quantity, a new line starts at 1 and an existing line is
// incremented by 1. With an explicit quantity, the line is set to exactly
// that value whether or not it existed. Returns the resulting line.
func (s *Carts) UpsertItem(userID, productID string, quantity *int) models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[userID]
	for i := range items {
		if items[i].ProductID == productID {
			if quantity != nil {
				items[i].Quantity = *quantity
			} else {
				items[i].Quantity++
			}
			return items[i]
		}
	}

	item := models.CartItem{ProductID: productID, Quantity: 1}
	if quantity != nil {
		item.Quantity = *quantity
	}
	s.carts[userID] = append(items, item)
	return item
}

// RemoveItem drops the matching line from the user's cart. Missing cart or
// missing line are both no-ops.
func (s *Carts) RemoveItem(userID, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, ok := s.carts[userID]
	if !ok {
		return
	}
	for i := range items {
		if items[i].ProductID == productID {
			s.carts[userID] = append(items[:i], items[i+1:]...)
			return
		}
	}
}

// Clear deletes the user's cart entirely. No-op if none exists.
func (s *Carts) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, userID)
}

// Replace installs a full cart for the user, used by the demo seed.
func (s *Carts) Replace(userID string, items []models.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[userID] = append([]models.CartItem(nil), items...)
}

// Reset drops every cart. Test hook.
func (s *Carts) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts = make(map[string][]models.CartItem)
}
