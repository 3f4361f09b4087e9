package store

import (
	"sync"
	"time"

	"github.com/mlefevre/boutique-api/pkg/models"
)

// Orders is the append-only order log. Ids are assigned here and strictly
// increase; orders are never modified or removed once appended.
type Orders struct {
	mu     sync.RWMutex
	orders []models.Order
	nextID int
}

func NewOrders() *Orders {
	return &Orders{nextID: 1}
}

// List returns all orders in submission order.
func (s *Orders) List() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Append assigns the next id and the submission timestamp to the order,
// stores it and returns the completed record.
func (s *Orders) Append(order models.Order) models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	order.ID = s.nextID
	s.nextID++
	if order.OrderDateTime.IsZero() {
		order.OrderDateTime = time.Now()
	}
	s.orders = append(s.orders, order)
	return order
}

// Reset drops all orders and restarts the id sequence. Test hook.
func (s *Orders) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = nil
	s.nextID = 1
}
