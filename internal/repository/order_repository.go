package repository

import (
	"errors"
	"sync"

	"github.com/girishsunnykumar006-arch/bitesaver/internal/domain"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderRepository keeps placed orders for the lifetime of the process so a
// session can look its confirmation back up. In-memory only.
type OrderRepository struct {
	mu     sync.RWMutex
	orders map[string]*domain.Order
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{orders: make(map[string]*domain.Order)}
}

func (r *OrderRepository) SaveOrder(order *domain.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[order.OrderID] = order
}

func (r *OrderRepository) GetOrder(orderID string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[orderID]
	if !ok {
		return nil, ErrOrderNotFound
	}
	return order, nil
}
