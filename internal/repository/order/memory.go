package order

import (
	"context"
	"sort"
	"sync"

	"tulynx-storefront/internal/domain"
)

// MemoryRepo is an in-process Repository used by tests and local runs
// without a mongo instance.
type MemoryRepo struct {
	mu     sync.Mutex
	orders map[string]domain.Order
}

func NewMemory() *MemoryRepo {
	return &MemoryRepo{orders: make(map[string]domain.Order)}
}

func (r *MemoryRepo) Insert(_ context.Context, order domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[order.OrderID] = order
	return nil
}

func (r *MemoryRepo) GetByID(_ context.Context, orderID string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &order, nil
}

func (r *MemoryRepo) ListByPhone(_ context.Context, phone string) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Order
	for _, order := range r.orders {
		if order.Customer.Phone == phone {
			out = append(out, order)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryRepo) CancelPending(_ context.Context, orderID string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if order.Status != domain.OrderStatusPending {
		return nil, domain.ErrConflict
	}
	order.Status = domain.OrderStatusCancelled
	r.orders[orderID] = order
	return &order, nil
}
