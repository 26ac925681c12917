package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/dwikikusuma/shoping-checkout/internal/order/domain"
	"github.com/google/uuid"
)

// OrderRepo is a process-lifetime order ledger.
type OrderRepo struct {
	mu     sync.RWMutex
	orders []domain.Order
	now    func() time.Time
}

func NewOrderRepo() *OrderRepo {
	return &OrderRepo{now: time.Now}
}

func (r *OrderRepo) CreateOrderTx(_ context.Context, order domain.Order) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = uuid.NewString()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = r.now()
	}

	items := make([]domain.OrderItem, len(order.OrderItems))
	for i, it := range order.OrderItems {
		it.ID = uuid.NewString()
		it.OrderID = order.ID
		items[i] = it
	}
	order.OrderItems = items

	r.orders = append(r.orders, order)
	return order, nil
}

func (r *OrderRepo) ListByCustomer(_ context.Context, customerID string) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Order
	for _, o := range r.orders {
		if o.CustomerID == customerID {
			o.OrderItems = slices.Clone(o.OrderItems)
			out = append(out, o)
		}
	}
	return out, nil
}
