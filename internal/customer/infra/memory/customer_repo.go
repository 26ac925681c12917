package memory

import (
	"context"
	"sync"

	"github.com/dwikikusuma/shoping-checkout/internal/customer/app"
	"github.com/dwikikusuma/shoping-checkout/internal/customer/domain"
)

type CustomerRepo struct {
	mu   sync.RWMutex
	byID map[string]*domain.Customer
}

func NewCustomerRepo() *CustomerRepo {
	return &CustomerRepo{byID: make(map[string]*domain.Customer)}
}

func (r *CustomerRepo) Create(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[c.ID()] = c
	return c, nil
}

func (r *CustomerRepo) Get(_ context.Context, id string) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return nil, app.ErrNotFound
	}
	return c, nil
}
