package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/dwikikusuma/shoping-checkout/internal/catalog/app"
	"github.com/dwikikusuma/shoping-checkout/internal/catalog/domain"
)

// ProductRepo keeps products in insertion order. Stored values are the
// live product instances, so stock changes are visible to every holder.
type ProductRepo struct {
	mu    sync.RWMutex
	byID  map[string]domain.Product
	order []string
}

func NewProductRepo() *ProductRepo {
	return &ProductRepo{byID: make(map[string]domain.Product)}
}

func (r *ProductRepo) Create(_ context.Context, p domain.Product) (domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[p.ID()]; !ok {
		r.order = append(r.order, p.ID())
	}
	r.byID[p.ID()] = p
	return p, nil
}

func (r *ProductRepo) Get(_ context.Context, id string) (domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return nil, app.ErrNotFound
	}
	return p, nil
}

func (r *ProductRepo) FindByName(_ context.Context, name string) (domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if p := r.byID[id]; p.Name() == name {
			return p, nil
		}
	}
	return nil, app.ErrNotFound
}

// List returns products whose name contains query (case-insensitive).
func (r *ProductRepo) List(_ context.Context, query string, limit int) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(query)
	out := make([]domain.Product, 0, min(limit, len(r.order)))
	for _, id := range r.order {
		if len(out) == limit {
			break
		}
		p := r.byID[id]
		if q == "" || strings.Contains(strings.ToLower(p.Name()), q) {
			out = append(out, p)
		}
	}
	return out, nil
}
