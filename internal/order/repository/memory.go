package repository

import (
	"context"
	"sync"
	"time"

	"github.com/paododia/paododia-admin-service/internal/model"
	"github.com/paododia/paododia-admin-service/internal/order"
)

// MemoryRepository owns the order records for the process lifetime. Orders
// are the one entity two admins can race on (delivery confirmation), so
// updates are version-checked on top of the store mutex.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[string]*model.Order
	ids     []string
}

func NewMemoryRepository(seed []model.Order) *MemoryRepository {
	r := &MemoryRepository{
		records: make(map[string]*model.Order, len(seed)),
		ids:     make([]string, 0, len(seed)),
	}
	for i := range seed {
		o := seed[i]
		r.records[o.ID] = o.Clone()
		r.ids = append(r.ids, o.ID)
	}
	return r
}

func (r *MemoryRepository) Create(ctx context.Context, o *model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[o.ID] = o.Clone()
	r.ids = append(r.ids, o.ID)
	return nil
}

func (r *MemoryRepository) FindByID(ctx context.Context, id string) (*model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.records[id]
	if !ok {
		return nil, order.ErrNotFound
	}
	return o.Clone(), nil
}

func (r *MemoryRepository) FindAll(ctx context.Context) ([]model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]model.Order, 0, len(r.ids))
	for _, id := range r.ids {
		orders = append(orders, *r.records[id].Clone())
	}
	return orders, nil
}

func (r *MemoryRepository) FindByDateRange(ctx context.Context, from, to time.Time) ([]model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]model.Order, 0)
	for _, id := range r.ids {
		o := r.records[id]
		if o.OrderDate.Before(from) || !o.OrderDate.Before(to) {
			continue
		}
		orders = append(orders, *o.Clone())
	}
	return orders, nil
}

func (r *MemoryRepository) Update(ctx context.Context, o *model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.records[o.ID]
	if !ok {
		return order.ErrNotFound
	}
	if existing.Version != o.Version {
		return order.ErrVersionConflict
	}

	updated := o.Clone()
	updated.Version = o.Version + 1
	updated.CreatedAt = existing.CreatedAt
	r.records[o.ID] = updated
	return nil
}
