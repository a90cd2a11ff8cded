package repository

import (
	"context"
	"sync"

	"github.com/paododia/paododia-admin-service/internal/model"
	"github.com/paododia/paododia-admin-service/internal/product"
	"github.com/paododia/paododia-admin-service/internal/product/dto"
)

// MemoryRepository is the authoritative product store for the process
// lifetime. All reads hand out copies, so callers never observe later
// mutations of the store through a previously returned record.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[string]model.Product
	ids     []string // insertion order
}

func NewMemoryRepository(seed []model.Product) *MemoryRepository {
	r := &MemoryRepository{
		records: make(map[string]model.Product, len(seed)),
		ids:     make([]string, 0, len(seed)),
	}
	for _, p := range seed {
		r.records[p.ID] = p
		r.ids = append(r.ids, p.ID)
	}
	return r
}

func (r *MemoryRepository) Create(ctx context.Context, p *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[p.ID] = *p
	r.ids = append(r.ids, p.ID)
	return nil
}

func (r *MemoryRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.records[id]
	if !ok {
		return nil, product.ErrNotFound
	}
	return &p, nil
}

func (r *MemoryRepository) FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]model.Product, 0, len(r.ids))
	for _, id := range r.ids {
		p := r.records[id]
		if filters != nil && filters.IsActive != nil && p.IsActive != *filters.IsActive {
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

// Update replaces the full record matching the incoming id. Unknown ids are
// an explicit error; nothing is ever created or partially written here.
func (r *MemoryRepository) Update(ctx context.Context, p *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[p.ID]; !ok {
		return product.ErrNotFound
	}
	r.records[p.ID] = *p
	return nil
}
