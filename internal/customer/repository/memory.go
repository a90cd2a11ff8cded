package repository

import (
	"context"
	"sync"

	"github.com/paododia/paododia-admin-service/internal/customer"
	"github.com/paododia/paododia-admin-service/internal/customer/dto"
	"github.com/paododia/paododia-admin-service/internal/model"
)

type MemoryRepository struct {
	mu      sync.RWMutex
	records map[string]model.Customer
	ids     []string
}

func NewMemoryRepository(seed []model.Customer) *MemoryRepository {
	r := &MemoryRepository{
		records: make(map[string]model.Customer, len(seed)),
		ids:     make([]string, 0, len(seed)),
	}
	for _, c := range seed {
		r.records[c.ID] = c
		r.ids = append(r.ids, c.ID)
	}
	return r
}

func (r *MemoryRepository) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.records[id]
	if !ok {
		return nil, customer.ErrNotFound
	}
	return &c, nil
}

func (r *MemoryRepository) FindAll(ctx context.Context, filters *dto.CustomerFilters) ([]model.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customers := make([]model.Customer, 0, len(r.ids))
	for _, id := range r.ids {
		c := r.records[id]
		if filters != nil && filters.IsActive != nil && c.IsActive != *filters.IsActive {
			continue
		}
		customers = append(customers, c)
	}
	return customers, nil
}
