package repository

import (
	"context"
	"sync"

	"github.com/paododia/paododia-admin-service/internal/model"
	"github.com/paododia/paododia-admin-service/internal/plan"
	"github.com/paododia/paododia-admin-service/internal/plan/dto"
)

// MemoryRepository mirrors the product store: process-lifetime map, copies
// out, insertion order preserved for listing.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[string]model.Plan
	ids     []string
}

func NewMemoryRepository(seed []model.Plan) *MemoryRepository {
	r := &MemoryRepository{
		records: make(map[string]model.Plan, len(seed)),
		ids:     make([]string, 0, len(seed)),
	}
	for _, p := range seed {
		r.records[p.ID] = p
		r.ids = append(r.ids, p.ID)
	}
	return r
}

func (r *MemoryRepository) Create(ctx context.Context, p *model.Plan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[p.ID] = *p
	r.ids = append(r.ids, p.ID)
	return nil
}

func (r *MemoryRepository) FindByID(ctx context.Context, id string) (*model.Plan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.records[id]
	if !ok {
		return nil, plan.ErrNotFound
	}
	return &p, nil
}

func (r *MemoryRepository) FindAll(ctx context.Context, filters *dto.PlanFilters) ([]model.Plan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plans := make([]model.Plan, 0, len(r.ids))
	for _, id := range r.ids {
		p := r.records[id]
		if filters != nil && filters.IsActive != nil && p.IsActive != *filters.IsActive {
			continue
		}
		plans = append(plans, p)
	}
	return plans, nil
}

func (r *MemoryRepository) Update(ctx context.Context, p *model.Plan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[p.ID]; !ok {
		return plan.ErrNotFound
	}
	r.records[p.ID] = *p
	return nil
}
