package repository

import (
	"context"
	"fmt"
	"sync"

	"telematics_roi/internal/domain/entities"
	"telematics_roi/internal/usecase/interfaces"
)

// EstimateMemoryRepository keeps estimates in process memory. It backs the
// "memory" storage driver used for local runs and tests.
type EstimateMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]entities.Estimate
}

var _ interfaces.IEstimateRepository = (*EstimateMemoryRepository)(nil)

func NewEstimateMemoryRepository() *EstimateMemoryRepository {
	return &EstimateMemoryRepository{items: make(map[string]entities.Estimate)}
}

func (r *EstimateMemoryRepository) Create(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[e.ID]; exists {
		return entities.Estimate{}, fmt.Errorf("estimate %s already exists", e.ID)
	}
	e.Results = entities.Results{}
	r.items[e.ID] = e
	return e, nil
}

func (r *EstimateMemoryRepository) GetByID(_ context.Context, id string) (entities.Estimate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items[id], nil
}

func (r *EstimateMemoryRepository) DeleteByID(_ context.Context, id string) (entities.Estimate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.items[id]
	if !ok {
		return entities.Estimate{}, nil
	}
	delete(r.items, id)
	return e, nil
}
