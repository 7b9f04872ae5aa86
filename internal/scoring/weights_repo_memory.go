package scoring

import (
	"context"
	"sync"
)

type WeightsMemoryRepo struct {
	mu      sync.Mutex
	weights map[string]Weights
}

func NewWeightsMemoryRepo() *WeightsMemoryRepo {
	return &WeightsMemoryRepo{weights: make(map[string]Weights)}
}

// Put stores tenant weights, used for seeding dev and test environments.
func (r *WeightsMemoryRepo) Put(tenantID string, w Weights) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.weights[tenantID] = w
}

func (r *WeightsMemoryRepo) GetOrCreate(ctx context.Context, tenantID string) (Weights, error) {
	if err := ctx.Err(); err != nil {
		return Weights{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if w, ok := r.weights[tenantID]; ok {
		return w, nil
	}
	w := DefaultWeights()
	r.weights[tenantID] = w
	return w, nil
}
