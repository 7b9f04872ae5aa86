package candidates

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type MemoryRepo struct {
	mu         sync.RWMutex
	candidates map[string]Candidate
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{candidates: make(map[string]Candidate)}
}

// Put stores a candidate, used for seeding dev and test environments. A
// missing ID gets a generated one.
func (r *MemoryRepo) Put(candidate Candidate) Candidate {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	if candidate.ID == "" {
		candidate.ID = uuid.NewString()
	}
	if candidate.CreatedAt.IsZero() {
		candidate.CreatedAt = now
	}
	candidate.UpdatedAt = now
	r.candidates[candidate.ID] = candidate
	return candidate
}

// Remove deletes a candidate, simulating the external candidate lifecycle.
func (r *MemoryRepo) Remove(candidateID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.candidates, candidateID)
}

func (r *MemoryRepo) ListActiveByTenant(ctx context.Context, tenantID string) ([]Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Candidate
	for _, candidate := range r.candidates {
		if candidate.TenantID == tenantID && candidate.Active {
			out = append(out, candidate)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryRepo) UpdateProfile(ctx context.Context, tenantID, candidateID string, profile json.RawMessage) (Candidate, error) {
	if err := ctx.Err(); err != nil {
		return Candidate{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	candidate, ok := r.candidates[candidateID]
	if !ok || candidate.TenantID != tenantID || !candidate.Active {
		return Candidate{}, ErrNotFound
	}
	candidate.Profile = append(json.RawMessage(nil), profile...)
	candidate.UpdatedAt = time.Now().UTC()
	r.candidates[candidateID] = candidate
	return candidate, nil
}

func (r *MemoryRepo) GetActiveByID(ctx context.Context, tenantID, candidateID string) (Candidate, error) {
	if err := ctx.Err(); err != nil {
		return Candidate{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	candidate, ok := r.candidates[candidateID]
	if !ok || candidate.TenantID != tenantID || !candidate.Active {
		return Candidate{}, ErrNotFound
	}
	return candidate, nil
}
