package scoring

import (
	"context"
	"sort"
	"sync"
)

type MemoryRepo struct {
	mu      sync.RWMutex
	records map[string]ScoreRecord
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{records: make(map[string]ScoreRecord)}
}

func (r *MemoryRepo) Upsert(ctx context.Context, record ScoreRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[record.CandidateID] = record
	return nil
}

func (r *MemoryRepo) GetByCandidate(ctx context.Context, candidateID string) (ScoreRecord, error) {
	if err := ctx.Err(); err != nil {
		return ScoreRecord{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.records[candidateID]
	if !ok {
		return ScoreRecord{}, ErrStaleCandidate
	}
	return record, nil
}

func (r *MemoryRepo) ListByTenant(ctx context.Context, tenantID string) ([]ScoreRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []ScoreRecord
	for _, record := range r.records {
		if record.TenantID == tenantID {
			out = append(out, record)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total == out[j].Total {
			return out[i].CandidateID < out[j].CandidateID
		}
		return out[i].Total > out[j].Total
	})
	return out, nil
}
