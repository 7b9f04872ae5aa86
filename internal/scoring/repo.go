package scoring

import "context"

// Repo persists score records. One record exists per candidate; Upsert
// creates or overwrites, never appends.
type Repo interface {
	Upsert(ctx context.Context, record ScoreRecord) error
	GetByCandidate(ctx context.Context, candidateID string) (ScoreRecord, error)
	ListByTenant(ctx context.Context, tenantID string) ([]ScoreRecord, error)
}

// WeightsRepo resolves the scoring weights configured for a tenant, creating
// a default row on first access. The engine never mutates existing config.
type WeightsRepo interface {
	GetOrCreate(ctx context.Context, tenantID string) (Weights, error)
}
