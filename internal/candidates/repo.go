package candidates

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrNotFound indicates the candidate does not exist or is inactive.
var ErrNotFound = errors.New("candidate not found")

type Repo interface {
	ListActiveByTenant(ctx context.Context, tenantID string) ([]Candidate, error)
	GetActiveByID(ctx context.Context, tenantID, candidateID string) (Candidate, error)
	UpdateProfile(ctx context.Context, tenantID, candidateID string, profile json.RawMessage) (Candidate, error)
}
