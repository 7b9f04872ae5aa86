package scoring

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"ats-backend/internal/candidates"
	"ats-backend/internal/shared/metrics"
	"ats-backend/internal/shared/telemetry"
	"ats-backend/internal/tenants"
)

const defaultMaxWorkers = 8

// Service recomputes candidate scores for a tenant and answers top-N
// ranking queries. Every query recomputes from the current profiles and
// weights, so the cached records are never stale.
type Service struct {
	Tenants    tenants.Repo
	Candidates candidates.Repo
	Scores     Repo
	Weights    WeightsRepo
	MaxWorkers int
}

// TopN returns the n highest-scoring active candidates for the tenant
// identified by slug, recomputing and persisting every candidate's score on
// the way. Ties on total are broken by candidate id ascending so results are
// deterministic regardless of fetch order.
func (s *Service) TopN(ctx context.Context, tenantSlug string, n int) ([]RankedCandidate, error) {
	if s == nil || s.Tenants == nil || s.Candidates == nil || s.Scores == nil || s.Weights == nil {
		return nil, ErrNotConfigured
	}
	if n < 1 {
		return nil, ErrInvalidTopN
	}

	tenant, err := s.Tenants.GetBySlug(ctx, tenantSlug)
	if err != nil {
		return nil, err
	}

	weights, err := s.Weights.GetOrCreate(ctx, tenant.ID)
	if err != nil {
		return nil, err
	}

	list, err := s.Candidates.ListActiveByTenant(ctx, tenant.ID)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return []RankedCandidate{}, nil
	}

	ranked, err := s.scoreAll(ctx, tenant.ID, list, weights)
	if err != nil {
		return nil, err
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Total == ranked[j].Total {
			return ranked[i].CandidateID < ranked[j].CandidateID
		}
		return ranked[i].Total > ranked[j].Total
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked, nil
}

// scoreAll computes and upserts every candidate's score with bounded
// concurrency. Stale candidates are skipped; the first persistence error
// cancels the remaining work and fails the batch, since results that cannot
// be cached are not trusted.
func (s *Service) scoreAll(ctx context.Context, tenantID string, list []candidates.Candidate, weights Weights) ([]RankedCandidate, error) {
	workers := s.MaxWorkers
	if workers < 1 {
		workers = defaultMaxWorkers
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]*RankedCandidate, len(list))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for i, candidate := range list {
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			wg.Wait()
			return nil, ctx.Err()
		}
		wg.Add(1)
		go func(i int, candidate candidates.Candidate) {
			defer wg.Done()
			defer func() { <-sem }()

			entry, err := s.scoreOne(ctx, tenantID, candidate, weights)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
					cancel()
				}
				mu.Unlock()
				return
			}
			results[i] = entry
		}(i, candidate)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	ranked := make([]RankedCandidate, 0, len(list))
	for _, entry := range results {
		if entry != nil {
			ranked = append(ranked, *entry)
		}
	}
	metrics.AddScoresComputed(len(ranked))
	return ranked, nil
}

// scoreOne computes and upserts one candidate's score. A nil entry with nil
// error means the candidate went stale and was dropped from the batch.
func (s *Service) scoreOne(ctx context.Context, tenantID string, candidate candidates.Candidate, weights Weights) (*RankedCandidate, error) {
	score := Compute(ProfileFromJSON(candidate.Profile), weights)

	record := ScoreRecord{
		CandidateID: candidate.ID,
		TenantID:    tenantID,
		Total:       score.Total,
		Breakdown:   score.Breakdown,
		ComputedAt:  time.Now().UTC(),
	}
	if err := s.Scores.Upsert(ctx, record); err != nil {
		if errors.Is(err, ErrStaleCandidate) {
			metrics.IncStaleCandidates()
			telemetry.Warn("scoring.candidate_stale", map[string]any{
				"tenant_id":    tenantID,
				"candidate_id": candidate.ID,
			})
			return nil, nil
		}
		return nil, err
	}

	return &RankedCandidate{
		CandidateID: candidate.ID,
		Name:        candidate.FullName,
		Total:       score.Total,
		Breakdown:   score.Breakdown,
	}, nil
}

// RecomputeCandidate refreshes the cached score for a single candidate. It is
// driven by profile-changed events from the recompute queue.
func (s *Service) RecomputeCandidate(ctx context.Context, tenantID, candidateID string) (ScoreRecord, error) {
	if s == nil || s.Candidates == nil || s.Scores == nil || s.Weights == nil {
		return ScoreRecord{}, ErrNotConfigured
	}

	candidate, err := s.Candidates.GetActiveByID(ctx, tenantID, candidateID)
	if err != nil {
		return ScoreRecord{}, err
	}

	weights, err := s.Weights.GetOrCreate(ctx, tenantID)
	if err != nil {
		return ScoreRecord{}, err
	}

	score := Compute(ProfileFromJSON(candidate.Profile), weights)
	record := ScoreRecord{
		CandidateID: candidate.ID,
		TenantID:    tenantID,
		Total:       score.Total,
		Breakdown:   score.Breakdown,
		ComputedAt:  time.Now().UTC(),
	}
	if err := s.Scores.Upsert(ctx, record); err != nil {
		return ScoreRecord{}, err
	}
	metrics.AddScoresComputed(1)
	return record, nil
}
