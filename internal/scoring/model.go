package scoring

import "time"

// ScoreRecord is the persisted result of the last computation for one
// candidate. It is a cache owned by the scoring engine, keyed uniquely by
// candidate and overwritten on every recomputation.
type ScoreRecord struct {
	CandidateID string    `json:"candidateId"`
	TenantID    string    `json:"tenantId"`
	Total       float64   `json:"total"`
	Breakdown   Breakdown `json:"breakdown"`
	ComputedAt  time.Time `json:"computedAt"`
}

// RankedCandidate is one entry of a top-N ranking response.
type RankedCandidate struct {
	CandidateID string    `json:"candidateId"`
	Name        string    `json:"name"`
	Total       float64   `json:"total"`
	Breakdown   Breakdown `json:"breakdown"`
}
