package candidates

import (
	"encoding/json"
	"time"
)

// Candidate is a job applicant owned by the candidate-management subsystem.
// Profile carries the free-form evaluation blob; the scoring engine extracts
// its factor fields without interpreting anything else in it.
type Candidate struct {
	ID        string          `json:"id"`
	TenantID  string          `json:"tenantId"`
	FullName  string          `json:"fullName"`
	Profile   json.RawMessage `json:"profile"`
	Active    bool            `json:"active"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
