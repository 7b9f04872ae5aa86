package tenants

import "time"

// Tenant is an isolated customer organization. All candidates, weights, and
// scores are partitioned by tenant.
type Tenant struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
