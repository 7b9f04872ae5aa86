package tenants

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type MemoryRepo struct {
	mu      sync.RWMutex
	bySlug  map[string]Tenant
	tenants map[string]Tenant
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		bySlug:  make(map[string]Tenant),
		tenants: make(map[string]Tenant),
	}
}

// Put registers a tenant, used for seeding dev and test environments. A
// missing ID gets a generated one.
func (r *MemoryRepo) Put(tenant Tenant) Tenant {
	r.mu.Lock()
	defer r.mu.Unlock()
	if tenant.ID == "" {
		tenant.ID = uuid.NewString()
	}
	if tenant.CreatedAt.IsZero() {
		tenant.CreatedAt = time.Now().UTC()
	}
	r.bySlug[tenant.Slug] = tenant
	r.tenants[tenant.ID] = tenant
	return tenant
}

func (r *MemoryRepo) GetBySlug(ctx context.Context, slug string) (Tenant, error) {
	if err := ctx.Err(); err != nil {
		return Tenant{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	tenant, ok := r.bySlug[slug]
	if !ok {
		return Tenant{}, ErrNotFound
	}
	return tenant, nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, tenantID string) (Tenant, error) {
	if err := ctx.Err(); err != nil {
		return Tenant{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	tenant, ok := r.tenants[tenantID]
	if !ok {
		return Tenant{}, ErrNotFound
	}
	return tenant, nil
}
