package tenants

import (
	"context"
	"errors"
)

// ErrNotFound indicates the tenant does not exist.
var ErrNotFound = errors.New("tenant not found")

type Repo interface {
	GetBySlug(ctx context.Context, slug string) (Tenant, error)
	GetByID(ctx context.Context, tenantID string) (Tenant, error)
}
