package tenants

import (
	"context"
	"database/sql"
	"errors"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) GetBySlug(ctx context.Context, slug string) (Tenant, error) {
	const query = `
SELECT id, slug, name, created_at
FROM tenants
WHERE slug = $1
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, slug))
}

func (r *PGRepo) GetByID(ctx context.Context, tenantID string) (Tenant, error) {
	const query = `
SELECT id, slug, name, created_at
FROM tenants
WHERE id = $1
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, tenantID))
}

func (r *PGRepo) scanOne(row *sql.Row) (Tenant, error) {
	var tenant Tenant
	err := row.Scan(&tenant.ID, &tenant.Slug, &tenant.Name, &tenant.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Tenant{}, ErrNotFound
		}
		return Tenant{}, err
	}
	return tenant, nil
}
