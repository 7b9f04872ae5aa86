package candidates

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) ListActiveByTenant(ctx context.Context, tenantID string) ([]Candidate, error) {
	const query = `
SELECT id, tenant_id, full_name, profile, active, created_at, updated_at
FROM candidates
WHERE tenant_id = $1 AND active
ORDER BY created_at`
	rows, err := r.DB.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Candidate
	for rows.Next() {
		candidate, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, candidate)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetActiveByID(ctx context.Context, tenantID, candidateID string) (Candidate, error) {
	const query = `
SELECT id, tenant_id, full_name, profile, active, created_at, updated_at
FROM candidates
WHERE tenant_id = $1 AND id = $2 AND active
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, tenantID, candidateID)
	candidate, err := scanCandidate(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Candidate{}, ErrNotFound
		}
		return Candidate{}, err
	}
	return candidate, nil
}

func (r *PGRepo) UpdateProfile(ctx context.Context, tenantID, candidateID string, profile json.RawMessage) (Candidate, error) {
	const query = `
UPDATE candidates
SET profile = $3, updated_at = now()
WHERE tenant_id = $1 AND id = $2 AND active
RETURNING id, tenant_id, full_name, profile, active, created_at, updated_at`
	row := r.DB.QueryRowContext(ctx, query, tenantID, candidateID, []byte(profile))
	candidate, err := scanCandidate(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Candidate{}, ErrNotFound
		}
		return Candidate{}, err
	}
	return candidate, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCandidate(row rowScanner) (Candidate, error) {
	var candidate Candidate
	var profile []byte
	err := row.Scan(
		&candidate.ID,
		&candidate.TenantID,
		&candidate.FullName,
		&profile,
		&candidate.Active,
		&candidate.CreatedAt,
		&candidate.UpdatedAt,
	)
	if err != nil {
		return Candidate{}, err
	}
	candidate.Profile = profile
	return candidate, nil
}
