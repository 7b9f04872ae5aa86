package scoring

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

type PGRepo struct {
	DB *sql.DB
}

const pgForeignKeyViolation = "23503"

func (r *PGRepo) Upsert(ctx context.Context, record ScoreRecord) error {
	const query = `
INSERT INTO candidate_scores (candidate_id, tenant_id, total, formation, experience, skills, competencies, keyword, computed_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (candidate_id) DO UPDATE SET
  tenant_id = EXCLUDED.tenant_id,
  total = EXCLUDED.total,
  formation = EXCLUDED.formation,
  experience = EXCLUDED.experience,
  skills = EXCLUDED.skills,
  competencies = EXCLUDED.competencies,
  keyword = EXCLUDED.keyword,
  computed_at = EXCLUDED.computed_at`
	_, err := r.DB.ExecContext(ctx, query,
		record.CandidateID,
		record.TenantID,
		record.Total,
		record.Breakdown.Formation,
		record.Breakdown.Experience,
		record.Breakdown.Skills,
		record.Breakdown.Competencies,
		record.Breakdown.Keyword,
		record.ComputedAt,
	)
	if err != nil {
		// The candidate row may vanish between listing and writing; a broken
		// FK marks the record stale rather than failing the batch.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return ErrStaleCandidate
		}
		return err
	}
	return nil
}

func (r *PGRepo) GetByCandidate(ctx context.Context, candidateID string) (ScoreRecord, error) {
	const query = `
SELECT candidate_id, tenant_id, total, formation, experience, skills, competencies, keyword, computed_at
FROM candidate_scores
WHERE candidate_id = $1
LIMIT 1`
	record, err := scanScoreRecord(r.DB.QueryRowContext(ctx, query, candidateID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ScoreRecord{}, ErrStaleCandidate
		}
		return ScoreRecord{}, err
	}
	return record, nil
}

func (r *PGRepo) ListByTenant(ctx context.Context, tenantID string) ([]ScoreRecord, error) {
	const query = `
SELECT candidate_id, tenant_id, total, formation, experience, skills, competencies, keyword, computed_at
FROM candidate_scores
WHERE tenant_id = $1
ORDER BY total DESC, candidate_id`
	rows, err := r.DB.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ScoreRecord
	for rows.Next() {
		record, err := scanScoreRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScoreRecord(row rowScanner) (ScoreRecord, error) {
	var record ScoreRecord
	err := row.Scan(
		&record.CandidateID,
		&record.TenantID,
		&record.Total,
		&record.Breakdown.Formation,
		&record.Breakdown.Experience,
		&record.Breakdown.Skills,
		&record.Breakdown.Competencies,
		&record.Breakdown.Keyword,
		&record.ComputedAt,
	)
	if err != nil {
		return ScoreRecord{}, err
	}
	return record, nil
}
