package scoring

import (
	"context"
	"database/sql"
	"errors"
)

type WeightsPGRepo struct {
	DB *sql.DB
}

// GetOrCreate returns the tenant's configured weights, inserting the default
// set on first access. Existing rows are returned as stored, even when
// degenerate; normalization happens at compute time.
func (r *WeightsPGRepo) GetOrCreate(ctx context.Context, tenantID string) (Weights, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return Weights{}, err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	var w Weights
	row := tx.QueryRowContext(ctx, `
SELECT formation, experience, skills, competencies, keyword
FROM scoring_weights
WHERE tenant_id = $1
FOR UPDATE`, tenantID)
	err = row.Scan(&w.Formation, &w.Experience, &w.Skills, &w.Competencies, &w.Keyword)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return Weights{}, err
		}
		w = DefaultWeights()
		if _, err = tx.ExecContext(ctx, `
INSERT INTO scoring_weights (tenant_id, formation, experience, skills, competencies, keyword)
VALUES ($1, $2, $3, $4, $5, $6)`,
			tenantID, w.Formation, w.Experience, w.Skills, w.Competencies, w.Keyword); err != nil {
			return Weights{}, err
		}
	}
	if err = tx.Commit(); err != nil {
		return Weights{}, err
	}
	return w, nil
}
