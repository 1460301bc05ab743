package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/omarfh/proctor-api/internal/models"
)

// TARepository reads the teaching assistant roster.
type TARepository struct {
	db *sqlx.DB
}

// NewTARepository constructs the repository.
func NewTARepository(db *sqlx.DB) *TARepository {
	return &TARepository{db: db}
}

// ListByMajor returns TAs scoped to an academic track. The order is stable
// so ranking tie-breaks stay deterministic between calls.
func (r *TARepository) ListByMajor(ctx context.Context, major string) ([]models.TA, error) {
	const query = `
SELECT id, full_name, email, major, day_off, workload_points, target_workload, created_at, updated_at
FROM tas
WHERE major = $1
ORDER BY created_at ASC, id ASC`
	var tas []models.TA
	if err := r.db.SelectContext(ctx, &tas, query, major); err != nil {
		return nil, fmt.Errorf("list tas by major: %w", err)
	}
	return tas, nil
}

// WorkloadSummary aggregates workload points and assignment counts per TA.
// An empty major returns every TA.
func (r *TARepository) WorkloadSummary(ctx context.Context, major string) ([]models.WorkloadSummaryRow, error) {
	const query = `
SELECT t.id AS ta_id, t.full_name, t.email, t.major, t.workload_points, t.target_workload,
       COUNT(a.id) AS assignment_count
FROM tas t
LEFT JOIN assignments a ON a.ta_id = t.id
WHERE ($1 = '' OR t.major = $1)
GROUP BY t.id, t.full_name, t.email, t.major, t.workload_points, t.target_workload
ORDER BY t.full_name ASC`
	var rows []models.WorkloadSummaryRow
	if err := r.db.SelectContext(ctx, &rows, query, major); err != nil {
		return nil, fmt.Errorf("workload summary: %w", err)
	}
	return rows, nil
}
