package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// ExcuseRepository reads declared unavailability windows.
type ExcuseRepository struct {
	db *sqlx.DB
}

// NewExcuseRepository constructs the repository.
func NewExcuseRepository(db *sqlx.DB) *ExcuseRepository {
	return &ExcuseRepository{db: db}
}

// ListActiveTAIDs returns TAs with an active excuse covering the given date.
// Open-ended excuses (NULL end_date) cover every date after their start.
func (r *ExcuseRepository) ListActiveTAIDs(ctx context.Context, date time.Time) ([]string, error) {
	const query = `
SELECT DISTINCT ta_id
FROM excuses
WHERE status = 'active'
  AND start_date <= $1
  AND (end_date IS NULL OR end_date >= $1)`
	var ids []string
	if err := r.db.SelectContext(ctx, &ids, query, date); err != nil {
		return nil, fmt.Errorf("list active excuses: %w", err)
	}
	return ids, nil
}
