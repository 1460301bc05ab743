package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// ScheduleRepository reads recurring weekly commitments.
type ScheduleRepository struct {
	db *sqlx.DB
}

// NewScheduleRepository constructs the repository.
func NewScheduleRepository(db *sqlx.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// ListConflictingTAIDs returns TAs with a recurring commitment on the given
// day of week at any of the provided slot numbers.
func (r *ScheduleRepository) ListConflictingTAIDs(ctx context.Context, dayOfWeek string, slots []int) ([]string, error) {
	if len(slots) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In(`SELECT DISTINCT ta_id FROM weekly_slots WHERE day_of_week = ? AND slot_number IN (?)`, dayOfWeek, slots)
	if err != nil {
		return nil, fmt.Errorf("build schedule conflict query: %w", err)
	}
	query = r.db.Rebind(query)
	var ids []string
	if err := r.db.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("list schedule conflicts: %w", err)
	}
	return ids, nil
}
