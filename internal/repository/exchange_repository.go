package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// ExchangeRepository reads exchange requests.
type ExchangeRepository struct {
	db *sqlx.DB
}

// NewExchangeRepository constructs the repository.
func NewExchangeRepository(db *sqlx.DB) *ExchangeRepository {
	return &ExchangeRepository{db: db}
}

// ListApprovedOriginalTAIDs returns TAs whose approved exchange backed out of
// a quiz on the given date. They are not suggested again that day.
func (r *ExchangeRepository) ListApprovedOriginalTAIDs(ctx context.Context, date time.Time) ([]string, error) {
	const query = `
SELECT DISTINCT e.original_ta_id
FROM exchange_requests e
JOIN assignments a ON a.id = e.assignment_id
JOIN quizzes q ON q.id = a.quiz_id
WHERE e.status = 'approved' AND q.date = $1`
	var ids []string
	if err := r.db.SelectContext(ctx, &ids, query, date); err != nil {
		return nil, fmt.Errorf("list approved exchanges: %w", err)
	}
	return ids, nil
}
