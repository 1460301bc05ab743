package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/omarfh/proctor-api/internal/models"
)

// AssignmentRepository persists proctor assignments.
type AssignmentRepository struct {
	db *sqlx.DB
}

// NewAssignmentRepository constructs the repository.
func NewAssignmentRepository(db *sqlx.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// ListTAIDsByDate returns TAs already holding an assignment to any quiz on
// the given calendar date.
func (r *AssignmentRepository) ListTAIDsByDate(ctx context.Context, date time.Time) ([]string, error) {
	const query = `
SELECT DISTINCT a.ta_id
FROM assignments a
JOIN quizzes q ON q.id = a.quiz_id
WHERE q.date = $1`
	var ids []string
	if err := r.db.SelectContext(ctx, &ids, query, date); err != nil {
		return nil, fmt.Errorf("list assigned tas by date: %w", err)
	}
	return ids, nil
}

// ListRecent returns assignments joined with their quiz's date and weight
// within the inclusive [from, to] date range.
func (r *AssignmentRepository) ListRecent(ctx context.Context, from, to time.Time) ([]models.RecentAssignment, error) {
	const query = `
SELECT a.ta_id, q.date AS quiz_date, q.weight AS quiz_weight
FROM assignments a
JOIN quizzes q ON q.id = a.quiz_id
WHERE q.date >= $1 AND q.date <= $2`
	var recent []models.RecentAssignment
	if err := r.db.SelectContext(ctx, &recent, query, from, to); err != nil {
		return nil, fmt.Errorf("list recent assignments: %w", err)
	}
	return recent, nil
}

// BulkCreate inserts the batch inside one transaction so a failing insert
// leaves no partial assignment set behind.
func (r *AssignmentRepository) BulkCreate(ctx context.Context, assignments []models.Assignment) error {
	if len(assignments) == 0 {
		return nil
	}
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin bulk create assignments: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const query = `INSERT INTO assignments (id, quiz_id, ta_id, location_id, status, created_at)
		VALUES (:id, :quiz_id, :ta_id, :location_id, :status, :created_at)`
	now := time.Now().UTC()
	for i := range assignments {
		if assignments[i].ID == "" {
			assignments[i].ID = uuid.NewString()
		}
		if assignments[i].Status == "" {
			assignments[i].Status = models.AssignmentStatusPending
		}
		if assignments[i].CreatedAt.IsZero() {
			assignments[i].CreatedAt = now
		}
		if _, err = tx.NamedExecContext(ctx, query, assignments[i]); err != nil {
			return fmt.Errorf("create assignment: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit bulk create assignments: %w", err)
	}
	return nil
}

// ListByQuiz returns assignment detail rows for a quiz.
func (r *AssignmentRepository) ListByQuiz(ctx context.Context, quizID string) ([]models.AssignmentDetail, error) {
	const query = `
SELECT a.id, a.quiz_id, a.ta_id, a.location_id, a.status, a.created_at,
       t.full_name AS ta_name, t.email AS ta_email, l.name AS location_name
FROM assignments a
JOIN tas t ON t.id = a.ta_id
JOIN locations l ON l.id = a.location_id
WHERE a.quiz_id = $1
ORDER BY l.created_at ASC, a.created_at ASC`
	var details []models.AssignmentDetail
	if err := r.db.SelectContext(ctx, &details, query, quizID); err != nil {
		return nil, fmt.Errorf("list assignments by quiz: %w", err)
	}
	return details, nil
}
