package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/omarfh/proctor-api/internal/models"
)

// QuizRepository persists quizzes and their locations.
type QuizRepository struct {
	db *sqlx.DB
}

// NewQuizRepository constructs the repository.
func NewQuizRepository(db *sqlx.DB) *QuizRepository {
	return &QuizRepository{db: db}
}

// FindByID loads a quiz with its locations in declared order.
func (r *QuizRepository) FindByID(ctx context.Context, id string) (*models.Quiz, error) {
	const query = `
SELECT id, course_name, date, start_time, duration_minutes, major, weight, created_at, updated_at
FROM quizzes
WHERE id = $1`
	var quiz models.Quiz
	if err := r.db.GetContext(ctx, &quiz, query, id); err != nil {
		return nil, err
	}
	locations, err := r.listLocations(ctx, id)
	if err != nil {
		return nil, err
	}
	quiz.Locations = locations
	return &quiz, nil
}

func (r *QuizRepository) listLocations(ctx context.Context, quizID string) ([]models.Location, error) {
	const query = `
SELECT id, quiz_id, name, capacity, created_at
FROM locations
WHERE quiz_id = $1
ORDER BY created_at ASC, id ASC`
	var locations []models.Location
	if err := r.db.SelectContext(ctx, &locations, query, quizID); err != nil {
		return nil, fmt.Errorf("list quiz locations: %w", err)
	}
	return locations, nil
}

// Create inserts a quiz and its locations in one transaction.
func (r *QuizRepository) Create(ctx context.Context, quiz *models.Quiz) error {
	if quiz.ID == "" {
		quiz.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if quiz.CreatedAt.IsZero() {
		quiz.CreatedAt = now
	}
	quiz.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create quiz: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const quizQuery = `INSERT INTO quizzes (id, course_name, date, start_time, duration_minutes, major, weight, created_at, updated_at)
		VALUES (:id, :course_name, :date, :start_time, :duration_minutes, :major, :weight, :created_at, :updated_at)`
	if _, err = tx.NamedExecContext(ctx, quizQuery, quiz); err != nil {
		return fmt.Errorf("create quiz: %w", err)
	}

	if err = insertLocations(ctx, tx, quiz.ID, quiz.Locations); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit create quiz: %w", err)
	}
	return nil
}

// ReplaceLocations deletes a quiz's locations and inserts the new set.
func (r *QuizRepository) ReplaceLocations(ctx context.Context, quizID string, locations []models.Location) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace locations: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM locations WHERE quiz_id = $1`, quizID); err != nil {
		return fmt.Errorf("delete quiz locations: %w", err)
	}
	if err = insertLocations(ctx, tx, quizID, locations); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit replace locations: %w", err)
	}
	return nil
}

func insertLocations(ctx context.Context, tx *sqlx.Tx, quizID string, locations []models.Location) error {
	const query = `INSERT INTO locations (id, quiz_id, name, capacity, created_at)
		VALUES (:id, :quiz_id, :name, :capacity, :created_at)`
	now := time.Now().UTC()
	for i := range locations {
		if locations[i].ID == "" {
			locations[i].ID = uuid.NewString()
		}
		locations[i].QuizID = quizID
		if locations[i].CreatedAt.IsZero() {
			// spaced timestamps keep the declared location order stable
			locations[i].CreatedAt = now.Add(time.Duration(i) * time.Microsecond)
		}
		if _, err := tx.NamedExecContext(ctx, query, locations[i]); err != nil {
			return fmt.Errorf("create location: %w", err)
		}
	}
	return nil
}

// List returns quizzes matching the filter, newest first, with a total count.
func (r *QuizRepository) List(ctx context.Context, filter models.QuizFilter) ([]models.Quiz, int, error) {
	where := "WHERE 1=1"
	args := []interface{}{}
	if filter.Major != "" {
		args = append(args, filter.Major)
		where += fmt.Sprintf(" AND major = $%d", len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		where += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		where += fmt.Sprintf(" AND date <= $%d", len(args))
	}

	countQuery := "SELECT COUNT(*) FROM quizzes " + where
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count quizzes: %w", err)
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}
	args = append(args, pageSize, (page-1)*pageSize)
	listQuery := fmt.Sprintf(`SELECT id, course_name, date, start_time, duration_minutes, major, weight, created_at, updated_at
FROM quizzes %s
ORDER BY date DESC, start_time DESC
LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	var quizzes []models.Quiz
	if err := r.db.SelectContext(ctx, &quizzes, listQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("list quizzes: %w", err)
	}
	return quizzes, total, nil
}

// Delete removes a quiz; locations and assignments cascade in the schema.
func (r *QuizRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM quizzes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete quiz: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check deleted quiz rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
