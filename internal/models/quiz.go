package models

import "time"

// Default sizing values applied during normalization instead of inline
// fallbacks inside the scoring code.
const (
	DefaultQuizWeight       = 1.0
	DefaultLocationCapacity = 10
)

// Quiz identifies one proctored session. StartTime is a wall-clock "HH:MM"
// value with no timezone conversion; Date carries day precision only.
type Quiz struct {
	ID              string     `db:"id" json:"id"`
	CourseName      string     `db:"course_name" json:"course_name"`
	Date            time.Time  `db:"date" json:"date"`
	StartTime       string     `db:"start_time" json:"start_time"`
	DurationMinutes int        `db:"duration_minutes" json:"duration_minutes"`
	Major           string     `db:"major" json:"major"`
	Weight          float64    `db:"weight" json:"weight"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
	Locations       []Location `db:"-" json:"locations,omitempty"`
}

// Normalize applies implicit defaults to a quiz record.
func (q *Quiz) Normalize() {
	if q.Weight <= 0 {
		q.Weight = DefaultQuizWeight
	}
	if q.DurationMinutes <= 0 {
		q.DurationMinutes = 60
	}
}

// Location is a room tied to exactly one quiz. Capacity is nullable; sizing
// falls back to DefaultLocationCapacity.
type Location struct {
	ID        string    `db:"id" json:"id"`
	QuizID    string    `db:"quiz_id" json:"quiz_id"`
	Name      string    `db:"name" json:"name"`
	Capacity  *int      `db:"capacity" json:"capacity,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// SizingCapacity returns the capacity used for proctor sizing.
func (l Location) SizingCapacity() int {
	if l.Capacity == nil || *l.Capacity <= 0 {
		return DefaultLocationCapacity
	}
	return *l.Capacity
}

// QuizFilter captures listing options for quizzes.
type QuizFilter struct {
	Major    string
	From     *time.Time
	To       *time.Time
	Page     int
	PageSize int
}
