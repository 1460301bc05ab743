package models

import "time"

// AssignmentStatus tracks the lifecycle of a proctor assignment.
type AssignmentStatus string

const (
	AssignmentStatusPending   AssignmentStatus = "pending"
	AssignmentStatusConfirmed AssignmentStatus = "confirmed"
	AssignmentStatusCompleted AssignmentStatus = "completed"
)

// Assignment binds a TA to a (quiz, location) pair.
type Assignment struct {
	ID         string           `db:"id" json:"id"`
	QuizID     string           `db:"quiz_id" json:"quiz_id"`
	TAID       string           `db:"ta_id" json:"ta_id"`
	LocationID string           `db:"location_id" json:"location_id"`
	Status     AssignmentStatus `db:"status" json:"status"`
	CreatedAt  time.Time        `db:"created_at" json:"created_at"`
}

// AssignmentDetail joins an assignment with TA and location display fields.
type AssignmentDetail struct {
	Assignment
	TAName       string `db:"ta_name" json:"ta_name"`
	TAEmail      string `db:"ta_email" json:"ta_email"`
	LocationName string `db:"location_name" json:"location_name"`
}

// RecentAssignment is an assignment joined with its quiz's date and weight,
// used for burst-load and rest-time statistics.
type RecentAssignment struct {
	TAID       string    `db:"ta_id" json:"ta_id"`
	QuizDate   time.Time `db:"quiz_date" json:"quiz_date"`
	QuizWeight float64   `db:"quiz_weight" json:"quiz_weight"`
}
