package models

import "time"

// WeeklySlot is a recurring commitment for a TA on a given day of week and
// fixed slot index. Only ever read to test overlap with a quiz window.
type WeeklySlot struct {
	ID         string    `db:"id" json:"id"`
	TAID       string    `db:"ta_id" json:"ta_id"`
	DayOfWeek  string    `db:"day_of_week" json:"day_of_week"`
	SlotNumber int       `db:"slot_number" json:"slot_number"`
	CourseName string    `db:"course_name" json:"course_name"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
