package models

import "time"

// DefaultTargetWorkload is assumed for TAs without an explicit target.
const DefaultTargetWorkload = 14.0

// TA represents a teaching assistant eligible to proctor. WorkloadPoints and
// TargetWorkload are mutated by the approval/exchange flow and are read-only
// from the ranker's perspective.
type TA struct {
	ID             string    `db:"id" json:"id"`
	FullName       string    `db:"full_name" json:"full_name"`
	Email          string    `db:"email" json:"email"`
	Major          string    `db:"major" json:"major"`
	DayOff         *string   `db:"day_off" json:"day_off,omitempty"`
	WorkloadPoints float64   `db:"workload_points" json:"workload_points"`
	TargetWorkload float64   `db:"target_workload" json:"target_workload"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// Normalize applies implicit defaults to a TA record.
func (t *TA) Normalize() {
	if t.TargetWorkload <= 0 {
		t.TargetWorkload = DefaultTargetWorkload
	}
}

// WorkloadSummaryRow aggregates per-TA workload figures for reporting.
type WorkloadSummaryRow struct {
	TAID            string  `db:"ta_id" json:"ta_id"`
	FullName        string  `db:"full_name" json:"full_name"`
	Email           string  `db:"email" json:"email"`
	Major           string  `db:"major" json:"major"`
	WorkloadPoints  float64 `db:"workload_points" json:"workload_points"`
	TargetWorkload  float64 `db:"target_workload" json:"target_workload"`
	AssignmentCount int     `db:"assignment_count" json:"assignment_count"`
}
