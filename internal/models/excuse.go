package models

import "time"

// ExcuseStatus marks whether an excuse is still in force.
type ExcuseStatus string

const (
	ExcuseStatusActive  ExcuseStatus = "active"
	ExcuseStatusRevoked ExcuseStatus = "revoked"
)

// Excuse is a TA's declared unavailability window. A nil EndDate means the
// excuse is open ended.
type Excuse struct {
	ID        string       `db:"id" json:"id"`
	TAID      string       `db:"ta_id" json:"ta_id"`
	StartDate time.Time    `db:"start_date" json:"start_date"`
	EndDate   *time.Time   `db:"end_date" json:"end_date,omitempty"`
	Status    ExcuseStatus `db:"status" json:"status"`
	Reason    string       `db:"reason" json:"reason"`
	CreatedAt time.Time    `db:"created_at" json:"created_at"`
}
