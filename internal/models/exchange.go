package models

import "time"

// ExchangeStatus tracks the exchange request workflow.
type ExchangeStatus string

const (
	ExchangeStatusPending  ExchangeStatus = "pending"
	ExchangeStatusApproved ExchangeStatus = "approved"
	ExchangeStatusRejected ExchangeStatus = "rejected"
)

// ExchangeRequest records that a TA gave up an assignment. An approved
// exchange keeps the original TA out of new suggestions on that quiz date.
type ExchangeRequest struct {
	ID           string         `db:"id" json:"id"`
	AssignmentID string         `db:"assignment_id" json:"assignment_id"`
	OriginalTAID string         `db:"original_ta_id" json:"original_ta_id"`
	Status       ExchangeStatus `db:"status" json:"status"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
}
