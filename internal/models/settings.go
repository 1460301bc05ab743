package models

import (
	"time"

	"github.com/jmoiron/sqlx/types"
)

// SettingKeyCompressedSchedule stores the compressed slot calendar toggle.
const SettingKeyCompressedSchedule = "compressed_schedule"

// AppSetting is a persisted key/value setting with a JSON payload.
type AppSetting struct {
	Key       string         `db:"key" json:"key"`
	Value     types.JSONText `db:"value" json:"value"`
	UpdatedAt time.Time      `db:"updated_at" json:"updated_at"`
}

// CompressedScheduleSettings is the JSON payload behind
// SettingKeyCompressedSchedule. Dates are inclusive day boundaries.
type CompressedScheduleSettings struct {
	Enabled   bool       `json:"enabled"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

// CoversDate reports whether the compressed calendar is active on the given
// day. Boundaries are inclusive and compared at day precision.
func (s CompressedScheduleSettings) CoversDate(date time.Time) bool {
	if !s.Enabled || s.StartDate == nil || s.EndDate == nil {
		return false
	}
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	start := time.Date(s.StartDate.Year(), s.StartDate.Month(), s.StartDate.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(s.EndDate.Year(), s.EndDate.Month(), s.EndDate.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(start) && !day.After(end)
}
