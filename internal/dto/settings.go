package dto

// UpdateCompressedScheduleRequest toggles the compressed slot calendar.
// Dates use "2006-01-02" and are required whenever the toggle is enabled.
type UpdateCompressedScheduleRequest struct {
	Enabled   bool   `json:"enabled"`
	StartDate string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}
