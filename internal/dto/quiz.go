package dto

// LocationRequest declares a room on a quiz payload.
type LocationRequest struct {
	Name     string `json:"name" validate:"required"`
	Capacity *int   `json:"capacity" validate:"omitempty,gt=0"`
}

// CreateQuizRequest creates a quiz together with its locations.
type CreateQuizRequest struct {
	CourseName      string            `json:"course_name" validate:"required"`
	Date            string            `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime       string            `json:"start_time" validate:"required"`
	DurationMinutes int               `json:"duration_minutes" validate:"omitempty,gt=0"`
	Major           string            `json:"major" validate:"required"`
	Weight          float64           `json:"weight" validate:"omitempty,gt=0"`
	Locations       []LocationRequest `json:"locations" validate:"required,min=1,dive"`
	AutoAssign      bool              `json:"auto_assign"`
}

// ReplaceLocationsRequest swaps a quiz's locations and re-runs auto-assign.
type ReplaceLocationsRequest struct {
	Locations []LocationRequest `json:"locations" validate:"required,min=1,dive"`
}

// PreviewRequest describes a quiz that may not exist yet; the identical
// ranking and allocation code runs on it without persisting anything.
type PreviewRequest struct {
	CourseName      string            `json:"course_name" validate:"required"`
	Date            string            `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime       string            `json:"start_time" validate:"required"`
	DurationMinutes int               `json:"duration_minutes" validate:"omitempty,gt=0"`
	Major           string            `json:"major" validate:"required"`
	Weight          float64           `json:"weight" validate:"omitempty,gt=0"`
	Locations       []LocationRequest `json:"locations" validate:"required,min=1,dive"`
}
