package dto

// RecommendationTier is the qualitative band derived from a fairness score.
type RecommendationTier string

const (
	TierHighlyRecommended RecommendationTier = "highly_recommended"
	TierRecommended       RecommendationTier = "recommended"
	TierAcceptable        RecommendationTier = "acceptable"
	TierNotRecommended    RecommendationTier = "not_recommended"
)

// FairnessScoring carries the derived, non-persisted ranking values for one
// TA. It is recomputed per ranking call and never written back to the TA.
type FairnessScoring struct {
	CurrentWorkload  float64            `json:"current_workload"`
	TargetWorkload   float64            `json:"target_workload"`
	RecentHeavyCount int                `json:"recent_heavy_count"`
	FairnessScore    float64            `json:"fairness_score"`
	Recommendation   RecommendationTier `json:"recommendation"`
}

// TASuggestion pairs TA identity with its fairness scoring, keeping derived
// values apart from the source record.
type TASuggestion struct {
	TAID    string          `json:"ta_id"`
	Name    string          `json:"name"`
	Email   string          `json:"email"`
	Scoring FairnessScoring `json:"scoring"`
}

// SessionInfo summarises the quiz a suggestion list was computed for.
type SessionInfo struct {
	Date      string  `json:"date"`
	StartTime string  `json:"start_time"`
	Weight    float64 `json:"weight"`
	Course    string  `json:"course"`
}

// SuggestionsResponse is the payload of the ranked-suggestions endpoint.
type SuggestionsResponse struct {
	Suggestions []TASuggestion `json:"suggestions"`
	SessionInfo SessionInfo    `json:"session_info"`
}

// LocationPlan is the allocator's outcome for one location. Assigned order
// matters: the first entry is the head proctor for the room. Shortfall is the
// number of unfilled seats, surfaced rather than treated as an error.
type LocationPlan struct {
	LocationID       string         `json:"location_id,omitempty"`
	LocationName     string         `json:"location_name"`
	Capacity         int            `json:"capacity"`
	RequiredProctors int            `json:"required_proctors"`
	Assigned         []TASuggestion `json:"assigned"`
	Shortfall        int            `json:"shortfall"`
}

// PreviewResponse mirrors what an auto-assign would produce, without writes.
type PreviewResponse struct {
	Locations []LocationPlan `json:"locations"`
}

// AutoAssignResponse reports persisted assignments plus per-location fill.
type AutoAssignResponse struct {
	QuizID    string         `json:"quiz_id"`
	Created   int            `json:"created"`
	Locations []LocationPlan `json:"locations"`
}
