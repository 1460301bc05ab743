package service

import (
	"math"

	"github.com/omarfh/proctor-api/internal/dto"
	"github.com/omarfh/proctor-api/internal/models"
)

// RequiredProctors maps a room capacity to the number of proctors it needs.
// This is the single canonical table; every caller sizes rooms through it.
func RequiredProctors(capacity int) int {
	switch {
	case capacity <= 25:
		return 2
	case capacity <= 40:
		return 3
	case capacity <= 65:
		return 4
	case capacity <= 100:
		return 5
	default:
		return int(math.Ceil(float64(capacity) / 20))
	}
}

// allocate distributes ranked TAs across locations in declared order. Each
// location takes TAs from the top of the ranking until its requirement is met;
// a TA placed in one location is unavailable to every later location of the
// same quiz. Locations left short are reported via Shortfall, never an error.
func allocate(ranked []dto.TASuggestion, locations []models.Location) []dto.LocationPlan {
	used := make(map[string]struct{}, len(ranked))
	plans := make([]dto.LocationPlan, 0, len(locations))

	for _, location := range locations {
		capacity := location.SizingCapacity()
		needed := RequiredProctors(capacity)

		plan := dto.LocationPlan{
			LocationID:       location.ID,
			LocationName:     location.Name,
			Capacity:         capacity,
			RequiredProctors: needed,
			Assigned:         make([]dto.TASuggestion, 0, needed),
		}

		for _, ta := range ranked {
			if len(plan.Assigned) >= needed {
				break
			}
			if _, taken := used[ta.TAID]; taken {
				continue
			}
			plan.Assigned = append(plan.Assigned, ta)
			used[ta.TAID] = struct{}{}
		}

		plan.Shortfall = needed - len(plan.Assigned)
		plans = append(plans, plan)
	}

	return plans
}
