package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarfh/proctor-api/internal/dto"
	"github.com/omarfh/proctor-api/internal/models"
)

func TestRequiredProctors(t *testing.T) {
	cases := []struct {
		capacity int
		want     int
	}{
		{capacity: 1, want: 2},
		{capacity: 25, want: 2},
		{capacity: 26, want: 3},
		{capacity: 30, want: 3},
		{capacity: 40, want: 3},
		{capacity: 41, want: 4},
		{capacity: 65, want: 4},
		{capacity: 66, want: 5},
		{capacity: 100, want: 5},
		{capacity: 101, want: 6},
		{capacity: 120, want: 6},
		{capacity: 121, want: 7},
		{capacity: 200, want: 10},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, RequiredProctors(tc.capacity), "capacity %d", tc.capacity)
	}
}

func TestRequiredProctorsMonotonic(t *testing.T) {
	prev := RequiredProctors(1)
	for capacity := 2; capacity <= 400; capacity++ {
		cur := RequiredProctors(capacity)
		require.GreaterOrEqual(t, cur, prev, "capacity %d", capacity)
		prev = cur
	}
}

func suggestions(ids ...string) []dto.TASuggestion {
	out := make([]dto.TASuggestion, 0, len(ids))
	for _, id := range ids {
		out = append(out, dto.TASuggestion{TAID: id, Name: "TA " + id})
	}
	return out
}

func intPtr(v int) *int { return &v }

func TestAllocateFillsInDeclaredOrder(t *testing.T) {
	ranked := suggestions("a", "b", "c", "d", "e")
	locations := []models.Location{
		{ID: "l1", Name: "Room 101", Capacity: intPtr(20)}, // needs 2
		{ID: "l2", Name: "Room 102", Capacity: intPtr(30)}, // needs 3
	}

	plans := allocate(ranked, locations)
	require.Len(t, plans, 2)

	assert.Equal(t, "l1", plans[0].LocationID)
	assert.Equal(t, 2, plans[0].RequiredProctors)
	require.Len(t, plans[0].Assigned, 2)
	assert.Equal(t, "a", plans[0].Assigned[0].TAID)
	assert.Equal(t, "b", plans[0].Assigned[1].TAID)
	assert.Zero(t, plans[0].Shortfall)

	assert.Equal(t, "l2", plans[1].LocationID)
	require.Len(t, plans[1].Assigned, 3)
	assert.Equal(t, "c", plans[1].Assigned[0].TAID)
	assert.Equal(t, "e", plans[1].Assigned[2].TAID)
	assert.Zero(t, plans[1].Shortfall)
}

func TestAllocateNoDoubleBooking(t *testing.T) {
	ranked := suggestions("a", "b", "c", "d", "e", "f", "g")
	locations := []models.Location{
		{ID: "l1", Capacity: intPtr(25)},
		{ID: "l2", Capacity: intPtr(25)},
		{ID: "l3", Capacity: intPtr(25)},
	}

	plans := allocate(ranked, locations)
	seen := map[string]int{}
	for _, plan := range plans {
		for _, ta := range plan.Assigned {
			seen[ta.TAID]++
		}
	}
	for id, count := range seen {
		assert.Equal(t, 1, count, "ta %s", id)
	}
}

func TestAllocateShortfall(t *testing.T) {
	ranked := suggestions("a", "b", "c")
	locations := []models.Location{
		{ID: "l1", Capacity: intPtr(25)}, // needs 2
		{ID: "l2", Capacity: intPtr(30)}, // needs 3, only one TA left
	}

	plans := allocate(ranked, locations)
	require.Len(t, plans, 2)
	assert.Zero(t, plans[0].Shortfall)
	require.Len(t, plans[1].Assigned, 1)
	assert.Equal(t, 2, plans[1].Shortfall)
}

func TestAllocateEmptyRanking(t *testing.T) {
	plans := allocate(nil, []models.Location{{ID: "l1", Capacity: intPtr(50)}})
	require.Len(t, plans, 1)
	assert.Empty(t, plans[0].Assigned)
	assert.Equal(t, 4, plans[0].Shortfall)
}

func TestAllocateNilCapacityUsesDefault(t *testing.T) {
	plans := allocate(suggestions("a", "b"), []models.Location{{ID: "l1"}})
	require.Len(t, plans, 1)
	assert.Equal(t, models.DefaultLocationCapacity, plans[0].Capacity)
	assert.Equal(t, 2, plans[0].RequiredProctors)
	assert.Len(t, plans[0].Assigned, 2)
}
