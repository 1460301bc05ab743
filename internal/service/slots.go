package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/omarfh/proctor-api/internal/models"
	appErrors "github.com/omarfh/proctor-api/pkg/errors"
)

// GlobalDayOff is the fixed weekly day off applying to every TA.
const GlobalDayOff = "Friday"

// SlotWindow is one fixed daily teaching slot, bounded in minutes since
// midnight. End is exclusive for overlap purposes.
type SlotWindow struct {
	Number int
	Start  int
	End    int
}

// CalendarMode is the slot-boundary table active on a given date. It is
// resolved once by the caller and threaded into ranking explicitly.
type CalendarMode struct {
	Name  string
	Slots []SlotWindow
}

// StandardCalendar covers the regular 7-slot teaching day (08:30-20:45).
var StandardCalendar = CalendarMode{
	Name: "standard",
	Slots: []SlotWindow{
		{Number: 1, Start: 8*60 + 30, End: 10 * 60},
		{Number: 2, Start: 10*60 + 15, End: 11*60 + 45},
		{Number: 3, Start: 12 * 60, End: 13*60 + 30},
		{Number: 4, Start: 13*60 + 45, End: 15*60 + 15},
		{Number: 5, Start: 15*60 + 45, End: 17*60 + 15},
		{Number: 6, Start: 17*60 + 30, End: 19 * 60},
		{Number: 7, Start: 19*60 + 15, End: 20*60 + 45},
	},
}

// CompressedCalendar covers the reduced-hours 5-slot day (08:30-14:50).
var CompressedCalendar = CalendarMode{
	Name: "compressed",
	Slots: []SlotWindow{
		{Number: 1, Start: 8*60 + 30, End: 9*60 + 40},
		{Number: 2, Start: 9*60 + 45, End: 10*60 + 55},
		{Number: 3, Start: 11*60 + 5, End: 12*60 + 15},
		{Number: 4, Start: 12*60 + 25, End: 13*60 + 35},
		{Number: 5, Start: 13*60 + 40, End: 14*60 + 50},
	},
}

// CalendarForDate picks the calendar active on the given date from the
// persisted compressed-schedule settings.
func CalendarForDate(settings models.CompressedScheduleSettings, date time.Time) CalendarMode {
	if settings.CoversDate(date) {
		return CompressedCalendar
	}
	return StandardCalendar
}

// OverlappingSlots maps a quiz window onto the calendar's slots. A window
// spanning a boundary overlaps several slots; a window outside every slot
// falls back to slot 1. Malformed start times fail with a typed error.
func (m CalendarMode) OverlappingSlots(startTime string, durationMinutes int) ([]int, error) {
	start, err := parseClock(startTime)
	if err != nil {
		return nil, err
	}
	if durationMinutes <= 0 {
		durationMinutes = 60
	}
	end := start + durationMinutes

	var slots []int
	for _, window := range m.Slots {
		if start < window.End && end > window.Start {
			slots = append(slots, window.Number)
		}
	}
	if len(slots) == 0 {
		slots = []int{1}
	}
	return slots, nil
}

// parseClock converts a wall-clock "HH:MM" string to minutes since midnight.
func parseClock(raw string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(raw), ":", 2)
	if len(parts) != 2 {
		return 0, appErrors.Clone(appErrors.ErrInvalidTime, fmt.Sprintf("invalid time %q, expected HH:MM", raw))
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, appErrors.Clone(appErrors.ErrInvalidTime, fmt.Sprintf("invalid hour in %q", raw))
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, appErrors.Clone(appErrors.ErrInvalidTime, fmt.Sprintf("invalid minute in %q", raw))
	}
	return hours*60 + minutes, nil
}

// dayName returns the quiz's day of week as used across schedules and
// day-off records.
func dayName(date time.Time) string {
	return date.Weekday().String()
}
