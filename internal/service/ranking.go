package service

import (
	"math"
	"sort"
	"time"

	"github.com/omarfh/proctor-api/internal/dto"
	"github.com/omarfh/proctor-api/internal/models"
)

// Scoring policy. The windows and penalty sizes are intentionally fixed;
// there is no configuration surface for them.
const (
	heavyWeightThreshold = 1.2
	recentWindowDays     = 7

	heavyPenaltyMajor = 0.5 // 3+ heavy sessions in the trailing week
	heavyPenaltyMinor = 0.3 // exactly 2

	restPenaltySameDay = 0.4 // last assignment under 1 day ago
	restPenaltyNextDay = 0.2 // under 2 days ago
)

// rankingInputs is the full snapshot the ranker scores against. All sets are
// keyed by TA id.
type rankingInputs struct {
	quiz           models.Quiz
	roster         []models.TA
	classConflicts map[string]struct{}
	busy           map[string]struct{}
	excused        map[string]struct{}
	exchangedOut   map[string]struct{}
	recent         []models.RecentAssignment
}

// rankTAs filters the roster by the structural exclusion rules, scores every
// survivor and returns suggestions sorted by descending fairness score. Ties
// keep roster order. An empty result is a valid outcome, not an error.
func rankTAs(in rankingInputs) []dto.TASuggestion {
	quizDay := dayName(in.quiz.Date)
	heavyCounts, lastDates := recentStats(in.recent)

	suggestions := make([]dto.TASuggestion, 0, len(in.roster))
	for _, ta := range in.roster {
		ta.Normalize()
		if _, ok := in.classConflicts[ta.ID]; ok {
			continue
		}
		if _, ok := in.busy[ta.ID]; ok {
			continue
		}
		if quizDay == GlobalDayOff {
			continue
		}
		if ta.DayOff != nil && *ta.DayOff == quizDay {
			continue
		}
		if _, ok := in.excused[ta.ID]; ok {
			continue
		}
		if _, ok := in.exchangedOut[ta.ID]; ok {
			continue
		}

		scoring := scoreTA(ta, in.quiz.Date, heavyCounts[ta.ID], lastDates[ta.ID])
		suggestions = append(suggestions, dto.TASuggestion{
			TAID:    ta.ID,
			Name:    ta.FullName,
			Email:   ta.Email,
			Scoring: scoring,
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Scoring.FairnessScore > suggestions[j].Scoring.FairnessScore
	})
	return suggestions
}

// scoreTA computes the fairness scoring for one eligible TA. The tier is
// derived from the unrounded score; the reported value is rounded to two
// decimals.
func scoreTA(ta models.TA, quizDate time.Time, heavyCount int, lastDate time.Time) dto.FairnessScoring {
	score := 0.0
	if ta.TargetWorkload > 0 {
		score = (ta.TargetWorkload - ta.WorkloadPoints) / ta.TargetWorkload
	}

	switch {
	case heavyCount >= 3:
		score -= heavyPenaltyMajor
	case heavyCount == 2:
		score -= heavyPenaltyMinor
	}

	if !lastDate.IsZero() {
		daysSince := int(dayStart(quizDate).Sub(dayStart(lastDate)).Hours() / 24)
		if daysSince < 1 {
			score -= restPenaltySameDay
		} else if daysSince < 2 {
			score -= restPenaltyNextDay
		}
	}

	return dto.FairnessScoring{
		CurrentWorkload:  ta.WorkloadPoints,
		TargetWorkload:   ta.TargetWorkload,
		RecentHeavyCount: heavyCount,
		FairnessScore:    math.Round(score*100) / 100,
		Recommendation:   tierFor(score),
	}
}

func tierFor(score float64) dto.RecommendationTier {
	switch {
	case score > 0.3:
		return dto.TierHighlyRecommended
	case score > 0:
		return dto.TierRecommended
	case score > -0.3:
		return dto.TierAcceptable
	default:
		return dto.TierNotRecommended
	}
}

// recentStats folds the trailing-window assignments into per-TA heavy counts
// and the most recent prior assignment date.
func recentStats(recent []models.RecentAssignment) (map[string]int, map[string]time.Time) {
	heavy := make(map[string]int)
	last := make(map[string]time.Time)
	for _, item := range recent {
		if item.QuizWeight > heavyWeightThreshold {
			heavy[item.TAID]++
		}
		if item.QuizDate.After(last[item.TAID]) {
			last[item.TAID] = item.QuizDate
		}
	}
	return heavy, last
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
