package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/omarfh/proctor-api/internal/dto"
	"github.com/omarfh/proctor-api/internal/models"
	appErrors "github.com/omarfh/proctor-api/pkg/errors"
)

type assignmentQuizReader interface {
	FindByID(ctx context.Context, id string) (*models.Quiz, error)
}

type taRosterReader interface {
	ListByMajor(ctx context.Context, major string) ([]models.TA, error)
}

type scheduleConflictReader interface {
	ListConflictingTAIDs(ctx context.Context, dayOfWeek string, slots []int) ([]string, error)
}

type assignmentStore interface {
	ListTAIDsByDate(ctx context.Context, date time.Time) ([]string, error)
	ListRecent(ctx context.Context, from, to time.Time) ([]models.RecentAssignment, error)
	BulkCreate(ctx context.Context, assignments []models.Assignment) error
	ListByQuiz(ctx context.Context, quizID string) ([]models.AssignmentDetail, error)
}

type excuseReader interface {
	ListActiveTAIDs(ctx context.Context, date time.Time) ([]string, error)
}

type exchangeReader interface {
	ListApprovedOriginalTAIDs(ctx context.Context, date time.Time) ([]string, error)
}

type calendarResolver interface {
	CalendarFor(ctx context.Context, date time.Time) (CalendarMode, error)
}

// AssignmentService ranks eligible TAs for a quiz and distributes them across
// its locations. Commit and preview share the identical computation; only
// commit persists.
type AssignmentService struct {
	quizzes   assignmentQuizReader
	tas       taRosterReader
	schedules scheduleConflictReader
	store     assignmentStore
	excuses   excuseReader
	exchanges exchangeReader
	calendars calendarResolver
	cache     *CacheService
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger

	// serializes auto-assign per quiz id so concurrent calls for the same
	// quiz cannot interleave their read-compute-write cycles
	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

// NewAssignmentService wires the assignment engine dependencies.
func NewAssignmentService(
	quizzes assignmentQuizReader,
	tas taRosterReader,
	schedules scheduleConflictReader,
	store assignmentStore,
	excuses excuseReader,
	exchanges exchangeReader,
	calendars calendarResolver,
	cache *CacheService,
	metrics *MetricsService,
	validate *validator.Validate,
	logger *zap.Logger,
) *AssignmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssignmentService{
		quizzes:   quizzes,
		tas:       tas,
		schedules: schedules,
		store:     store,
		excuses:   excuses,
		exchanges: exchanges,
		calendars: calendars,
		cache:     cache,
		metrics:   metrics,
		validator: validate,
		logger:    logger,
		locks:     make(map[string]*sync.Mutex),
	}
}

func suggestionCacheKey(quizID string) string {
	return fmt.Sprintf("suggest:%s", quizID)
}

// Suggestions returns the ranked eligible TAs for a stored quiz.
func (s *AssignmentService) Suggestions(ctx context.Context, quizID string) (*dto.SuggestionsResponse, error) {
	quiz, err := s.loadQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}

	cacheKey := suggestionCacheKey(quizID)
	if s.cache.Enabled() {
		var cached dto.SuggestionsResponse
		if hit, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	ranked, err := s.rankForQuiz(ctx, *quiz)
	if err != nil {
		return nil, err
	}

	resp := &dto.SuggestionsResponse{
		Suggestions: ranked,
		SessionInfo: dto.SessionInfo{
			Date:      quiz.Date.Format("2006-01-02"),
			StartTime: quiz.StartTime,
			Weight:    quiz.Weight,
			Course:    quiz.CourseName,
		},
	}

	if s.cache.Enabled() {
		_ = s.cache.Set(ctx, cacheKey, resp, 0)
	}
	return resp, nil
}

// Preview computes the allocation an auto-assign would produce for a quiz
// payload without persisting anything. Never cached: a preview must reflect
// the snapshot at call time.
func (s *AssignmentService) Preview(ctx context.Context, req dto.PreviewRequest) (*dto.PreviewResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid preview payload")
	}
	quiz, locations, err := quizFromPreview(req)
	if err != nil {
		return nil, err
	}

	ranked, err := s.rankForQuiz(ctx, quiz)
	if err != nil {
		return nil, err
	}

	return &dto.PreviewResponse{Locations: allocate(ranked, locations)}, nil
}

// AutoAssign ranks, allocates and persists assignments for every location of
// the quiz. Calls for the same quiz id are serialized.
func (s *AssignmentService) AutoAssign(ctx context.Context, quizID string) (*dto.AutoAssignResponse, error) {
	lock := s.quizLock(quizID)
	lock.Lock()
	defer lock.Unlock()

	quiz, err := s.loadQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}

	ranked, err := s.rankForQuiz(ctx, *quiz)
	if err != nil {
		return nil, err
	}

	plans := allocate(ranked, quiz.Locations)

	assignments := make([]models.Assignment, 0, len(ranked))
	for _, plan := range plans {
		for _, ta := range plan.Assigned {
			assignments = append(assignments, models.Assignment{
				QuizID:     quiz.ID,
				TAID:       ta.TAID,
				LocationID: plan.LocationID,
			})
		}
	}

	if len(assignments) > 0 {
		if err := s.store.BulkCreate(ctx, assignments); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist assignments")
		}
	}

	_ = s.cache.Invalidate(ctx, suggestionCacheKey(quizID))

	s.logger.Info("auto-assign completed",
		zap.String("quiz_id", quizID),
		zap.Int("eligible", len(ranked)),
		zap.Int("created", len(assignments)),
	)

	return &dto.AutoAssignResponse{
		QuizID:    quizID,
		Created:   len(assignments),
		Locations: plans,
	}, nil
}

// ListByQuiz returns the stored assignments for a quiz with display fields.
func (s *AssignmentService) ListByQuiz(ctx context.Context, quizID string) ([]models.AssignmentDetail, error) {
	if _, err := s.loadQuiz(ctx, quizID); err != nil {
		return nil, err
	}
	details, err := s.store.ListByQuiz(ctx, quizID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list assignments")
	}
	return details, nil
}

func (s *AssignmentService) loadQuiz(ctx context.Context, quizID string) (*models.Quiz, error) {
	if quizID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "quiz id is required")
	}
	quiz, err := s.quizzes.FindByID(ctx, quizID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "quiz not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load quiz")
	}
	quiz.Normalize()
	return quiz, nil
}

// rankForQuiz gathers the availability snapshot and scores the roster. Any
// failing read fails the whole call: a ranking must never be built from
// partial data.
func (s *AssignmentService) rankForQuiz(ctx context.Context, quiz models.Quiz) ([]dto.TASuggestion, error) {
	started := time.Now()

	calendar, err := s.calendars.CalendarFor(ctx, quiz.Date)
	if err != nil {
		return nil, err
	}
	slots, err := calendar.OverlappingSlots(quiz.StartTime, quiz.DurationMinutes)
	if err != nil {
		return nil, err
	}

	roster, err := s.tas.ListByMajor(ctx, quiz.Major)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load roster")
	}

	conflicts, err := s.schedules.ListConflictingTAIDs(ctx, dayName(quiz.Date), slots)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load schedule conflicts")
	}

	busy, err := s.store.ListTAIDsByDate(ctx, quiz.Date)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load same-day assignments")
	}

	excused, err := s.excuses.ListActiveTAIDs(ctx, quiz.Date)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load excuses")
	}

	recent, err := s.store.ListRecent(ctx, quiz.Date.AddDate(0, 0, -recentWindowDays), quiz.Date)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load recent assignments")
	}

	exchanged, err := s.exchanges.ListApprovedOriginalTAIDs(ctx, quiz.Date)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load exchange requests")
	}

	ranked := rankTAs(rankingInputs{
		quiz:           quiz,
		roster:         roster,
		classConflicts: toSet(conflicts),
		busy:           toSet(busy),
		excused:        toSet(excused),
		exchangedOut:   toSet(exchanged),
		recent:         recent,
	})

	s.metrics.ObserveRanking(time.Since(started))
	return ranked, nil
}

func (s *AssignmentService) quizLock(quizID string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	lock, ok := s.locks[quizID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[quizID] = lock
	}
	return lock
}

// quizFromPreview builds a transient quiz and location set from the preview
// payload, applying the same defaults the stored path gets.
func quizFromPreview(req dto.PreviewRequest) (models.Quiz, []models.Location, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return models.Quiz{}, nil, appErrors.Clone(appErrors.ErrValidation, "invalid quiz date")
	}
	quiz := models.Quiz{
		CourseName:      req.CourseName,
		Date:            date,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		Major:           req.Major,
		Weight:          req.Weight,
	}
	quiz.Normalize()

	locations := make([]models.Location, 0, len(req.Locations))
	for _, loc := range req.Locations {
		locations = append(locations, models.Location{Name: loc.Name, Capacity: loc.Capacity})
	}
	return quiz, locations, nil
}
