package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/omarfh/proctor-api/internal/dto"
	"github.com/omarfh/proctor-api/internal/models"
	appErrors "github.com/omarfh/proctor-api/pkg/errors"
)

type quizRepository interface {
	FindByID(ctx context.Context, id string) (*models.Quiz, error)
	Create(ctx context.Context, quiz *models.Quiz) error
	ReplaceLocations(ctx context.Context, quizID string, locations []models.Location) error
	List(ctx context.Context, filter models.QuizFilter) ([]models.Quiz, int, error)
	Delete(ctx context.Context, id string) error
}

type autoAssigner interface {
	AutoAssign(ctx context.Context, quizID string) (*dto.AutoAssignResponse, error)
}

// QuizService manages quiz records and their locations. Creating or
// re-locating a quiz can optionally trigger the assignment engine.
type QuizService struct {
	repo      quizRepository
	assigner  autoAssigner
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

func NewQuizService(repo quizRepository, assigner autoAssigner, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *QuizService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuizService{
		repo:      repo,
		assigner:  assigner,
		cache:     cache,
		validator: validate,
		logger:    logger,
	}
}

// Create validates and stores a quiz with its locations. When the payload
// asks for it, assignments are generated immediately after the insert.
func (s *QuizService) Create(ctx context.Context, req dto.CreateQuizRequest) (*models.Quiz, *dto.AutoAssignResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid quiz payload")
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, nil, appErrors.Clone(appErrors.ErrValidation, "invalid quiz date")
	}
	// reject malformed start times at the door rather than at ranking time
	if _, err := parseClock(req.StartTime); err != nil {
		return nil, nil, err
	}

	quiz := &models.Quiz{
		CourseName:      req.CourseName,
		Date:            date,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		Major:           req.Major,
		Weight:          req.Weight,
	}
	quiz.Normalize()
	quiz.Locations = locationsFromRequests(req.Locations)

	if err := s.repo.Create(ctx, quiz); err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create quiz")
	}

	s.logger.Info("quiz created",
		zap.String("quiz_id", quiz.ID),
		zap.String("course", quiz.CourseName),
		zap.Int("locations", len(quiz.Locations)),
	)

	var assignment *dto.AutoAssignResponse
	if req.AutoAssign {
		assignment, err = s.assigner.AutoAssign(ctx, quiz.ID)
		if err != nil {
			// the quiz itself is stored; surface the assignment failure
			return quiz, nil, err
		}
	}
	return quiz, assignment, nil
}

// ReplaceLocations swaps the quiz's location set and regenerates assignments,
// since the previous allocation no longer matches the new rooms.
func (s *QuizService) ReplaceLocations(ctx context.Context, quizID string, req dto.ReplaceLocationsRequest) (*dto.AutoAssignResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid locations payload")
	}
	if _, err := s.Get(ctx, quizID); err != nil {
		return nil, err
	}

	if err := s.repo.ReplaceLocations(ctx, quizID, locationsFromRequests(req.Locations)); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to replace locations")
	}
	_ = s.cache.Invalidate(ctx, suggestionCacheKey(quizID))

	return s.assigner.AutoAssign(ctx, quizID)
}

// Get loads one quiz with its locations.
func (s *QuizService) Get(ctx context.Context, quizID string) (*models.Quiz, error) {
	if quizID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "quiz id is required")
	}
	quiz, err := s.repo.FindByID(ctx, quizID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "quiz not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load quiz")
	}
	quiz.Normalize()
	return quiz, nil
}

// List returns a page of quizzes matching the filter.
func (s *QuizService) List(ctx context.Context, filter models.QuizFilter) ([]models.Quiz, *models.Pagination, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}
	quizzes, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list quizzes")
	}
	for i := range quizzes {
		quizzes[i].Normalize()
	}
	return quizzes, models.NewPagination(filter.Page, filter.PageSize, total), nil
}

// Delete removes a quiz; its locations and assignments go with it.
func (s *QuizService) Delete(ctx context.Context, quizID string) error {
	if quizID == "" {
		return appErrors.Clone(appErrors.ErrValidation, "quiz id is required")
	}
	if err := s.repo.Delete(ctx, quizID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "quiz not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete quiz")
	}
	_ = s.cache.Invalidate(ctx, suggestionCacheKey(quizID))
	s.logger.Info("quiz deleted", zap.String("quiz_id", quizID))
	return nil
}

func locationsFromRequests(reqs []dto.LocationRequest) []models.Location {
	locations := make([]models.Location, 0, len(reqs))
	for _, loc := range reqs {
		locations = append(locations, models.Location{Name: loc.Name, Capacity: loc.Capacity})
	}
	return locations
}
