package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarfh/proctor-api/internal/dto"
	"github.com/omarfh/proctor-api/internal/models"
	appErrors "github.com/omarfh/proctor-api/pkg/errors"
)

type mockQuizRepo struct {
	stored map[string]*models.Quiz
}

func (m *mockQuizRepo) FindByID(ctx context.Context, id string) (*models.Quiz, error) {
	quiz, ok := m.stored[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *quiz
	return &copied, nil
}

func (m *mockQuizRepo) Create(ctx context.Context, quiz *models.Quiz) error {
	if m.stored == nil {
		m.stored = make(map[string]*models.Quiz)
	}
	quiz.ID = uuid.NewString()
	for i := range quiz.Locations {
		quiz.Locations[i].ID = uuid.NewString()
		quiz.Locations[i].QuizID = quiz.ID
	}
	copied := *quiz
	m.stored[quiz.ID] = &copied
	return nil
}

func (m *mockQuizRepo) ReplaceLocations(ctx context.Context, quizID string, locations []models.Location) error {
	quiz, ok := m.stored[quizID]
	if !ok {
		return sql.ErrNoRows
	}
	quiz.Locations = locations
	return nil
}

func (m *mockQuizRepo) List(ctx context.Context, filter models.QuizFilter) ([]models.Quiz, int, error) {
	var out []models.Quiz
	for _, quiz := range m.stored {
		out = append(out, *quiz)
	}
	return out, len(out), nil
}

func (m *mockQuizRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.stored[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.stored, id)
	return nil
}

type mockAssigner struct {
	calls []string
	err   error
}

func (m *mockAssigner) AutoAssign(ctx context.Context, quizID string) (*dto.AutoAssignResponse, error) {
	m.calls = append(m.calls, quizID)
	if m.err != nil {
		return nil, m.err
	}
	return &dto.AutoAssignResponse{QuizID: quizID, Created: 2}, nil
}

func validCreateRequest() dto.CreateQuizRequest {
	cap30 := 30
	return dto.CreateQuizRequest{
		CourseName:      "Algorithms",
		Date:            "2026-09-02",
		StartTime:       "10:15",
		DurationMinutes: 60,
		Major:           "CS",
		Weight:          1.5,
		Locations:       []dto.LocationRequest{{Name: "Room 101", Capacity: &cap30}},
	}
}

func TestQuizCreate(t *testing.T) {
	repo := &mockQuizRepo{}
	assigner := &mockAssigner{}
	svc := NewQuizService(repo, assigner, NewCacheService(nil, nil, 0, nil, false), nil, nil)

	quiz, assignment, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, quiz.ID)
	assert.Equal(t, "Algorithms", quiz.CourseName)
	assert.Equal(t, time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC), quiz.Date)
	require.Len(t, quiz.Locations, 1)
	assert.Nil(t, assignment)
	assert.Empty(t, assigner.calls)
}

func TestQuizCreateDefaults(t *testing.T) {
	repo := &mockQuizRepo{}
	svc := NewQuizService(repo, &mockAssigner{}, NewCacheService(nil, nil, 0, nil, false), nil, nil)

	req := validCreateRequest()
	req.Weight = 0
	req.DurationMinutes = 0
	quiz, _, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultQuizWeight, quiz.Weight)
	assert.Equal(t, 60, quiz.DurationMinutes)
}

func TestQuizCreateWithAutoAssign(t *testing.T) {
	repo := &mockQuizRepo{}
	assigner := &mockAssigner{}
	svc := NewQuizService(repo, assigner, NewCacheService(nil, nil, 0, nil, false), nil, nil)

	req := validCreateRequest()
	req.AutoAssign = true
	quiz, assignment, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, assignment)
	assert.Equal(t, quiz.ID, assignment.QuizID)
	assert.Equal(t, []string{quiz.ID}, assigner.calls)
}

func TestQuizCreateRejectsBadPayloads(t *testing.T) {
	svc := NewQuizService(&mockQuizRepo{}, &mockAssigner{}, NewCacheService(nil, nil, 0, nil, false), nil, nil)

	req := validCreateRequest()
	req.Locations = nil
	_, _, err := svc.Create(context.Background(), req)
	assert.Error(t, err)

	req = validCreateRequest()
	req.Date = "02-09-2026"
	_, _, err = svc.Create(context.Background(), req)
	assert.Error(t, err)

	req = validCreateRequest()
	req.StartTime = "10.15"
	_, _, err = svc.Create(context.Background(), req)
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrInvalidTime.Code, appErr.Code)
}

func TestQuizReplaceLocationsReassigns(t *testing.T) {
	repo := &mockQuizRepo{}
	assigner := &mockAssigner{}
	svc := NewQuizService(repo, assigner, NewCacheService(nil, nil, 0, nil, false), nil, nil)

	quiz, _, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	cap50 := 50
	result, err := svc.ReplaceLocations(context.Background(), quiz.ID, dto.ReplaceLocationsRequest{
		Locations: []dto.LocationRequest{{Name: "Hall B", Capacity: &cap50}},
	})
	require.NoError(t, err)
	assert.Equal(t, quiz.ID, result.QuizID)
	assert.Equal(t, []string{quiz.ID}, assigner.calls)

	stored, err := svc.Get(context.Background(), quiz.ID)
	require.NoError(t, err)
	require.Len(t, stored.Locations, 1)
	assert.Equal(t, "Hall B", stored.Locations[0].Name)
}

func TestQuizGetNotFound(t *testing.T) {
	svc := NewQuizService(&mockQuizRepo{}, &mockAssigner{}, NewCacheService(nil, nil, 0, nil, false), nil, nil)
	_, err := svc.Get(context.Background(), "missing")
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestQuizDelete(t *testing.T) {
	repo := &mockQuizRepo{}
	svc := NewQuizService(repo, &mockAssigner{}, NewCacheService(nil, nil, 0, nil, false), nil, nil)

	quiz, _, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), quiz.ID))
	assert.Error(t, svc.Delete(context.Background(), quiz.ID))
}
