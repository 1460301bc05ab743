package handler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarfh/proctor-api/internal/dto"
	"github.com/omarfh/proctor-api/internal/models"
	"github.com/omarfh/proctor-api/internal/service"
	"github.com/omarfh/proctor-api/pkg/response"
)

type quizRepoStub struct {
	stored map[string]*models.Quiz
}

func (s *quizRepoStub) FindByID(ctx context.Context, id string) (*models.Quiz, error) {
	quiz, ok := s.stored[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *quiz
	return &copied, nil
}

func (s *quizRepoStub) Create(ctx context.Context, quiz *models.Quiz) error {
	if s.stored == nil {
		s.stored = make(map[string]*models.Quiz)
	}
	quiz.ID = uuid.NewString()
	copied := *quiz
	s.stored[quiz.ID] = &copied
	return nil
}

func (s *quizRepoStub) ReplaceLocations(ctx context.Context, quizID string, locations []models.Location) error {
	quiz, ok := s.stored[quizID]
	if !ok {
		return sql.ErrNoRows
	}
	quiz.Locations = locations
	return nil
}

func (s *quizRepoStub) List(ctx context.Context, filter models.QuizFilter) ([]models.Quiz, int, error) {
	var out []models.Quiz
	for _, quiz := range s.stored {
		out = append(out, *quiz)
	}
	return out, len(out), nil
}

func (s *quizRepoStub) Delete(ctx context.Context, id string) error {
	if _, ok := s.stored[id]; !ok {
		return sql.ErrNoRows
	}
	delete(s.stored, id)
	return nil
}

type assignerStub struct{ calls int }

func (s *assignerStub) AutoAssign(ctx context.Context, quizID string) (*dto.AutoAssignResponse, error) {
	s.calls++
	return &dto.AutoAssignResponse{QuizID: quizID, Created: 2}, nil
}

func newQuizFixture() (*QuizHandler, *quizRepoStub, *assignerStub) {
	repo := &quizRepoStub{}
	assigner := &assignerStub{}
	svc := service.NewQuizService(repo, assigner, service.NewCacheService(nil, nil, 0, nil, false), nil, nil)
	return NewQuizHandler(svc), repo, assigner
}

func TestQuizHandlerCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler, _, assigner := newQuizFixture()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body, _ := json.Marshal(dto.CreateQuizRequest{
		CourseName: "Algorithms",
		Date:       "2026-09-02",
		StartTime:  "10:15",
		Major:      "CS",
		Locations:  []dto.LocationRequest{{Name: "Room 101"}},
		AutoAssign: true,
	})
	c.Request, _ = http.NewRequest(http.MethodPost, "/quizzes", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Create(c)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, assigner.calls)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	require.Contains(t, data, "quiz")
	require.Contains(t, data, "assignment")
}

func TestQuizHandlerCreateInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler, _, _ := newQuizFixture()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/quizzes", bytes.NewReader([]byte(`not json`)))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Create(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQuizHandlerCreateBadStartTime(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler, _, _ := newQuizFixture()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body, _ := json.Marshal(dto.CreateQuizRequest{
		CourseName: "Algorithms",
		Date:       "2026-09-02",
		StartTime:  "quarter past ten",
		Major:      "CS",
		Locations:  []dto.LocationRequest{{Name: "Room 101"}},
	})
	c.Request, _ = http.NewRequest(http.MethodPost, "/quizzes", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Create(c)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "INVALID_TIME", envelope.Error.Code)
}

func TestQuizHandlerGetNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler, _, _ := newQuizFixture()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/quizzes/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	handler.Get(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestQuizHandlerDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler, repo, _ := newQuizFixture()
	repo.stored = map[string]*models.Quiz{"q1": {ID: "q1", CourseName: "Algorithms"}}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/quizzes/q1", nil)
	c.Params = gin.Params{{Key: "id", Value: "q1"}}

	handler.Delete(c)
	c.Writer.WriteHeaderNow()
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, repo.stored)
}
