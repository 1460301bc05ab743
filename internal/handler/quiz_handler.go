package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/omarfh/proctor-api/internal/dto"
	"github.com/omarfh/proctor-api/internal/models"
	"github.com/omarfh/proctor-api/internal/service"
	appErrors "github.com/omarfh/proctor-api/pkg/errors"
	"github.com/omarfh/proctor-api/pkg/response"
)

// QuizHandler exposes quiz CRUD endpoints.
type QuizHandler struct {
	quizzes *service.QuizService
}

// NewQuizHandler constructs handler.
func NewQuizHandler(quizzes *service.QuizService) *QuizHandler {
	return &QuizHandler{quizzes: quizzes}
}

// Create godoc
// @Summary Create quiz with locations
// @Tags Quizzes
// @Accept json
// @Produce json
// @Param payload body dto.CreateQuizRequest true "Quiz payload"
// @Success 201 {object} response.Envelope
// @Router /quizzes [post]
func (h *QuizHandler) Create(c *gin.Context) {
	var req dto.CreateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	quiz, assignment, err := h.quizzes.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	body := gin.H{"quiz": quiz}
	if assignment != nil {
		body["assignment"] = assignment
	}
	response.Created(c, body)
}

// Get godoc
// @Summary Get quiz by id
// @Tags Quizzes
// @Produce json
// @Param id path string true "Quiz id"
// @Success 200 {object} response.Envelope
// @Router /quizzes/{id} [get]
func (h *QuizHandler) Get(c *gin.Context) {
	quiz, err := h.quizzes.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, quiz, nil)
}

// List godoc
// @Summary List quizzes
// @Tags Quizzes
// @Produce json
// @Param major query string false "Filter by major"
// @Param from query string false "Earliest quiz date (YYYY-MM-DD)"
// @Param to query string false "Latest quiz date (YYYY-MM-DD)"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /quizzes [get]
func (h *QuizHandler) List(c *gin.Context) {
	filter := models.QuizFilter{Major: c.Query("major")}
	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid from date"))
			return
		}
		filter.From = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid to date"))
			return
		}
		filter.To = &to
	}
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.PageSize, _ = strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	quizzes, pagination, err := h.quizzes.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, quizzes, pagination)
}

// ReplaceLocations godoc
// @Summary Replace quiz locations and regenerate assignments
// @Tags Quizzes
// @Accept json
// @Produce json
// @Param id path string true "Quiz id"
// @Param payload body dto.ReplaceLocationsRequest true "Locations payload"
// @Success 200 {object} response.Envelope
// @Router /quizzes/{id}/locations [put]
func (h *QuizHandler) ReplaceLocations(c *gin.Context) {
	var req dto.ReplaceLocationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.quizzes.ReplaceLocations(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Delete godoc
// @Summary Delete quiz
// @Tags Quizzes
// @Param id path string true "Quiz id"
// @Success 204
// @Router /quizzes/{id} [delete]
func (h *QuizHandler) Delete(c *gin.Context) {
	if err := h.quizzes.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
