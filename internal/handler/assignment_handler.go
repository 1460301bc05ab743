package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/omarfh/proctor-api/internal/dto"
	"github.com/omarfh/proctor-api/internal/service"
	appErrors "github.com/omarfh/proctor-api/pkg/errors"
	"github.com/omarfh/proctor-api/pkg/response"
)

// AssignmentHandler exposes the proctor assignment engine.
type AssignmentHandler struct {
	assignments *service.AssignmentService
}

// NewAssignmentHandler constructs handler.
func NewAssignmentHandler(assignments *service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignments: assignments}
}

// Suggestions godoc
// @Summary Ranked TA suggestions for a quiz
// @Tags Assignments
// @Produce json
// @Param id path string true "Quiz id"
// @Success 200 {object} response.Envelope
// @Router /quizzes/{id}/suggestions [get]
func (h *AssignmentHandler) Suggestions(c *gin.Context) {
	result, err := h.assignments.Suggestions(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Preview godoc
// @Summary Preview the allocation for a quiz payload without saving
// @Tags Assignments
// @Accept json
// @Produce json
// @Param payload body dto.PreviewRequest true "Quiz payload"
// @Success 200 {object} response.Envelope
// @Router /assignments/preview [post]
func (h *AssignmentHandler) Preview(c *gin.Context) {
	var req dto.PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.assignments.Preview(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// AutoAssign godoc
// @Summary Generate and persist assignments for a quiz
// @Tags Assignments
// @Produce json
// @Param id path string true "Quiz id"
// @Success 201 {object} response.Envelope
// @Router /quizzes/{id}/auto-assign [post]
func (h *AssignmentHandler) AutoAssign(c *gin.Context) {
	result, err := h.assignments.AutoAssign(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// ListByQuiz godoc
// @Summary List stored assignments for a quiz
// @Tags Assignments
// @Produce json
// @Param id path string true "Quiz id"
// @Success 200 {object} response.Envelope
// @Router /quizzes/{id}/assignments [get]
func (h *AssignmentHandler) ListByQuiz(c *gin.Context) {
	result, err := h.assignments.ListByQuiz(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}
