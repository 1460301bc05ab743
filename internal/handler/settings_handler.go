package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/omarfh/proctor-api/internal/dto"
	"github.com/omarfh/proctor-api/internal/service"
	appErrors "github.com/omarfh/proctor-api/pkg/errors"
	"github.com/omarfh/proctor-api/pkg/response"
)

// SettingsHandler exposes scheduling settings endpoints.
type SettingsHandler struct {
	settings *service.SettingsService
}

// NewSettingsHandler constructs handler.
func NewSettingsHandler(settings *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// GetCompressedSchedule godoc
// @Summary Get compressed schedule settings
// @Tags Settings
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /settings/compressed-schedule [get]
func (h *SettingsHandler) GetCompressedSchedule(c *gin.Context) {
	settings, err := h.settings.GetCompressedSchedule(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, settings, nil)
}

// UpdateCompressedSchedule godoc
// @Summary Update compressed schedule settings
// @Tags Settings
// @Accept json
// @Produce json
// @Param payload body dto.UpdateCompressedScheduleRequest true "Settings payload"
// @Success 200 {object} response.Envelope
// @Router /settings/compressed-schedule [put]
func (h *SettingsHandler) UpdateCompressedSchedule(c *gin.Context) {
	var req dto.UpdateCompressedScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	settings, err := h.settings.UpdateCompressedSchedule(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, settings, nil)
}
